package cron

import (
	"context"
	"time"

	"github.com/questx-lab/tournament/internal/domain/blockchain/eth"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type NodeHealthCronJob struct {
	watcher  *eth.Watcher
	interval time.Duration
}

func NewNodeHealthCronJob(watcher *eth.Watcher, interval time.Duration) *NodeHealthCronJob {
	return &NodeHealthCronJob{watcher: watcher, interval: interval}
}

func (job *NodeHealthCronJob) Do(ctx context.Context) {
	if err := job.watcher.Check(ctx); err != nil {
		xcontext.Logger(ctx).Warnf("Node health check failed, last seen block %d: %v", job.watcher.Height(), err)
	}
}

func (job *NodeHealthCronJob) RunNow() bool {
	return true
}

func (job *NodeHealthCronJob) Interval() time.Duration {
	return job.interval
}
