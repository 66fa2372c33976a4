package cron

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Interval() time.Duration
}

type CronJobManager struct {
	scheduler gocron.Scheduler
	jobs      []CronJob
}

func NewCronJobManager() (*CronJobManager, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &CronJobManager{scheduler: scheduler}, nil
}

func (m *CronJobManager) Register(job CronJob) {
	m.jobs = append(m.jobs, job)
}

// Start schedules every registered job and returns immediately. Jobs run with
// ctx until Stop is called.
func (m *CronJobManager) Start(ctx context.Context) error {
	for _, job := range m.jobs {
		job := job

		options := []gocron.JobOption{gocron.WithSingletonMode(gocron.LimitModeReschedule)}
		if job.RunNow() {
			options = append(options, gocron.WithStartAt(gocron.WithStartImmediately()))
		}

		_, err := m.scheduler.NewJob(
			gocron.DurationJob(job.Interval()),
			gocron.NewTask(func() {
				xcontext.Logger(ctx).Debugf("%T is running...", job)
				job.Do(ctx)
			}),
			options...,
		)
		if err != nil {
			return err
		}
	}

	m.scheduler.Start()
	xcontext.Logger(ctx).Infof("Cron job manager started with %d jobs", len(m.jobs))
	return nil
}

func (m *CronJobManager) Stop(ctx context.Context) {
	if err := m.scheduler.Shutdown(); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot shutdown cron job manager: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}
