package eth

import (
	"context"
	"fmt"
	"sync"

	"github.com/questx-lab/tournament/internal/common"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type BlockHeightStalledError struct {
	Height uint64
	Checks int
}

func (e *BlockHeightStalledError) Error() string {
	return fmt.Sprintf("chain height is stuck at %d for %d checks", e.Height, e.Checks)
}

// MaxStalledChecks is the number of consecutive checks without a new block
// before the node is reported unhealthy.
const MaxStalledChecks = 3

// Watcher periodically samples the node's block height. It is driven by the
// scheduler in the api command.
type Watcher struct {
	chain  string
	client EthClient

	lock    sync.Mutex
	height  uint64
	stalled int
}

func NewWatcher(chain string, client EthClient) *Watcher {
	return &Watcher{chain: chain, client: client}
}

// Check samples the current block height once.
func (w *Watcher) Check(ctx context.Context) error {
	height, err := w.client.BlockNumber(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get block number of chain %s: %v", w.chain, err)
		return err
	}

	common.PromGauges[common.ChainBlockHeight].WithLabelValues(w.chain).Set(float64(height))

	w.lock.Lock()
	defer w.lock.Unlock()

	if height > w.height {
		w.height = height
		w.stalled = 0
		xcontext.Logger(ctx).Debugf("Chain %s is at block %d", w.chain, height)
		return nil
	}

	w.stalled++
	if w.stalled >= MaxStalledChecks {
		err := &BlockHeightStalledError{Height: w.height, Checks: w.stalled}
		xcontext.Logger(ctx).Warnf("Chain %s looks unhealthy: %v", w.chain, err)
		return err
	}

	return nil
}

// Height returns the last observed block height.
func (w *Watcher) Height() uint64 {
	w.lock.Lock()
	defer w.lock.Unlock()

	return w.height
}
