package eth

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type ReceiptFetcher interface {
	// WaitForReceipt blocks until the transaction is mined or the
	// confirmation timeout elapses.
	WaitForReceipt(ctx context.Context, hash ethcommon.Hash, nonce uint64) *types.TrackUpdate
}

type defaultReceiptFetcher struct {
	chain     string
	client    EthClient
	retryTime time.Duration
	timeout   time.Duration
}

func NewReceiptFetcher(client EthClient, chain string, retryTime, timeout time.Duration) ReceiptFetcher {
	return &defaultReceiptFetcher{
		chain:     chain,
		client:    client,
		retryTime: retryTime,
		timeout:   timeout,
	}
}

func (rf *defaultReceiptFetcher) WaitForReceipt(ctx context.Context, hash ethcommon.Hash, nonce uint64) *types.TrackUpdate {
	ctx, cancel := context.WithTimeout(ctx, rf.timeout)
	defer cancel()

	update := &types.TrackUpdate{Chain: rf.chain, Hash: hash, Nonce: nonce}

	ticker := time.NewTicker(rf.retryTime)
	defer ticker.Stop()

	for {
		receipt, err := rf.client.TransactionReceipt(ctx, hash)
		if err == nil && receipt != nil {
			update.Receipt = receipt
			if receipt.BlockNumber != nil {
				update.BlockHeight = receipt.BlockNumber.Uint64()
			}

			if receipt.Status == ethtypes.ReceiptStatusSuccessful {
				update.Result = types.TrackResultConfirmed
			} else {
				update.Result = types.TrackResultFailure
			}

			return update
		}

		if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
			xcontext.Logger(ctx).Warnf("Cannot get receipt for tx hash %s: %v", hash, err)
		}

		select {
		case <-ctx.Done():
			xcontext.Logger(ctx).Errorf("Cannot get receipt for tx with hash %s on chain %s in %s",
				hash, rf.chain, rf.timeout)
			update.Result = types.TrackResultTimeout
			return update

		case <-ticker.C:
		}
	}
}
