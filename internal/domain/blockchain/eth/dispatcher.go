package eth

import (
	"context"
	"fmt"
	"math/big"

	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type EthDispatcher struct {
	client EthClient
}

func NewEthDispatcher(client EthClient) *EthDispatcher {
	return &EthDispatcher{client: client}
}

func (d *EthDispatcher) Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult {
	tx := request.Tx

	// Check the balance to see if we have enough native token.
	balance, err := d.client.BalanceAt(ctx, request.From, nil)
	if err != nil || balance == nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance for account %s: %v", request.From, err)
		return types.NewDispatchTxError(request, types.ErrGeneric, err)
	}

	minimum := new(big.Int).Mul(tx.GasPrice(), new(big.Int).SetUint64(tx.Gas()))
	minimum = minimum.Add(minimum, tx.Value())
	if minimum.Cmp(balance) > 0 {
		err = fmt.Errorf("balance smaller than minimum required for this transaction, from = %s, balance = %s, minimum = %s, chain = %s",
			request.From, balance, minimum, request.Chain)
		xcontext.Logger(ctx).Errorf("%v", err)
		return types.NewDispatchTxError(request, types.ErrNotEnoughBalance, err)
	}

	err = d.client.SendTransaction(ctx, tx)
	switch {
	case err == nil:
		xcontext.Logger(ctx).Infof("Tx is dispatched successfully for chain %s from %s txHash = %s nonce = %d",
			request.Chain, request.From, tx.Hash(), tx.Nonce())
		return types.NewDispatchTxSuccess(request)

	case IsAlreadyKnown(err):
		// Transactions are never rebroadcast, so an identical transaction in
		// the pool was sent by another request with the same nonce. Ethereum
		// does not return error codes in its JSON RPC, so we rely on string
		// matching.
		xcontext.Logger(ctx).Warnf("Tx %s with nonce %d is already known by chain %s",
			tx.Hash(), tx.Nonce(), request.Chain)
		return types.NewDispatchTxError(request, types.ErrNonceNotMatched, err)

	case IsNonceError(err):
		xcontext.Logger(ctx).Warnf("Nonce %d of tx %s is rejected: %v", tx.Nonce(), tx.Hash(), err)
		return types.NewDispatchTxError(request, types.ErrNonceNotMatched, err)

	default:
		xcontext.Logger(ctx).Errorf("Failed to dispatch tx: %v", err)
		return types.NewDispatchTxError(request, types.ErrSubmitTx, err)
	}
}
