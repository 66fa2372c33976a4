package types

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

type DispatchError int

const (
	ErrNil DispatchError = iota // no error
	ErrGeneric
	ErrNotEnoughBalance
	ErrSubmitTx
	ErrNonceNotMatched
)

func (e DispatchError) String() string {
	switch e {
	case ErrNil:
		return "nil"
	case ErrNotEnoughBalance:
		return "not enough balance"
	case ErrSubmitTx:
		return "submit tx"
	case ErrNonceNotMatched:
		return "nonce not matched"
	default:
		return "generic"
	}
}

type DispatchedTxRequest struct {
	Chain string
	From  common.Address
	Tx    *ethtypes.Transaction
}

type DispatchedTxResult struct {
	Success bool
	Err     DispatchError
	Chain   string
	TxHash  common.Hash

	// Cause is the raw node error behind Err, kept for logging and revert
	// decoding.
	Cause error
}

func NewDispatchTxError(request *DispatchedTxRequest, err DispatchError, cause error) *DispatchedTxResult {
	return &DispatchedTxResult{
		Chain:   request.Chain,
		TxHash:  request.Tx.Hash(),
		Success: false,
		Err:     err,
		Cause:   cause,
	}
}

func NewDispatchTxSuccess(request *DispatchedTxRequest) *DispatchedTxResult {
	return &DispatchedTxResult{
		Chain:   request.Chain,
		TxHash:  request.Tx.Hash(),
		Success: true,
		Err:     ErrNil,
	}
}
