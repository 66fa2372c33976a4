package eth

import (
	"context"
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/tournament/pkg/errorx"
)

const revertPrefix = "execution reverted"

var nonceMessages = []string{
	"nonce too low",
	"nonce too high",
	"replacement transaction underpriced",
}

// RevertReason extracts the revert reason from a node error. The second
// return value is false when err is not a revert at all. A revert without a
// decodable reason returns an empty reason.
func RevertReason(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if reason, ok := unpackRevertData(dataErr.ErrorData()); ok {
			return reason, true
		}
	}

	msg := err.Error()
	idx := strings.Index(msg, revertPrefix)
	if idx < 0 {
		return "", false
	}

	reason := strings.TrimSpace(msg[idx+len(revertPrefix):])
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
	return reason, true
}

func unpackRevertData(data any) (string, bool) {
	s, ok := data.(string)
	if !ok || s == "" {
		return "", false
	}

	raw, err := hexutil.Decode(s)
	if err != nil || len(raw) < 4 {
		return "", false
	}

	reason, err := abi.UnpackRevert(raw)
	if err != nil {
		// Custom error or panic code, still a revert.
		return "", true
	}

	return reason, true
}

func IsNonceError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, m := range nonceMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}

	return false
}

func IsAlreadyKnown(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already known")
}

// ClassifyReadError converts a node error from a view call into the error
// taxonomy used by the gateway.
func ClassifyReadError(err error) error {
	if err == nil {
		return nil
	}

	if reason, ok := RevertReason(err); ok {
		if reason == "" {
			return errorx.New(errorx.ContractState, "Contract rejected the call")
		}
		return errorx.Error{
			Code:    errorx.ContractState,
			Message: "Contract rejected the call: " + reason,
			Reason:  reason,
		}
	}

	return errorx.New(errorx.ChainRead, "Cannot read from chain")
}

// ClassifyWriteError converts a node error from building, simulating or
// submitting a transaction into the error taxonomy used by the gateway.
func ClassifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	if reason, ok := RevertReason(err); ok {
		return errorx.Reverted(reason)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errorx.New(errorx.TransactionTimeout, "Transaction was not confirmed in time")
	}

	if IsNonceError(err) {
		return errorx.New(errorx.NonceConflict, "Nonce conflict, please retry")
	}

	return errorx.New(errorx.ChainWrite, "Cannot submit transaction")
}
