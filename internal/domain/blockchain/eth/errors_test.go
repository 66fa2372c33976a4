package eth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

type dataError struct {
	msg  string
	data any
}

func (e *dataError) Error() string  { return e.msg }
func (e *dataError) ErrorData() any { return e.data }

func revertData(t *testing.T, reason string) string {
	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)

	packed, err := abi.Arguments{{Type: stringType}}.Pack(reason)
	require.NoError(t, err)

	return hexutil.Encode(append(ethutil.MethodID("Error(string)"), packed...))
}

func Test_RevertReason(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		reason   string
		reverted bool
	}{
		{
			name:     "revert data",
			err:      &dataError{msg: "execution reverted", data: revertData(t, "tournament ended")},
			reason:   "tournament ended",
			reverted: true,
		},
		{
			name:     "wrapped revert data",
			err:      fmt.Errorf("simulate: %w", &dataError{msg: "execution reverted", data: revertData(t, "not owner")}),
			reason:   "not owner",
			reverted: true,
		},
		{
			name:     "custom error data",
			err:      &dataError{msg: "execution reverted", data: "0xdeadbeef"},
			reason:   "",
			reverted: true,
		},
		{
			name:     "message only",
			err:      errors.New("execution reverted: tournament not found"),
			reason:   "tournament not found",
			reverted: true,
		},
		{
			name:     "bare revert",
			err:      errors.New("execution reverted"),
			reason:   "",
			reverted: true,
		},
		{
			name:     "transport error",
			err:      errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"),
			reverted: false,
		},
		{
			name:     "nil",
			err:      nil,
			reverted: false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			reason, reverted := RevertReason(tt.err)
			require.Equal(t, tt.reverted, reverted)
			require.Equal(t, tt.reason, reason)
		})
	}
}

func Test_ClassifyWriteError(t *testing.T) {
	err := ClassifyWriteError(errors.New("execution reverted: tournament ended"))
	require.True(t, errorx.Is(err, errorx.TransactionReverted))

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, "tournament ended", errx.Reason)

	require.True(t, errorx.Is(ClassifyWriteError(errors.New("nonce too low: next nonce 5, tx nonce 4")), errorx.NonceConflict))
	require.True(t, errorx.Is(ClassifyWriteError(errors.New("replacement transaction underpriced")), errorx.NonceConflict))
	require.True(t, errorx.Is(ClassifyWriteError(fmt.Errorf("send: %w", context.DeadlineExceeded)), errorx.TransactionTimeout))
	require.True(t, errorx.Is(ClassifyWriteError(errors.New("connection reset by peer")), errorx.ChainWrite))
	require.NoError(t, ClassifyWriteError(nil))
}

func Test_ClassifyReadError(t *testing.T) {
	err := ClassifyReadError(&dataError{msg: "execution reverted", data: revertData(t, "player not registered")})
	require.True(t, errorx.Is(err, errorx.ContractState))

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, "player not registered", errx.Reason)

	require.True(t, errorx.Is(ClassifyReadError(errors.New("i/o timeout")), errorx.ChainRead))
	require.NoError(t, ClassifyReadError(nil))
}

func Test_IsAlreadyKnown(t *testing.T) {
	require.True(t, IsAlreadyKnown(errors.New("already known")))
	require.True(t, IsAlreadyKnown(errors.New("ALREADY KNOWN")))
	require.False(t, IsAlreadyKnown(errors.New("nonce too low")))
	require.False(t, IsAlreadyKnown(nil))
}
