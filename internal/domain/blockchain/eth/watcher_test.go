package eth

import (
	"errors"
	"testing"

	"github.com/questx-lab/tournament/mocks"
	"github.com/questx-lab/tournament/pkg/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_Watcher_Check(t *testing.T) {
	ctx := testutil.MockContext()

	client := &mocks.EthClient{}
	client.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	client.On("BlockNumber", mock.Anything).Return(uint64(11), nil).Once()
	client.On("BlockNumber", mock.Anything).Return(uint64(11), nil)

	w := NewWatcher("crossfi-testnet", client)
	require.NoError(t, w.Check(ctx))
	require.NoError(t, w.Check(ctx))
	require.Equal(t, uint64(11), w.Height())

	for i := 1; i < MaxStalledChecks; i++ {
		require.NoError(t, w.Check(ctx))
	}

	err := w.Check(ctx)
	var stalled *BlockHeightStalledError
	require.ErrorAs(t, err, &stalled)
	require.Equal(t, uint64(11), stalled.Height)
}

func Test_Watcher_RPCError(t *testing.T) {
	ctx := testutil.MockContext()

	client := &mocks.EthClient{}
	client.On("BlockNumber", mock.Anything).Return(nil, errors.New("connection refused"))

	w := NewWatcher("crossfi-testnet", client)
	require.Error(t, w.Check(ctx))
	require.Equal(t, uint64(0), w.Height())
}
