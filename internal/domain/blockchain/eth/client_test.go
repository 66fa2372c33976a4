package eth

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/pkg/testutil"
	"github.com/stretchr/testify/require"
)

type revertError struct {
	reason string
}

func (e *revertError) Error() string  { return "execution reverted: " + e.reason }
func (e *revertError) ErrorCode() int { return 3 }
func (e *revertError) ErrorData() any { return nil }

// ethService answers a subset of the eth namespace. The first failures calls
// of each method return a transport-like error.
type ethService struct {
	failures     int32
	blockCalls   int32
	callCalls    int32
	revertReason string
}

func (s *ethService) BlockNumber() (hexutil.Uint64, error) {
	if atomic.AddInt32(&s.blockCalls, 1) <= s.failures {
		return 0, errors.New("upstream unavailable")
	}

	return 42, nil
}

func (s *ethService) Call(args map[string]any, block string) (hexutil.Bytes, error) {
	atomic.AddInt32(&s.callCalls, 1)
	if s.revertReason != "" {
		return nil, &revertError{reason: s.revertReason}
	}

	return hexutil.Bytes{0x01}, nil
}

func newTestClient(t *testing.T, svc *ethService) EthClient {
	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", svc))

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)
	t.Cleanup(server.Stop)

	client := NewEthClient(config.ChainConfigs{
		Name:       "crossfi-testnet",
		RPC:        ts.URL,
		RpcTimeout: time.Second,
	})
	require.NoError(t, client.Start(testutil.MockContext()))
	t.Cleanup(client.Close)

	return client
}

func Test_EthClient_RetriesReadOnce(t *testing.T) {
	svc := &ethService{failures: 1}
	client := newTestClient(t, svc)

	height, err := client.BlockNumber(testutil.MockContext())
	require.NoError(t, err)
	require.Equal(t, uint64(42), height)
	require.Equal(t, int32(2), atomic.LoadInt32(&svc.blockCalls))
}

func Test_EthClient_GivesUpAfterOneRetry(t *testing.T) {
	svc := &ethService{failures: 5}
	client := newTestClient(t, svc)

	_, err := client.BlockNumber(testutil.MockContext())
	require.Error(t, err)
	require.Equal(t, int32(1+MaxReadRetry), atomic.LoadInt32(&svc.blockCalls))
}

func Test_EthClient_DoesNotRetryRevert(t *testing.T) {
	svc := &ethService{revertReason: "tournament not found"}
	client := newTestClient(t, svc)

	to := common.HexToAddress(testutil.ContractAddress)
	_, err := client.CallContract(testutil.MockContext(), ethereum.CallMsg{To: &to}, nil)
	require.Error(t, err)

	reason, reverted := RevertReason(err)
	require.True(t, reverted)
	require.Equal(t, "tournament not found", reason)
	require.Equal(t, int32(1), atomic.LoadInt32(&svc.callCalls))
}

func Test_EthClient_CallContract(t *testing.T) {
	svc := &ethService{}
	client := newTestClient(t, svc)

	to := common.HexToAddress(testutil.ContractAddress)
	out, err := client.CallContract(context.Background(), ethereum.CallMsg{To: &to}, nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, out)
}
