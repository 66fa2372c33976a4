package domain

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/numberutil"
	"github.com/questx-lab/tournament/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_playerDomain_GetStats(t *testing.T) {
	gateway := &testutil.MockGateway{
		ReadPlayerStatsFunc: func(ctx context.Context, address string) (types.PlayerStats, error) {
			require.Equal(t, testutil.PlayerAddress, address)
			return types.PlayerStats{
				Score:        numberutil.NewNumber(120),
				BoosterBalls: numberutil.NewNumber(3),
				IsActive:     true,
			}, nil
		},
	}

	resp, err := NewPlayerDomain(gateway).GetStats(
		testutil.MockContext(), &model.GetPlayerStatsRequest{Address: testutil.PlayerAddress})
	require.NoError(t, err)
	require.Equal(t, &model.GetPlayerStatsResponse{
		Score:        numberutil.NewNumber(120),
		BoosterBalls: numberutil.NewNumber(3),
		IsActive:     true,
	}, resp)
}

func Test_playerDomain_InvalidAddress(t *testing.T) {
	badChecksum := "0x" + strings.ToLower(testutil.PlayerAddress[2:3]) + strings.ToUpper(testutil.PlayerAddress[3:])
	addresses := []string{"", "0x123", "not-an-address", badChecksum}

	for _, address := range addresses {
		gateway := &testutil.MockGateway{}
		d := NewPlayerDomain(gateway)
		ctx := testutil.MockContext()

		_, err := d.GetStats(ctx, &model.GetPlayerStatsRequest{Address: address})
		require.True(t, errorx.Is(err, errorx.InvalidAddress), "address %q", address)

		_, err = d.GetMpxScore(ctx, &model.GetMpxScoreRequest{Address: address})
		require.True(t, errorx.Is(err, errorx.InvalidAddress), "address %q", address)

		require.Zero(t, gateway.Calls.Load())
	}
}

func Test_playerDomain_GetMpxScore(t *testing.T) {
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	gateway := &testutil.MockGateway{
		ReadMpxConversionFunc: func(ctx context.Context, address string) (numberutil.Number, error) {
			return numberutil.Normalize(huge), nil
		},
	}

	resp, err := NewPlayerDomain(gateway).GetMpxScore(
		testutil.MockContext(), &model.GetMpxScoreRequest{Address: testutil.PlayerAddress})
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", resp.MpxScore.String())
	require.False(t, resp.MpxScore.IsSafe())
}

func Test_playerDomain_GetAll(t *testing.T) {
	gateway := &testutil.MockGateway{
		ReadAllPlayersFunc: func(ctx context.Context) ([]types.PlayerScore, error) {
			return []types.PlayerScore{
				{Address: common.HexToAddress(testutil.PlayerAddress), Score: numberutil.NewNumber(5)},
				{Address: common.HexToAddress(testutil.ServerAddress), Score: numberutil.NewNumber(1)},
			}, nil
		},
	}

	resp, err := NewPlayerDomain(gateway).GetAll(testutil.MockContext(), &model.GetAllPlayersRequest{})
	require.NoError(t, err)
	require.Equal(t, model.GetAllPlayersResponse{
		{Address: testutil.PlayerAddress, Score: numberutil.NewNumber(5)},
		{Address: testutil.ServerAddress, Score: numberutil.NewNumber(1)},
	}, *resp)
}

func Test_playerDomain_IncrementScore(t *testing.T) {
	hash := common.HexToHash("0x1234")
	gateway := &testutil.MockGateway{
		SubmitScoreIncrementFunc: func(
			ctx context.Context, points, boosterBallsUsed uint64, player string,
		) (types.Confirmation, error) {
			require.Equal(t, uint64(50), points)
			require.Equal(t, uint64(2), boosterBallsUsed)
			require.Equal(t, testutil.PlayerAddress, player)
			return types.Confirmation{TxHash: hash, BlockNumber: 3}, nil
		},
	}

	resp, err := NewPlayerDomain(gateway).IncrementScore(testutil.MockContext(), &model.IncrementScoreRequest{
		Points:           50,
		BoosterBallsUsed: 2,
		UserAddress:      testutil.PlayerAddress,
	})
	require.NoError(t, err)
	require.Equal(t, &model.IncrementScoreResponse{Success: true, TransactionHash: hash.Hex()}, resp)
}

func Test_playerDomain_IncrementScore_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		req     *model.IncrementScoreRequest
		wantErr errorx.Code
	}{
		{
			name:    "zero points",
			req:     &model.IncrementScoreRequest{Points: 0, UserAddress: testutil.PlayerAddress},
			wantErr: errorx.InvalidRequest,
		},
		{
			name:    "missing address",
			req:     &model.IncrementScoreRequest{Points: 1},
			wantErr: errorx.InvalidRequest,
		},
		{
			name:    "malformed address",
			req:     &model.IncrementScoreRequest{Points: 1, UserAddress: "0xzz"},
			wantErr: errorx.InvalidAddress,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &testutil.MockGateway{}
			_, err := NewPlayerDomain(gateway).IncrementScore(testutil.MockContext(), tt.req)
			require.True(t, errorx.Is(err, tt.wantErr), "got %v", err)
			require.Zero(t, gateway.Calls.Load())
		})
	}
}

func Test_playerDomain_IncrementScore_Timeout(t *testing.T) {
	gateway := &testutil.MockGateway{
		SubmitScoreIncrementFunc: func(context.Context, uint64, uint64, string) (types.Confirmation, error) {
			return types.Confirmation{}, errorx.New(errorx.TransactionTimeout, "Transaction is not confirmed in time")
		},
	}

	_, err := NewPlayerDomain(gateway).IncrementScore(testutil.MockContext(), &model.IncrementScoreRequest{
		Points:      10,
		UserAddress: testutil.PlayerAddress,
	})
	require.True(t, errorx.Is(err, errorx.TransactionTimeout))
}
