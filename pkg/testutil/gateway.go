package testutil

import (
	"context"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/questx-lab/tournament/pkg/numberutil"
)

// MockGateway is a deterministic contract gateway. Unset functions return
// zero values. Calls counts every chain-facing call.
type MockGateway struct {
	ReadCurrentTournamentFunc     func(ctx context.Context) (types.Tournament, error)
	ReadCurrentLeaderboardFunc    func(ctx context.Context) ([]types.LeaderboardEntry, error)
	ReadHistoricalLeaderboardFunc func(ctx context.Context, tournamentID uint64) (types.TournamentLeaderboard, error)
	ReadPlayerStatsFunc           func(ctx context.Context, address string) (types.PlayerStats, error)
	ReadAllPlayersFunc            func(ctx context.Context) ([]types.PlayerScore, error)
	ReadMpxConversionFunc         func(ctx context.Context, address string) (numberutil.Number, error)
	SubmitScoreIncrementFunc      func(ctx context.Context, points, boosterBallsUsed uint64, player string) (types.Confirmation, error)
	SubmitTournamentResetFunc     func(ctx context.Context) (types.Confirmation, error)
	PurchaseCallDataFunc          func() ([]byte, error)
	ChainIDFunc                   func() *big.Int

	Calls atomic.Int64
}

func (m *MockGateway) ReadCurrentTournament(ctx context.Context) (types.Tournament, error) {
	m.Calls.Add(1)
	if m.ReadCurrentTournamentFunc != nil {
		return m.ReadCurrentTournamentFunc(ctx)
	}

	return types.Tournament{}, nil
}

func (m *MockGateway) ReadCurrentLeaderboard(ctx context.Context) ([]types.LeaderboardEntry, error) {
	m.Calls.Add(1)
	if m.ReadCurrentLeaderboardFunc != nil {
		return m.ReadCurrentLeaderboardFunc(ctx)
	}

	return nil, nil
}

func (m *MockGateway) ReadHistoricalLeaderboard(ctx context.Context, tournamentID uint64) (types.TournamentLeaderboard, error) {
	m.Calls.Add(1)
	if m.ReadHistoricalLeaderboardFunc != nil {
		return m.ReadHistoricalLeaderboardFunc(ctx, tournamentID)
	}

	return types.TournamentLeaderboard{}, nil
}

func (m *MockGateway) ReadPlayerStats(ctx context.Context, address string) (types.PlayerStats, error) {
	m.Calls.Add(1)
	if m.ReadPlayerStatsFunc != nil {
		return m.ReadPlayerStatsFunc(ctx, address)
	}

	return types.PlayerStats{}, nil
}

func (m *MockGateway) ReadAllPlayers(ctx context.Context) ([]types.PlayerScore, error) {
	m.Calls.Add(1)
	if m.ReadAllPlayersFunc != nil {
		return m.ReadAllPlayersFunc(ctx)
	}

	return nil, nil
}

func (m *MockGateway) ReadMpxConversion(ctx context.Context, address string) (numberutil.Number, error) {
	m.Calls.Add(1)
	if m.ReadMpxConversionFunc != nil {
		return m.ReadMpxConversionFunc(ctx, address)
	}

	return numberutil.NewNumber(0), nil
}

func (m *MockGateway) SubmitScoreIncrement(
	ctx context.Context, points, boosterBallsUsed uint64, player string,
) (types.Confirmation, error) {
	m.Calls.Add(1)
	if m.SubmitScoreIncrementFunc != nil {
		return m.SubmitScoreIncrementFunc(ctx, points, boosterBallsUsed, player)
	}

	return types.Confirmation{}, nil
}

func (m *MockGateway) SubmitTournamentReset(ctx context.Context) (types.Confirmation, error) {
	m.Calls.Add(1)
	if m.SubmitTournamentResetFunc != nil {
		return m.SubmitTournamentResetFunc(ctx)
	}

	return types.Confirmation{}, nil
}

func (m *MockGateway) PurchaseCallData() ([]byte, error) {
	if m.PurchaseCallDataFunc != nil {
		return m.PurchaseCallDataFunc()
	}

	return ethutil.MethodID("purchaseBoosterBalls()"), nil
}

func (m *MockGateway) ContractAddress() common.Address {
	return common.HexToAddress(ContractAddress)
}

func (m *MockGateway) ChainID() *big.Int {
	if m.ChainIDFunc != nil {
		return m.ChainIDFunc()
	}

	return big.NewInt(ChainID)
}
