package blockchain

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/pkg/numberutil"
)

// Gateway is the only component that talks to the tournament contract.
// Every error it returns is an errorx.Error.
type Gateway interface {
	ReadCurrentTournament(ctx context.Context) (types.Tournament, error)
	ReadCurrentLeaderboard(ctx context.Context) ([]types.LeaderboardEntry, error)
	ReadHistoricalLeaderboard(ctx context.Context, tournamentID uint64) (types.TournamentLeaderboard, error)
	ReadPlayerStats(ctx context.Context, address string) (types.PlayerStats, error)
	ReadAllPlayers(ctx context.Context) ([]types.PlayerScore, error)
	ReadMpxConversion(ctx context.Context, address string) (numberutil.Number, error)

	// Server-signed writes. They block until the transaction is mined or the
	// confirmation timeout elapses.
	SubmitScoreIncrement(ctx context.Context, points, boosterBallsUsed uint64, player string) (types.Confirmation, error)
	SubmitTournamentReset(ctx context.Context) (types.Confirmation, error)

	// PurchaseCallData returns the calldata of the payable purchase function.
	// The transaction itself is signed by the player.
	PurchaseCallData() ([]byte, error)
	ContractAddress() ethcommon.Address
	ChainID() *big.Int
}

// This is an interface for all dispatcher that sends transactions to the chain.
type Dispatcher interface {
	Dispatch(ctx context.Context, request *types.DispatchedTxRequest) *types.DispatchedTxResult
}
