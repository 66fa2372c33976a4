package blockchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/contract/tournament"
	"github.com/questx-lab/tournament/internal/common"
	"github.com/questx-lab/tournament/internal/domain/blockchain/eth"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/questx-lab/tournament/pkg/numberutil"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

const (
	methodIncrementScore       = "incrementScore"
	methodResetTournament      = "resetTournament"
	methodPurchaseBoosterBalls = "purchaseBoosterBalls"
)

// Revert reasons the contract uses for an unknown tournament id.
var notFoundReasons = []string{"not found", "does not exist", "invalid tournament"}

type contractGateway struct {
	chain   string
	address ethcommon.Address

	client     eth.EthClient
	contract   *tournament.Tournament
	abi        *abi.ABI
	signer     *eth.Signer
	dispatcher Dispatcher
	fetcher    eth.ReceiptFetcher
}

// ErrChainIDMismatch is returned when the node serves a different network
// than the configured chain id.
var ErrChainIDMismatch = errors.New("chain id mismatch")

// NewGateway validates the configuration against the node before anything is
// signed for it.
func NewGateway(ctx context.Context, cfg config.ChainConfigs, client eth.EthClient) (Gateway, error) {
	address, err := ethutil.ParseAddress(cfg.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid contract address %q: %w", cfg.ContractAddress, err)
	}

	signer, err := eth.NewSigner(cfg.PrivateKey, cfg.ChainID, cfg.UseEip1559)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	nodeChainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot get chain id of %s: %w", cfg.Name, err)
	}

	if nodeChainID.Cmp(signer.ChainID()) != 0 {
		return nil, fmt.Errorf("%w: configured %s, node serves %s", ErrChainIDMismatch, signer.ChainID(), nodeChainID)
	}

	contract, err := tournament.NewTournament(address, client)
	if err != nil {
		return nil, err
	}

	parsed, err := tournament.TournamentMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return &contractGateway{
		chain:      cfg.Name,
		address:    address,
		client:     client,
		contract:   contract,
		abi:        parsed,
		signer:     signer,
		dispatcher: eth.NewEthDispatcher(client),
		fetcher:    eth.NewReceiptFetcher(client, cfg.Name, cfg.ReceiptPollInterval, cfg.ConfirmationTimeout),
	}, nil
}

func (g *contractGateway) ContractAddress() ethcommon.Address {
	return g.address
}

func (g *contractGateway) ChainID() *big.Int {
	return g.signer.ChainID()
}

func (g *contractGateway) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

func (g *contractGateway) ReadCurrentTournament(ctx context.Context) (types.Tournament, error) {
	id, start, end, remaining, err := g.contract.GetCurrentTournamentInfo(g.callOpts(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current tournament info: %v", err)
		return types.Tournament{}, eth.ClassifyReadError(err)
	}

	t, err := newTournament(id, start, end, remaining)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid current tournament: %v", err)
		return types.Tournament{}, err
	}

	return t, nil
}

func (g *contractGateway) ReadCurrentLeaderboard(ctx context.Context) ([]types.LeaderboardEntry, error) {
	players, scores, err := g.contract.GetCurrentLeaderboard(g.callOpts(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get current leaderboard: %v", err)
		return nil, eth.ClassifyReadError(err)
	}

	return newLeaderboard(players, scores), nil
}

func (g *contractGateway) ReadHistoricalLeaderboard(
	ctx context.Context, tournamentID uint64,
) (types.TournamentLeaderboard, error) {
	start, end, players, scores, err := g.contract.GetTournamentLeaderboard(
		g.callOpts(ctx), new(big.Int).SetUint64(tournamentID))
	if err != nil {
		if reason, ok := eth.RevertReason(err); ok && isNotFoundReason(reason) {
			return types.TournamentLeaderboard{}, errorx.New(errorx.NotFound, "Not found tournament %d", tournamentID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get leaderboard of tournament %d: %v", tournamentID, err)
		return types.TournamentLeaderboard{}, eth.ClassifyReadError(err)
	}

	if start.Sign() == 0 && end.Sign() == 0 {
		return types.TournamentLeaderboard{}, errorx.New(errorx.NotFound, "Not found tournament %d", tournamentID)
	}

	// A finished tournament has no time remaining.
	t, err := newTournament(new(big.Int).SetUint64(tournamentID), start, end, big.NewInt(0))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Invalid tournament %d: %v", tournamentID, err)
		return types.TournamentLeaderboard{}, err
	}

	return types.TournamentLeaderboard{
		Tournament: t,
		Entries:    newLeaderboard(players, scores),
	}, nil
}

func (g *contractGateway) ReadPlayerStats(ctx context.Context, address string) (types.PlayerStats, error) {
	player, err := parsePlayer(address)
	if err != nil {
		return types.PlayerStats{}, err
	}

	score, boosterBalls, isActive, err := g.contract.GetPlayerStats(g.callOpts(ctx), player)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get stats of player %s: %v", player, err)
		return types.PlayerStats{}, eth.ClassifyReadError(err)
	}

	return types.PlayerStats{
		Score:        numberutil.Normalize(score),
		BoosterBalls: numberutil.Normalize(boosterBalls),
		IsActive:     isActive,
	}, nil
}

func (g *contractGateway) ReadAllPlayers(ctx context.Context) ([]types.PlayerScore, error) {
	players, scores, err := g.contract.GetAllPlayers(g.callOpts(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get all players: %v", err)
		return nil, eth.ClassifyReadError(err)
	}

	if len(players) != len(scores) {
		xcontext.Logger(ctx).Errorf("Mismatched players and scores: %d != %d", len(players), len(scores))
		return nil, errorx.New(errorx.ContractState, "Contract returned mismatched players and scores")
	}

	result := make([]types.PlayerScore, 0, len(players))
	for i, player := range players {
		if player == (ethcommon.Address{}) {
			continue
		}

		result = append(result, types.PlayerScore{
			Address: player,
			Score:   numberutil.Normalize(scores[i]),
		})
	}

	return result, nil
}

func (g *contractGateway) ReadMpxConversion(ctx context.Context, address string) (numberutil.Number, error) {
	player, err := parsePlayer(address)
	if err != nil {
		return numberutil.Number{}, err
	}

	mpx, err := g.contract.ConvertScoresToMPX(g.callOpts(ctx), player)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot convert scores of player %s: %v", player, err)
		return numberutil.Number{}, eth.ClassifyReadError(err)
	}

	return numberutil.Normalize(mpx), nil
}

func (g *contractGateway) SubmitScoreIncrement(
	ctx context.Context, points, boosterBallsUsed uint64, player string,
) (types.Confirmation, error) {
	address, err := parsePlayer(player)
	if err != nil {
		return types.Confirmation{}, err
	}

	bigPoints := new(big.Int).SetUint64(points)
	bigBoosterBalls := new(big.Int).SetUint64(boosterBallsUsed)

	return g.submit(ctx, methodIncrementScore,
		func(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
			return g.contract.IncrementScore(opts, address, bigPoints, bigBoosterBalls)
		},
		address, bigPoints, bigBoosterBalls,
	)
}

func (g *contractGateway) SubmitTournamentReset(ctx context.Context) (types.Confirmation, error) {
	return g.submit(ctx, methodResetTournament, g.contract.ResetTournament)
}

func (g *contractGateway) PurchaseCallData() ([]byte, error) {
	data, err := g.abi.Pack(methodPurchaseBoosterBalls)
	if err != nil {
		return nil, errorx.New(errorx.Internal, "Cannot encode purchase call: %v", err)
	}

	return data, nil
}

// submit simulates, signs, dispatches and waits for a server-signed
// transaction. A failure at any step leaves chain state unchanged or
// reports the revert of the mined transaction.
func (g *contractGateway) submit(
	ctx context.Context,
	method string,
	build func(opts *bind.TransactOpts) (*ethtypes.Transaction, error),
	params ...any,
) (types.Confirmation, error) {
	start := time.Now()

	if err := g.simulate(ctx, method, params...); err != nil {
		g.recordFailure(method, err)
		return types.Confirmation{}, err
	}

	opts := g.signer.TransactionOpts(ctx, nil)
	if !g.signer.UseEip1559() {
		gasPrice, err := g.client.SuggestGasPrice(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot suggest gas price: %v", err)
			err = eth.ClassifyWriteError(err)
			g.recordFailure(method, err)
			return types.Confirmation{}, err
		}
		opts.GasPrice = gasPrice
	}

	tx, err := build(opts)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot build %s transaction: %v", method, err)
		err = eth.ClassifyWriteError(err)
		g.recordFailure(method, err)
		return types.Confirmation{}, err
	}

	result := g.dispatcher.Dispatch(ctx, &types.DispatchedTxRequest{
		Chain: g.chain,
		From:  g.signer.Address(),
		Tx:    tx,
	})
	if !result.Success {
		err := dispatchError(result)
		g.recordFailure(method, err)
		return types.Confirmation{}, err
	}

	update := g.fetcher.WaitForReceipt(ctx, tx.Hash(), tx.Nonce())
	switch update.Result {
	case types.TrackResultConfirmed:
		common.PromHistograms[common.TransactionConfirmationSeconds].
			WithLabelValues(method, "confirmed").Observe(time.Since(start).Seconds())

		return types.Confirmation{
			TxHash:      tx.Hash(),
			BlockNumber: update.BlockHeight,
			GasUsed:     update.Receipt.GasUsed,
			Nonce:       tx.Nonce(),
		}, nil

	case types.TrackResultFailure:
		reason := g.replay(ctx, tx, update.Receipt.BlockNumber)
		xcontext.Logger(ctx).Errorf("Transaction %s reverted in block %d: %q", tx.Hash(), update.BlockHeight, reason)
		err := errorx.Reverted(reason)
		g.recordFailure(method, err)
		return types.Confirmation{}, err

	default:
		common.PromHistograms[common.TransactionConfirmationSeconds].
			WithLabelValues(method, "timeout").Observe(time.Since(start).Seconds())
		err := errorx.New(errorx.TransactionTimeout, "Transaction %s was not confirmed in time", tx.Hash())
		g.recordFailure(method, err)
		return types.Confirmation{}, err
	}
}

// simulate runs the call from the server account so that a revert is
// reported with its reason before any gas is spent.
func (g *contractGateway) simulate(ctx context.Context, method string, params ...any) error {
	raw := &tournament.TournamentRaw{Contract: g.contract}
	opts := &bind.CallOpts{Context: ctx, From: g.signer.Address()}

	var out []any
	if err := raw.Call(opts, &out, method, params...); err != nil {
		xcontext.Logger(ctx).Warnf("Simulation of %s failed: %v", method, err)
		return eth.ClassifyWriteError(err)
	}

	return nil
}

// replay re-executes a mined transaction at its block to recover the revert
// reason.
func (g *contractGateway) replay(ctx context.Context, tx *ethtypes.Transaction, block *big.Int) string {
	_, err := g.client.CallContract(ctx, ethereum.CallMsg{
		From:  g.signer.Address(),
		To:    tx.To(),
		Gas:   tx.Gas(),
		Value: tx.Value(),
		Data:  tx.Data(),
	}, block)

	reason, _ := eth.RevertReason(err)
	return reason
}

func (g *contractGateway) recordFailure(method string, err error) {
	reason := "unknown"
	if errx, ok := err.(errorx.Error); ok {
		reason = fmt.Sprint(int(errx.Code))
	}

	common.PromCounters[common.BlockchainTransactionFailure].WithLabelValues(method, reason).Inc()
}

func dispatchError(result *types.DispatchedTxResult) error {
	switch result.Err {
	case types.ErrNonceNotMatched:
		return errorx.New(errorx.NonceConflict, "Nonce conflict, please retry")
	case types.ErrNotEnoughBalance:
		return errorx.New(errorx.ChainWrite, "Server account cannot pay for the transaction")
	default:
		if result.Cause == nil {
			return errorx.New(errorx.ChainWrite, "Cannot submit transaction")
		}
		return eth.ClassifyWriteError(result.Cause)
	}
}

func parsePlayer(address string) (ethcommon.Address, error) {
	player, err := ethutil.ParseAddress(address)
	if err != nil {
		return ethcommon.Address{}, errorx.New(errorx.InvalidAddress, "Invalid address %q: %v", address, err)
	}

	return player, nil
}

func isNotFoundReason(reason string) bool {
	reason = strings.ToLower(reason)
	for _, r := range notFoundReasons {
		if strings.Contains(reason, r) {
			return true
		}
	}

	return false
}

func newTournament(id, start, end, remaining *big.Int) (types.Tournament, error) {
	values := make([]uint64, 0, 4)
	for _, v := range []*big.Int{id, start, end, remaining} {
		u, err := numberutil.SafeUint64(v)
		if err != nil {
			return types.Tournament{}, errorx.New(errorx.ContractState, "Contract returned an out of range value")
		}
		values = append(values, u)
	}

	t := types.Tournament{
		ID:            values[0],
		StartTime:     values[1],
		EndTime:       values[2],
		TimeRemaining: values[3],
	}

	if t.StartTime >= t.EndTime {
		return types.Tournament{}, errorx.New(errorx.ContractState,
			"Tournament %d starts at %d but ends at %d", t.ID, t.StartTime, t.EndTime)
	}

	return t, nil
}

// newLeaderboard keeps the contract's order and drops empty slots.
func newLeaderboard(players [types.LeaderboardSize]ethcommon.Address, scores [types.LeaderboardSize]*big.Int) []types.LeaderboardEntry {
	entries := make([]types.LeaderboardEntry, 0, types.LeaderboardSize)
	for i, player := range players {
		if player == (ethcommon.Address{}) {
			continue
		}

		entries = append(entries, types.LeaderboardEntry{
			Player: player,
			Score:  numberutil.Normalize(scores[i]),
		})
	}

	return entries
}
