package domain

import (
	"context"
	"strconv"

	"github.com/questx-lab/tournament/internal/domain/blockchain"
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type TournamentDomain interface {
	GetCurrent(context.Context, *model.GetCurrentTournamentRequest) (*model.GetCurrentTournamentResponse, error)
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetLeaderboardByID(context.Context, *model.GetLeaderboardByIDRequest) (*model.GetLeaderboardByIDResponse, error)
	Reset(context.Context, *model.ResetTournamentRequest) (*model.ResetTournamentResponse, error)
}

type selectionKind int

const (
	selectCurrent selectionKind = iota
	selectHistorical
)

// tournamentSelection says which contract read serves a requested id. It is
// resolved once against the contract's own notion of the current tournament.
type tournamentSelection struct {
	kind selectionKind
	id   uint64
}

func selectTournament(requested uint64, current types.Tournament) (tournamentSelection, error) {
	switch {
	case requested == current.ID:
		return tournamentSelection{kind: selectCurrent, id: requested}, nil
	case requested > current.ID:
		return tournamentSelection{}, errorx.New(errorx.NotFound, "Tournament %d does not exist", requested)
	default:
		return tournamentSelection{kind: selectHistorical, id: requested}, nil
	}
}

type tournamentDomain struct {
	gateway blockchain.Gateway
}

func NewTournamentDomain(gateway blockchain.Gateway) *tournamentDomain {
	return &tournamentDomain{gateway: gateway}
}

func (d *tournamentDomain) GetCurrent(
	ctx context.Context, req *model.GetCurrentTournamentRequest,
) (*model.GetCurrentTournamentResponse, error) {
	tournament, err := d.gateway.ReadCurrentTournament(ctx)
	if err != nil {
		return nil, err
	}

	return &model.GetCurrentTournamentResponse{
		Success: true,
		Data:    convertTournament(tournament),
	}, nil
}

func (d *tournamentDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	entries, err := d.gateway.ReadCurrentLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.GetLeaderboardResponse(convertLeaderboard(entries))
	return &resp, nil
}

func (d *tournamentDomain) GetLeaderboardByID(
	ctx context.Context, req *model.GetLeaderboardByIDRequest,
) (*model.GetLeaderboardByIDResponse, error) {
	requested, err := strconv.ParseUint(req.TournamentID, 10, 64)
	if err != nil || requested == 0 {
		return nil, errorx.New(errorx.InvalidRequest, "Invalid tournament id %q", req.TournamentID)
	}

	current, err := d.gateway.ReadCurrentTournament(ctx)
	if err != nil {
		return nil, err
	}

	selection, err := selectTournament(requested, current)
	if err != nil {
		return nil, err
	}

	var view model.TournamentLeaderboard
	switch selection.kind {
	case selectCurrent:
		entries, err := d.gateway.ReadCurrentLeaderboard(ctx)
		if err != nil {
			return nil, err
		}

		view = model.TournamentLeaderboard{
			Tournament:          convertTournament(current),
			Leaderboard:         convertLeaderboard(entries),
			IsCurrentTournament: true,
		}

	case selectHistorical:
		historical, err := d.gateway.ReadHistoricalLeaderboard(ctx, selection.id)
		if err != nil {
			return nil, err
		}

		view = model.TournamentLeaderboard{
			Tournament:          convertTournament(historical.Tournament),
			Leaderboard:         convertLeaderboard(historical.Entries),
			IsCurrentTournament: false,
		}
	}

	return &model.GetLeaderboardByIDResponse{Success: true, Data: view}, nil
}

func (d *tournamentDomain) Reset(
	ctx context.Context, req *model.ResetTournamentRequest,
) (*model.ResetTournamentResponse, error) {
	confirmation, err := d.gateway.SubmitTournamentReset(ctx)
	if err != nil {
		return nil, err
	}

	xcontext.Logger(ctx).Infof("Tournament reset in tx %s at block %d",
		confirmation.TxHash.Hex(), confirmation.BlockNumber)

	return &model.ResetTournamentResponse{
		Success:         true,
		TransactionHash: confirmation.TxHash.Hex(),
	}, nil
}
