package domain

import (
	"context"

	"github.com/questx-lab/tournament/internal/domain/blockchain"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/ethutil"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

type PlayerDomain interface {
	GetStats(context.Context, *model.GetPlayerStatsRequest) (*model.GetPlayerStatsResponse, error)
	GetMpxScore(context.Context, *model.GetMpxScoreRequest) (*model.GetMpxScoreResponse, error)
	GetAll(context.Context, *model.GetAllPlayersRequest) (*model.GetAllPlayersResponse, error)
	IncrementScore(context.Context, *model.IncrementScoreRequest) (*model.IncrementScoreResponse, error)
}

type playerDomain struct {
	gateway blockchain.Gateway
}

func NewPlayerDomain(gateway blockchain.Gateway) *playerDomain {
	return &playerDomain{gateway: gateway}
}

func (d *playerDomain) GetStats(
	ctx context.Context, req *model.GetPlayerStatsRequest,
) (*model.GetPlayerStatsResponse, error) {
	if err := validateAddress(req.Address); err != nil {
		return nil, err
	}

	stats, err := d.gateway.ReadPlayerStats(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	return &model.GetPlayerStatsResponse{
		Score:        stats.Score,
		BoosterBalls: stats.BoosterBalls,
		IsActive:     stats.IsActive,
	}, nil
}

func (d *playerDomain) GetMpxScore(
	ctx context.Context, req *model.GetMpxScoreRequest,
) (*model.GetMpxScoreResponse, error) {
	if err := validateAddress(req.Address); err != nil {
		return nil, err
	}

	mpx, err := d.gateway.ReadMpxConversion(ctx, req.Address)
	if err != nil {
		return nil, err
	}

	return &model.GetMpxScoreResponse{MpxScore: mpx}, nil
}

func (d *playerDomain) GetAll(
	ctx context.Context, req *model.GetAllPlayersRequest,
) (*model.GetAllPlayersResponse, error) {
	players, err := d.gateway.ReadAllPlayers(ctx)
	if err != nil {
		return nil, err
	}

	resp := model.GetAllPlayersResponse(convertPlayerScores(players))
	return &resp, nil
}

func (d *playerDomain) IncrementScore(
	ctx context.Context, req *model.IncrementScoreRequest,
) (*model.IncrementScoreResponse, error) {
	if req.Points == 0 {
		return nil, errorx.New(errorx.InvalidRequest, "Points must be positive")
	}

	if req.UserAddress == "" {
		return nil, errorx.New(errorx.InvalidRequest, "Missing userAddress")
	}

	if err := validateAddress(req.UserAddress); err != nil {
		return nil, err
	}

	confirmation, err := d.gateway.SubmitScoreIncrement(ctx, req.Points, req.BoosterBallsUsed, req.UserAddress)
	if err != nil {
		return nil, err
	}

	xcontext.Logger(ctx).Infof("Incremented score of %s by %d in tx %s",
		req.UserAddress, req.Points, confirmation.TxHash.Hex())

	return &model.IncrementScoreResponse{
		Success:         true,
		TransactionHash: confirmation.TxHash.Hex(),
	}, nil
}

func validateAddress(address string) error {
	if _, err := ethutil.ParseAddress(address); err != nil {
		return errorx.New(errorx.InvalidAddress, "Invalid address %q: %v", address, err)
	}

	return nil
}
