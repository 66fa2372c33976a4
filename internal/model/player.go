package model

import "github.com/questx-lab/tournament/pkg/numberutil"

type PlayerScore struct {
	Address string            `json:"address"`
	Score   numberutil.Number `json:"score"`
}

type GetPlayerStatsRequest struct {
	Address string `uri:"address"`
}

type GetPlayerStatsResponse struct {
	Score        numberutil.Number `json:"score"`
	BoosterBalls numberutil.Number `json:"boosterBalls"`
	IsActive     bool              `json:"isActive"`
}

type GetMpxScoreRequest struct {
	Address string `uri:"address"`
}

type GetMpxScoreResponse struct {
	MpxScore numberutil.Number `json:"mpxScore"`
}

type GetAllPlayersRequest struct{}

type GetAllPlayersResponse []PlayerScore

type IncrementScoreRequest struct {
	Points           uint64 `json:"points"`
	BoosterBallsUsed uint64 `json:"boosterBallsUsed"`
	UserAddress      string `json:"userAddress"`
}

type IncrementScoreResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
}
