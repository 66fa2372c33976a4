package model

import "github.com/questx-lab/tournament/pkg/numberutil"

type Tournament struct {
	ID            uint64 `json:"id"`
	StartTime     uint64 `json:"startTime"`
	EndTime       uint64 `json:"endTime"`
	TimeRemaining uint64 `json:"timeRemaining"`
}

type LeaderboardEntry struct {
	Player string            `json:"player"`
	Score  numberutil.Number `json:"score"`
}

type TournamentLeaderboard struct {
	Tournament          Tournament         `json:"tournament"`
	Leaderboard         []LeaderboardEntry `json:"leaderboard"`
	IsCurrentTournament bool               `json:"isCurrentTournament"`
}

type GetCurrentTournamentRequest struct{}

type GetCurrentTournamentResponse struct {
	Success bool       `json:"success"`
	Data    Tournament `json:"data"`
}

type GetLeaderboardRequest struct{}

type GetLeaderboardResponse []LeaderboardEntry

type GetLeaderboardByIDRequest struct {
	TournamentID string `uri:"tournamentId"`
}

type GetLeaderboardByIDResponse struct {
	Success bool                  `json:"success"`
	Data    TournamentLeaderboard `json:"data"`
}

type ResetTournamentRequest struct{}

type ResetTournamentResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
}
