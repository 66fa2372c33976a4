package domain

import (
	"github.com/questx-lab/tournament/internal/domain/blockchain/types"
	"github.com/questx-lab/tournament/internal/model"
)

func convertTournament(t types.Tournament) model.Tournament {
	return model.Tournament{
		ID:            t.ID,
		StartTime:     t.StartTime,
		EndTime:       t.EndTime,
		TimeRemaining: t.TimeRemaining,
	}
}

func convertLeaderboard(entries []types.LeaderboardEntry) []model.LeaderboardEntry {
	modelEntries := []model.LeaderboardEntry{}
	for _, e := range entries {
		modelEntries = append(modelEntries, model.LeaderboardEntry{
			Player: e.Player.Hex(),
			Score:  e.Score,
		})
	}
	return modelEntries
}

func convertPlayerScores(players []types.PlayerScore) []model.PlayerScore {
	modelPlayers := []model.PlayerScore{}
	for _, p := range players {
		modelPlayers = append(modelPlayers, model.PlayerScore{
			Address: p.Address.Hex(),
			Score:   p.Score,
		})
	}
	return modelPlayers
}
