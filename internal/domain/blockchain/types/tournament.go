package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/questx-lab/tournament/pkg/numberutil"
)

// LeaderboardSize is the fixed number of slots the contract reports.
const LeaderboardSize = 10

type Tournament struct {
	ID            uint64
	StartTime     uint64
	EndTime       uint64
	TimeRemaining uint64
}

type LeaderboardEntry struct {
	Player common.Address
	Score  numberutil.Number
}

type TournamentLeaderboard struct {
	Tournament Tournament
	Entries    []LeaderboardEntry
}

type PlayerStats struct {
	Score        numberutil.Number
	BoosterBalls numberutil.Number
	IsActive     bool
}

type PlayerScore struct {
	Address common.Address
	Score   numberutil.Number
}
