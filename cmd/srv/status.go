package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/questx-lab/tournament/internal/model"
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func (s *srv) showStatus(ct *cli.Context) error {
	defer s.close()
	if err := s.prepare(ct); err != nil {
		return err
	}

	current, err := s.tournamentDomain.GetCurrent(s.ctx, &model.GetCurrentTournamentRequest{})
	if err != nil {
		return err
	}

	leaderboard, err := s.tournamentDomain.GetLeaderboard(s.ctx, &model.GetLeaderboardRequest{})
	if err != nil {
		return err
	}

	printStatus(ct.App.Writer, current.Data, *leaderboard)
	return nil
}

func printStatus(w io.Writer, t model.Tournament, entries []model.LeaderboardEntry) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	info := table.New("Tournament", "Start", "End", "Remaining (s)").WithWriter(w)
	info.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	info.AddRow(t.ID, t.StartTime, t.EndTime, t.TimeRemaining)
	info.Print()

	fmt.Fprintln(w)

	board := table.New("Rank", "Player", "Score").WithWriter(w)
	board.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	for i, e := range entries {
		board.AddRow(i+1, e.Player, e.Score.String())
	}
	board.Print()
}
