package main

import "github.com/urfave/cli/v2"

var envFileFlag = &cli.StringFlag{
	Name:    "env-file",
	Usage:   "Load environment variables from `FILE` before reading the configuration",
	Value:   ".env",
	EnvVars: []string{"ENV_FILE"},
}

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "tournament"
	app.Usage = "Gateway between the game and the on-chain tournament contract"
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Flags:       []cli.Flag{envFileFlag},
			Category:    "Api",
			Description: `Serve the tournament, player and booster ball apis, the prometheus metrics and the node health job.`,
		},
		{
			Action:      server.showStatus,
			Name:        "status",
			Usage:       "Print the current tournament and leaderboard",
			Flags:       []cli.Flag{envFileFlag},
			Category:    "Operator",
			Description: `Read the contract once and print its state as tables.`,
		},
	}

	s.app = app
}
