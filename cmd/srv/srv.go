package main

import (
	"context"
	"net/http"

	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/internal/domain"
	"github.com/questx-lab/tournament/internal/domain/blockchain"
	"github.com/questx-lab/tournament/internal/domain/blockchain/eth"
	"github.com/questx-lab/tournament/pkg/logger"
	"github.com/questx-lab/tournament/pkg/router"
	"github.com/questx-lab/tournament/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app *cli.App
	ctx context.Context

	ethClient eth.EthClient
	gateway   blockchain.Gateway

	tournamentDomain  domain.TournamentDomain
	playerDomain      domain.PlayerDomain
	boosterBallDomain domain.BoosterBallDomain

	router *router.Router
	server *http.Server

	syncLogger func() error
}

func (s *srv) loadConfig(ct *cli.Context) error {
	cfg, err := config.Load(ct.String(envFileFlag.Name))
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(context.Background(), cfg)
	return nil
}

func (s *srv) loadLogger() {
	level := logger.ParseLevel(xcontext.Configs(s.ctx).LogLevel)
	l := logger.NewLogger(level)
	s.syncLogger = l.Sync
	s.ctx = xcontext.WithLogger(s.ctx, l)
}

func (s *srv) loadEthClient() error {
	s.ethClient = eth.NewEthClient(xcontext.Configs(s.ctx).Chain)
	return s.ethClient.Start(s.ctx)
}

func (s *srv) loadGateway() error {
	gateway, err := blockchain.NewGateway(s.ctx, xcontext.Configs(s.ctx).Chain, s.ethClient)
	if err != nil {
		return err
	}

	s.gateway = gateway
	return nil
}

func (s *srv) loadDomains() {
	s.tournamentDomain = domain.NewTournamentDomain(s.gateway)
	s.playerDomain = domain.NewPlayerDomain(s.gateway)
	s.boosterBallDomain = domain.NewBoosterBallDomain(s.gateway)
}

// close releases what prepare opened. Safe after a partial prepare.
func (s *srv) close() {
	if s.ethClient != nil {
		s.ethClient.Close()
	}

	if s.syncLogger != nil {
		// Syncing a terminal stderr fails on some platforms.
		_ = s.syncLogger()
	}
}

// prepare runs the loaders shared by every command.
func (s *srv) prepare(ct *cli.Context) error {
	if err := s.loadConfig(ct); err != nil {
		return err
	}

	s.loadLogger()
	if err := s.loadEthClient(); err != nil {
		return err
	}

	if err := s.loadGateway(); err != nil {
		return err
	}

	s.loadDomains()
	return nil
}
