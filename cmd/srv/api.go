package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/questx-lab/tournament/internal/domain/blockchain/eth"
	"github.com/questx-lab/tournament/internal/domain/cron"
	"github.com/questx-lab/tournament/internal/middleware"
	"github.com/questx-lab/tournament/pkg/prometheus"
	"github.com/questx-lab/tournament/pkg/router"
	"github.com/questx-lab/tournament/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func (s *srv) startApi(ct *cli.Context) error {
	defer s.close()
	if err := s.prepare(ct); err != nil {
		return err
	}

	cfg := xcontext.Configs(s.ctx)
	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cronJobManager, err := cron.NewCronJobManager()
	if err != nil {
		return err
	}

	watcher := eth.NewWatcher(cfg.Chain.Name, s.ethClient)
	cronJobManager.Register(cron.NewNodeHealthCronJob(watcher, cfg.Chain.HealthCheckInterval))
	if err := cronJobManager.Start(ctx); err != nil {
		return err
	}
	defer cronJobManager.Stop(s.ctx)

	promServer := &http.Server{
		Addr:    cfg.PrometheusServer.Address(),
		Handler: prometheus.NewHandler(),
	}
	go func() {
		xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.PrometheusServer.Port)
		if err := promServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
		}
	}()

	s.loadRouter()
	s.server = &http.Server{
		Addr:              cfg.ApiServer.Address(),
		Handler:           middleware.Cors(cfg.ApiServer.AllowedOrigins, s.router.Handler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
		serverErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			xcontext.Logger(s.ctx).Errorf("Server stopped: %v", err)
			return err
		}
	case <-ctx.Done():
		xcontext.Logger(s.ctx).Infof("Got a shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(s.ctx, shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot shutdown server gracefully: %v", err)
	}

	if err := promServer.Shutdown(shutdownCtx); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot shutdown prometheus gracefully: %v", err)
	}

	xcontext.Logger(s.ctx).Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)

	s.router = router.New(s.ctx).Group("/api")
	s.router.Before(middleware.WithStartTime())
	s.router.Before(middleware.WithRequestID())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Read API
	{
		router.GET(s.router, "/tournament/current", s.tournamentDomain.GetCurrent)
		router.GET(s.router, "/leaderboard", s.tournamentDomain.GetLeaderboard)
		router.GET(s.router, "/leaderboard/:tournamentId", s.tournamentDomain.GetLeaderboardByID)
		router.GET(s.router, "/player/:address", s.playerDomain.GetStats)
		router.GET(s.router, "/player/:address/mpx", s.playerDomain.GetMpxScore)
		router.GET(s.router, "/players", s.playerDomain.GetAll)
		router.POST(s.router, "/boosterball/purchase-data", s.boosterBallDomain.GetPurchaseData)
	}

	// These following APIs are signed by the server key.
	writeRouter := s.router.Branch()
	if cfg.ApiServer.WriteRateLimit > 0 {
		writeRouter.Before(middleware.RateLimit(cfg.ApiServer.WriteRateLimit, cfg.ApiServer.WriteRateBurst))
	}
	{
		router.POST(writeRouter, "/score/increment", s.playerDomain.IncrementScore)
		router.POST(writeRouter, "/tournament/reset", s.tournamentDomain.Reset)
	}
}
