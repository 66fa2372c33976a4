package xcontext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/questx-lab/tournament/config"
	"github.com/questx-lab/tournament/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	require.Nil(t, Error(ctx))
	require.Equal(t, "", RequestID(ctx))
	require.True(t, StartTime(ctx).IsZero())
	require.NotNil(t, Logger(ctx))
	require.Equal(t, config.Default().BoosterBall, Configs(ctx).BoosterBall)

	cfg := config.Default()
	cfg.Chain.ChainID = 4157
	now := time.Now()
	ctx = WithConfigs(ctx, cfg)
	ctx = WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = WithError(ctx, errors.New("boom"))
	ctx = WithStartTime(ctx, now)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithResponse(ctx, 42)

	require.Equal(t, uint64(4157), Configs(ctx).Chain.ChainID)
	require.EqualError(t, Error(ctx), "boom")
	require.Equal(t, now, StartTime(ctx))
	require.Equal(t, "req-1", RequestID(ctx))
	require.Equal(t, 42, Response(ctx))
}
