package middleware

import (
	"context"

	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/router"
	"golang.org/x/time/rate"
)

// RateLimit shares one token bucket across all requests of a branch. Writes
// are paid by the server account, so the bucket is global rather than per
// client.
func RateLimit(limit float64, burst int) router.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(limit), burst)

	return func(ctx context.Context) (context.Context, error) {
		if !limiter.Allow() {
			return nil, errorx.New(errorx.TooManyRequest, "Too many requests, please retry later")
		}

		return ctx, nil
	}
}
