package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/questx-lab/tournament/pkg/router"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

const RequestIDHeader = "X-Request-ID"

// WithRequestID keeps the caller's request id if it sent one, otherwise it
// generates a new one. The id is echoed in the response headers.
func WithRequestID() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		id := ""
		if req := xcontext.HTTPRequest(ctx); req != nil {
			id = req.Header.Get(RequestIDHeader)
		}

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		if w := xcontext.ResponseWriter(ctx); w != nil {
			w.Header().Set(RequestIDHeader, id)
		}

		return xcontext.WithRequestID(ctx, id), nil
	}
}
