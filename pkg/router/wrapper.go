package router

import (
	"context"
	"errors"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	befores := append([]MiddlewareFunc{}, router.befores...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(c *gin.Context) {
		// Values come from the root context, cancellation from the request.
		ctx, cancel := context.WithCancel(router.root)
		defer cancel()
		stop := context.AfterFunc(c.Request.Context(), cancel)
		defer stop()

		ctx = xcontext.WithHTTPRequest(ctx, c.Request)
		ctx = xcontext.WithResponseWriter(ctx, c.Writer)
		ctx = xcontext.WithRoute(ctx, c.FullPath())

		ctx = serve(ctx, c, method, befores, handler)

		handleResponse(ctx, c)
		for _, closer := range closers {
			closer(ctx)
		}
	}
}

// serve runs the middlewares and the handler. The returned context carries
// either the response or the error.
func serve[Request, Response any](
	ctx context.Context,
	c *gin.Context,
	method string,
	befores []MiddlewareFunc,
	handler HandlerFunc[Request, Response],
) (result context.Context) {
	defer func() {
		if r := recover(); r != nil {
			xcontext.Logger(ctx).Errorf("Panic while handling %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, r, debug.Stack())
			result = xcontext.WithError(ctx, errorx.Unknown)
		}
	}()

	for _, before := range befores {
		next, err := before(ctx)
		if err != nil {
			return xcontext.WithError(ctx, err)
		}
		ctx = next
	}

	req := new(Request)
	if err := bind(c, method, req); err != nil {
		return xcontext.WithError(ctx, errorx.New(errorx.InvalidRequest, "Invalid request: %v", err))
	}

	resp, err := handler(ctx, req)
	if err != nil {
		return xcontext.WithError(ctx, err)
	}

	return xcontext.WithResponse(ctx, resp)
}

func bind(c *gin.Context, method string, req any) error {
	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(req); err != nil {
			return err
		}
	}

	switch method {
	case http.MethodGet:
		return c.ShouldBindQuery(req)

	case http.MethodPost:
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			return nil
		}

		if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil

	default:
		return errors.New("unsupported method")
	}
}
