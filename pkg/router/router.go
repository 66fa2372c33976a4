package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. Returning an error stops the
// request and the error is written as the response.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, whatever the outcome.
type CloserFunc func(ctx context.Context)

type Router struct {
	engine *gin.Engine
	inner  gin.IRouter
	root   context.Context

	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a router whose handlers receive a context derived from root.
func New(root context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	return &Router{
		engine: engine,
		inner:  engine,
		root:   root,
	}
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

// Branch returns a router sharing the routes of r. Middlewares added to the
// branch do not affect r.
func (r *Router) Branch() *Router {
	return &Router{
		engine:  r.engine,
		inner:   r.inner,
		root:    r.root,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

// Group is a Branch mounted under a path prefix.
func (r *Router) Group(prefix string) *Router {
	branch := r.Branch()
	branch.inner = r.inner.Group(prefix)
	return branch
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
