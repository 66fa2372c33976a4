package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/logger"
	"github.com/questx-lab/tournament/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	ID    string `uri:"id"`
	Name  string `form:"name" json:"name"`
	Count int    `json:"count"`
}

type echoResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func echo(ctx context.Context, req *echoRequest) (*echoResponse, error) {
	return &echoResponse{ID: req.ID, Name: req.Name, Count: req.Count}, nil
}

func newTestRouter() *Router {
	return New(xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE)))
}

func serveRequest(r *Router, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp
}

func Test_GET_BindsURIAndQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo/:id", echo)

	w := serveRequest(r, http.MethodGet, "/echo/7?name=alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"7","name":"alice","count":0}`, w.Body.String())
}

func Test_POST_BindsJSONBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo/:id", echo)

	w := serveRequest(r, http.MethodPost, "/echo/9", `{"name":"bob","count":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"9","name":"bob","count":3}`, w.Body.String())
}

func Test_POST_EmptyBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	w := serveRequest(r, http.MethodPost, "/echo", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"","name":"","count":0}`, w.Body.String())
}

func Test_POST_InvalidJSON(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echo)

	w := serveRequest(r, http.MethodPost, "/echo", `{"count":"many"`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, int64(errorx.InvalidRequest), decodeError(t, w).Code)
}

func Test_ErrorEnvelope(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		status int
		code   errorx.Code
		reason string
		retry  string
	}{
		{
			name:   "not found",
			err:    errorx.New(errorx.NotFound, "Not found tournament %d", 9),
			status: http.StatusNotFound,
			code:   errorx.NotFound,
		},
		{
			name:   "reverted",
			err:    errorx.Reverted("tournament ended"),
			status: http.StatusUnprocessableEntity,
			code:   errorx.TransactionReverted,
			reason: "tournament ended",
		},
		{
			name:   "chain read",
			err:    errorx.New(errorx.ChainRead, "Cannot read from chain"),
			status: http.StatusBadGateway,
			code:   errorx.ChainRead,
			retry:  "1",
		},
		{
			name:   "timeout is not retried",
			err:    errorx.New(errorx.TransactionTimeout, "Transaction was not confirmed in time"),
			status: http.StatusGatewayTimeout,
			code:   errorx.TransactionTimeout,
		},
		{
			name:   "plain error",
			err:    errors.New("leaked internals"),
			status: http.StatusInternalServerError,
			code:   errorx.Unknown.Code,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter()
			GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
				return nil, tt.err
			})

			w := serveRequest(r, http.MethodGet, "/fail", "")
			require.Equal(t, tt.status, w.Code)
			require.Equal(t, tt.retry, w.Header().Get("Retry-After"))

			resp := decodeError(t, w)
			require.Equal(t, int64(tt.code), resp.Code)
			require.Equal(t, tt.reason, resp.Reason)
			require.NotContains(t, resp.Error, "leaked")
		})
	}
}

func Test_HandlerContextFollowsRequest(t *testing.T) {
	root := xcontext.WithLogger(context.Background(), logger.NewLogger(logger.SILENCE))
	root = xcontext.WithRequestID(root, "root-value")
	r := New(root)

	var handlerErr error
	var rootValue string
	GET(r, "/slow", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		<-ctx.Done()
		handlerErr = ctx.Err()
		rootValue = xcontext.RequestID(ctx)
		return nil, ctx.Err()
	})

	reqCtx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(reqCtx)
	r.Handler().ServeHTTP(httptest.NewRecorder(), req)

	require.ErrorIs(t, handlerErr, context.Canceled)
	require.Equal(t, "root-value", rootValue)
}

func Test_PanicIsRecovered(t *testing.T) {
	r := newTestRouter()
	GET(r, "/panic", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		panic("boom")
	})

	w := serveRequest(r, http.MethodGet, "/panic", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, int64(errorx.Unknown.Code), decodeError(t, w).Code)
}

func Test_MiddlewaresAndClosers(t *testing.T) {
	type key struct{}

	var closed []string
	r := newTestRouter()
	r.AddCloser(func(ctx context.Context) {
		closed = append(closed, xcontext.HTTPRequest(ctx).URL.Path)
	})

	guarded := r.Branch()
	guarded.Before(func(ctx context.Context) (context.Context, error) {
		if xcontext.HTTPRequest(ctx).Header.Get("X-Allow") == "" {
			return nil, errorx.New(errorx.TooManyRequest, "Slow down")
		}
		return context.WithValue(ctx, key{}, "allowed"), nil
	})

	handler := func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		name, _ := ctx.Value(key{}).(string)
		return &echoResponse{Name: name}, nil
	}
	GET(guarded, "/guarded", handler)
	GET(r, "/open", handler)

	w := serveRequest(r, http.MethodGet, "/guarded", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Allow", "1")
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"","name":"allowed","count":0}`, w.Body.String())

	w = serveRequest(r, http.MethodGet, "/open", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":"","name":"","count":0}`, w.Body.String())

	require.Equal(t, []string{"/guarded", "/guarded", "/open"}, closed)
}

func Test_Group(t *testing.T) {
	r := newTestRouter()
	api := r.Group("/api")
	GET(api, "/echo/:id", echo)

	require.Equal(t, http.StatusOK, serveRequest(r, http.MethodGet, "/api/echo/1", "").Code)
	require.Equal(t, http.StatusNotFound, serveRequest(r, http.MethodGet, "/echo/1", "").Code)
}
