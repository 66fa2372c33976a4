package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/questx-lab/tournament/pkg/errorx"
	"github.com/questx-lab/tournament/pkg/xcontext"
)

// retryAfter is the Retry-After value, in seconds, sent with retryable errors.
const retryAfter = "1"

type errorResponse struct {
	Success bool   `json:"success"`
	Code    int64  `json:"code"`
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
}

func newErrorResponse(err error) (int, errorResponse) {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	return errorx.HTTPStatus(errx.Code), errorResponse{
		Success: false,
		Code:    int64(errx.Code),
		Error:   errx.Message,
		Reason:  errx.Reason,
	}
}

func handleResponse(ctx context.Context, c *gin.Context) {
	if err := xcontext.Error(ctx); err != nil {
		var errx errorx.Error
		if !errors.As(err, &errx) {
			xcontext.Logger(ctx).Errorf("Unexpected error: %v", err)
		}

		status, resp := newErrorResponse(err)
		if errorx.Retryable(errorx.Code(resp.Code)) {
			c.Header("Retry-After", retryAfter)
		}

		c.JSON(status, resp)
		return
	}

	if resp := xcontext.Response(ctx); resp != nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	c.Status(http.StatusNoContent)
}
