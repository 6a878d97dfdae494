package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pacam/formrelay/internal/web"
	"github.com/pacam/formrelay/middlewares"
	"github.com/pacam/formrelay/pkg/logger"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ErrorHandler renders every error as {message, errors?}. HTTPErrors keep
// their status; recovered panics and unknown errors become 500 and timeouts
// 503, without exposing the cause.
func ErrorHandler(c web.Context, err error) error {
	he := web.AsHTTPError(err)
	if he == nil {
		if middlewares.IsTimeoutError(err) {
			he = web.ErrServiceUnavailable("Request timed out", web.WithError(err))
		} else {
			he = web.ErrInternal("Internal server error", web.WithError(err))
		}
	}

	cause := he.Err
	if cause == nil {
		cause = he
	}
	switch {
	case he.Code >= http.StatusInternalServerError:
		c.LogError("request failed", slog.Int("status", he.Code), logger.Error(cause))
	case he.Code == http.StatusBadRequest && len(he.Errors) > 0:
		c.LogInfo("request rejected", slog.Int("status", he.Code), slog.Int("errors", len(he.Errors)))
	default:
		c.LogWarn("request rejected", slog.Int("status", he.Code), logger.Error(cause))
	}

	return c.JSON(he.Code, errorResponse{Message: he.Message, Errors: he.Errors})
}

// NotFound answers unknown routes.
func NotFound(c web.Context) error {
	return web.ErrNotFound("Not found")
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c web.Context) error {
	return web.ErrMethodNotAllowed("Method not allowed")
}
