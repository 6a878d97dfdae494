package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/internal/web"
	"github.com/pacam/formrelay/middlewares"
	"github.com/pacam/formrelay/pkg/logger"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	echo := func(c web.Context) error {
		return text(c, http.StatusOK, middlewares.GetRequestID(c.Context()))
	}

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), echo, middlewares.RequestID())

		got := res.rec.Header().Get(middlewares.RequestIDHeader)
		assert.Len(t, got, 26)
		assert.Equal(t, got, res.rec.Body.String())
	})

	t.Run("reuses upstream id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "trace-123")
		res := serve(t, req, echo, middlewares.RequestID())

		assert.Equal(t, "trace-123", res.rec.Header().Get(middlewares.RequestIDHeader))
		assert.Equal(t, "trace-123", res.rec.Body.String())
	})

	t.Run("ignores oversized upstream id", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middlewares.RequestIDHeader, strings.Repeat("x", 500))
		res := serve(t, req, echo, middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "gen" })))

		assert.Equal(t, "gen", res.rec.Body.String())
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Amzn-Trace-Id", "Root=1")
		res := serve(t, req, echo, middlewares.RequestID(middlewares.WithRequestIDHeaders("X-Amzn-Trace-Id")))

		assert.Equal(t, "Root=1", res.rec.Body.String())
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _ := logger.New(logger.Config{Output: &buf}, middlewares.RequestIDExtractor())

	app := web.New(
		web.WithLogger(log),
		web.WithMiddleware(middlewares.RequestID(middlewares.WithRequestIDGenerator(func() string { return "req-1" }))),
		web.WithHandlers(routes(func(r web.Router) {
			r.GET("/", func(c web.Context) error {
				c.LogInfo("handled")
				return c.NoContent(http.StatusNoContent)
			})
		})),
	)
	app.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "handled", record["msg"])
	assert.Equal(t, "req-1", record["request_id"])

	_, ok := middlewares.RequestIDExtractor()(context.Background())
	assert.False(t, ok)
}
