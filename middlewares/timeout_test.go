package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/internal/web"
	"github.com/pacam/formrelay/middlewares"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("deadline reaches the handler", func(t *testing.T) {
		t.Parallel()
		h := func(c web.Context) error {
			<-c.Context().Done()
			return nil
		}
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), h, middlewares.Timeout(20*time.Millisecond))

		require.True(t, middlewares.IsTimeoutError(res.err), res.err)
		assert.Equal(t, http.StatusInternalServerError, res.rec.Code)
		assert.Contains(t, res.err.Error(), "20ms")
	})

	t.Run("fast handler is untouched", func(t *testing.T) {
		t.Parallel()
		h := func(c web.Context) error {
			_, hasDeadline := c.Context().Deadline()
			assert.True(t, hasDeadline)
			return ok(c)
		}
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), h, middlewares.Timeout(time.Second))
		assert.NoError(t, res.err)
		assert.Equal(t, "ok", res.rec.Body.String())
	})

	t.Run("written response is kept", func(t *testing.T) {
		t.Parallel()
		h := func(c web.Context) error {
			if err := text(c, http.StatusAccepted, "late"); err != nil {
				return err
			}
			<-c.Context().Done()
			return nil
		}
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), h, middlewares.Timeout(10*time.Millisecond))
		assert.NoError(t, res.err)
		assert.Equal(t, http.StatusAccepted, res.rec.Code)
	})

	t.Run("zero duration leaves the context alone", func(t *testing.T) {
		t.Parallel()
		h := func(c web.Context) error {
			_, hasDeadline := c.Context().Deadline()
			assert.False(t, hasDeadline)
			return ok(c)
		}
		res := serve(t, httptest.NewRequest(http.MethodGet, "/", nil), h, middlewares.Timeout(0))
		assert.NoError(t, res.err)
		assert.Equal(t, "ok", res.rec.Body.String())
	})
}
