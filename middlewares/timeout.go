package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pacam/formrelay/internal/web"
)

// Timeout attaches a deadline to the request context. Handlers run on the
// request goroutine and are expected to honour the context; when the deadline
// has passed and nothing was written, a *TimeoutError is returned instead of
// whatever the handler produced. A non-positive duration disables the deadline.
func Timeout(d time.Duration) web.Middleware {
	if d <= 0 {
		return func(next web.HandlerFunc) web.HandlerFunc { return next }
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Written() {
				c.LogWarn("request timeout", slog.Duration("timeout", d))
				return &TimeoutError{Duration: d}
			}
			return err
		}
	}
}
