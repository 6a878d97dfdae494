package middlewares

import (
	"fmt"
	"net/http"

	"github.com/pacam/formrelay/internal/web"
)

// DefaultBodyLimit fits a form PDF plus a handful of scanned documents,
// base64 encoded.
const DefaultBodyLimit int64 = 50 << 20

// BodyLimit rejects bodies larger than limit bytes. A declared Content-Length
// over the limit fails immediately; otherwise the body reader stops at the
// limit and BindJSON reports 413.
func BodyLimit(limit int64) web.Middleware {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			r := c.Request()
			if r.ContentLength > limit {
				return web.ErrRequestTooLarge(fmt.Sprintf("Request body exceeds %d bytes", limit))
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(c.Response(), r.Body, limit)
			}
			return next(c)
		}
	}
}
