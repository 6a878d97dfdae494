package middlewares

import "github.com/pacam/formrelay/internal/web"

var secureHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Cache-Control", "no-store"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
}

// SecureHeaders sets response headers suited to a JSON-only API.
func SecureHeaders() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			h := c.Response().Header()
			for _, kv := range secureHeaders {
				h.Set(kv[0], kv[1])
			}
			return next(c)
		}
	}
}
