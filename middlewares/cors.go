package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pacam/formrelay/internal/web"
)

// DefaultCORSMaxAge is how long browsers may cache a preflight answer.
const DefaultCORSMaxAge = 12 * time.Hour

type corsConfig struct {
	origins     []string
	methods     []string
	headers     []string
	expose      []string
	maxAge      time.Duration
	credentials bool
}

// CORSOption configures CORS.
type CORSOption func(*corsConfig)

// WithAllowOrigins sets the allowed origins. "*" allows any origin.
// Empty entries are ignored; an empty list keeps the default.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *corsConfig) {
		var out []string
		for _, o := range origins {
			if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
				out = append(out, o)
			}
		}
		if len(out) > 0 {
			cfg.origins = out
		}
	}
}

// WithAllowHeaders sets the request headers a preflight may ask for.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *corsConfig) {
		cfg.headers = headers
	}
}

// WithExposeHeaders sets the response headers readable by the browser.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *corsConfig) {
		cfg.expose = headers
	}
}

// WithAllowCredentials lets browsers send cookies and auth headers.
func WithAllowCredentials() CORSOption {
	return func(cfg *corsConfig) {
		cfg.credentials = true
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(d time.Duration) CORSOption {
	return func(cfg *corsConfig) {
		cfg.maxAge = d
	}
}

// CORS sets cross-origin headers for allowed origins and answers preflight
// requests with 204. Requests from other origins pass through untouched and
// are blocked by the browser.
func CORS(opts ...CORSOption) web.Middleware {
	cfg := &corsConfig{
		origins: []string{"*"},
		methods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		headers: []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		expose:  []string{RequestIDHeader},
		maxAge:  DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	methods := strings.Join(cfg.methods, ", ")
	headers := strings.Join(cfg.headers, ", ")
	expose := strings.Join(cfg.expose, ", ")
	maxAge := strconv.Itoa(int(cfg.maxAge.Seconds()))
	wildcard := slices.Contains(cfg.origins, "*")

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			origin := c.Header("Origin")
			if origin == "" || !(wildcard || slices.Contains(cfg.origins, origin)) {
				return next(c)
			}

			h := c.Response().Header()
			h.Add("Vary", "Origin")
			if wildcard && !cfg.credentials {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Set("Access-Control-Allow-Origin", origin)
			}
			if cfg.credentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}
			if expose != "" {
				h.Set("Access-Control-Expose-Headers", expose)
			}

			if c.Request().Method != http.MethodOptions || c.Header("Access-Control-Request-Method") == "" {
				return next(c)
			}

			h.Add("Vary", "Access-Control-Request-Method")
			h.Add("Vary", "Access-Control-Request-Headers")
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if cfg.maxAge > 0 {
				h.Set("Access-Control-Max-Age", maxAge)
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}
