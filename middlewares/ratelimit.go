package middlewares

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pacam/formrelay/internal/web"
)

const (
	defaultRateLimitIdle = 10 * time.Minute
	rateLimitSweepEvery  = time.Minute
)

type rateLimitConfig struct {
	key   func(web.Context) string
	now   func() time.Time
	idle  time.Duration
	burst int
}

// RateLimitOption configures RateLimit.
type RateLimitOption func(*rateLimitConfig)

// WithRateLimitKey replaces the client IP as the bucket key.
func WithRateLimitKey(fn func(web.Context) string) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if fn != nil {
			cfg.key = fn
		}
	}
}

// WithTrustedProxies keys buckets on the forwarded client address when the
// connection comes from one of the given networks. See ForwardedClientIP.
func WithTrustedProxies(proxies ...netip.Prefix) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if len(proxies) > 0 {
			cfg.key = ForwardedClientIP(proxies...)
		}
	}
}

// WithRateLimitIdle sets how long an unused bucket is kept.
func WithRateLimitIdle(d time.Duration) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if d > 0 {
			cfg.idle = d
		}
	}
}

// WithRateLimitClock replaces time.Now, for tests.
func WithRateLimitClock(now func() time.Time) RateLimitOption {
	return func(cfg *rateLimitConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	cfg       *rateLimitConfig
	limit     rate.Limit
	visitors  map[string]*visitor
	lastSweep time.Time
	mu        sync.Mutex
}

func (l *clientLimiter) allow(key string) (bool, time.Duration) {
	now := l.cfg.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= rateLimitSweepEvery {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.cfg.idle {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.cfg.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	r := v.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// RateLimit allows each client rps requests per second with the given burst,
// keyed by client IP. Over-limit requests get 429 with Retry-After. A
// non-positive rps disables limiting.
func RateLimit(rps float64, burst int, opts ...RateLimitOption) web.Middleware {
	if rps <= 0 {
		return func(next web.HandlerFunc) web.HandlerFunc { return next }
	}

	cfg := &rateLimitConfig{
		key:   ClientIP,
		now:   time.Now,
		idle:  defaultRateLimitIdle,
		burst: max(burst, 1),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	l := &clientLimiter{
		cfg:      cfg,
		limit:    rate.Limit(rps),
		visitors: make(map[string]*visitor),
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			ok, wait := l.allow(cfg.key(c))
			if !ok {
				secs := int(wait.Round(time.Second) / time.Second)
				c.SetHeader("Retry-After", strconv.Itoa(max(secs, 1)))
				return web.ErrTooManyRequests("Too many requests, please try again later")
			}
			return next(c)
		}
	}
}

// ClientIP is the host part of the connection's remote address. Forwarding
// headers are ignored since any caller can set them.
func ClientIP(c web.Context) string {
	addr := c.Request().RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// ForwardedClientIP returns a key function that reads X-Forwarded-For and
// X-Real-IP only when the remote address is inside one of the trusted
// networks. X-Forwarded-For is walked right to left and the first address
// outside the trusted networks wins, so entries prepended by the caller are
// never used while a proxy appended the real one.
func ForwardedClientIP(trusted ...netip.Prefix) func(web.Context) string {
	isTrusted := func(s string) bool {
		ip, err := netip.ParseAddr(strings.TrimSpace(s))
		if err != nil {
			return false
		}
		ip = ip.Unmap()
		for _, p := range trusted {
			if p.Contains(ip) {
				return true
			}
		}
		return false
	}

	return func(c web.Context) string {
		remote := ClientIP(c)
		if !isTrusted(remote) {
			return remote
		}
		if fwd := c.Header("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			for i := len(hops) - 1; i >= 0; i-- {
				hop := strings.TrimSpace(hops[i])
				if hop != "" && !isTrusted(hop) {
					return hop
				}
			}
		}
		if ip := strings.TrimSpace(c.Header("X-Real-IP")); ip != "" {
			return ip
		}
		return remote
	}
}
