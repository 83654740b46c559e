package middleware

import (
	"strings"
	"sync"
	"time"

	"withdrawal-report/internal/errors"
	"withdrawal-report/internal/handlers"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 5
	defaultBurstSize         = 10
	visitorIdleTimeout       = 3 * time.Minute
	visitorSweepInterval     = time.Minute
)

// RateLimiterConfig configures the per-client token bucket
type RateLimiterConfig struct {
	RequestsPerSecond int
	Burst             int
	// Skipper bypasses the limiter, e.g. for health checks
	Skipper echomw.Skipper
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one limiter per client IP. Idle clients are swept on
// access rather than by a background goroutine.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
}

func newVisitorLimiter(rps, burst int) *visitorLimiter {
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurstSize
	}
	return &visitorLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (vl *visitorLimiter) allow(ip string) bool {
	vl.mu.Lock()
	defer vl.mu.Unlock()

	now := vl.now()
	if now.Sub(vl.lastSweep) >= visitorSweepInterval {
		vl.sweep(now)
	}

	v, exists := vl.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(vl.limit, vl.burst)}
		vl.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep drops visitors idle for longer than visitorIdleTimeout. Caller holds mu.
func (vl *visitorLimiter) sweep(now time.Time) {
	for ip, v := range vl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTimeout {
			delete(vl.visitors, ip)
		}
	}
	vl.lastSweep = now
}

// RateLimiter creates a middleware for rate limiting requests per IP with default limits
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterWithConfig(RateLimiterConfig{})
}

// RateLimiterWithConfig creates a rate limiter with custom configuration
func RateLimiterWithConfig(cfg RateLimiterConfig) echo.MiddlewareFunc {
	return rateLimiterMiddleware(newVisitorLimiter(cfg.RequestsPerSecond, cfg.Burst), cfg.Skipper)
}

func rateLimiterMiddleware(vl *visitorLimiter, skipper echomw.Skipper) echo.MiddlewareFunc {
	if skipper == nil {
		skipper = echomw.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			if !vl.allow(getIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// getIP returns the client address, preferring the first X-Forwarded-For hop
func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
