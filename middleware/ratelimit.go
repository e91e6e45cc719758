package middleware

import (
	"net"
	"sync"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/response"
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Rate is the sustained number of requests per second per key (default: 10)
	Rate rate.Limit

	// Burst is the maximum burst size per key (default: 20)
	Burst int

	// KeyExtractor derives the rate limiting key from a request (default: client IP)
	KeyExtractor func(ctx handler.Context) string
}

// RateLimit creates a rate limiting middleware with default configuration:
// 10 requests per second with a burst of 20, keyed by client IP.
func RateLimit() handler.Middleware {
	return RateLimitWithConfig(RateLimitConfig{})
}

// RateLimitWithConfig creates a rate limiting middleware with custom
// configuration. Each key gets its own token bucket; requests exceeding the
// limit fail with 429 Too Many Requests.
func RateLimitWithConfig(cfg RateLimitConfig) handler.Middleware {
	if cfg.Rate <= 0 {
		cfg.Rate = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = clientIP
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if l, ok := limiters[key]; ok {
			return l
		}
		l := rate.NewLimiter(cfg.Rate, cfg.Burst)
		limiters[key] = l
		return l
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx handler.Context) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			if !limiterFor(cfg.KeyExtractor(ctx)).Allow() {
				return nil, response.ErrTooManyRequests
			}

			return next(ctx)
		}
	}
}

// clientIP extracts the client address without the port. Falls back to the
// raw RemoteAddr when it is not in host:port form.
func clientIP(ctx handler.Context) string {
	addr := ctx.Request().RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
