package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/response"
)

// defaultMaxBodySize caps request bodies at 4MB unless configured otherwise.
const defaultMaxBodySize = 4 * 1024 * 1024

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// MaxSize is the maximum allowed size in bytes (default: 4MB)
	MaxSize int64
}

// BodyLimit creates a body limit middleware with the default 4MB limit.
func BodyLimit() handler.Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize(maxSize int64) handler.Middleware {
	return BodyLimitWithConfig(BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig creates a body limit middleware with custom configuration.
// Requests declaring an oversized Content-Length are rejected immediately;
// bodies without a declared length are capped during reading so chunked
// uploads cannot bypass the limit.
func BodyLimitWithConfig(cfg BodyLimitConfig) handler.Middleware {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxBodySize
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx handler.Context) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			r := ctx.Request()
			if r.ContentLength > cfg.MaxSize {
				return nil, response.ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", cfg.MaxSize)).
					WithDetails(map[string]any{"limit": cfg.MaxSize})
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(ctx.ResponseWriter(), r.Body, cfg.MaxSize)
			}

			return next(ctx)
		}
	}
}
