package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default())
	Logger *slog.Logger

	// LogLevel for request logging (default: slog.LevelInfo)
	LogLevel slog.Level

	// SlowRequestThreshold logs slow requests at warning level (default: 5s)
	SlowRequestThreshold time.Duration

	// Component name for structured logging
	Component string
}

// Logging creates a request logging middleware with default configuration.
// It logs one line per request with method, path, duration, and outcome.
func Logging() handler.Middleware {
	return LoggingWithConfig(LoggingConfig{})
}

// LoggingWithLogger creates a logging middleware with a custom logger.
func LoggingWithLogger(log *slog.Logger) handler.Middleware {
	return LoggingWithConfig(LoggingConfig{
		Logger: log,
	})
}

// LoggingWithConfig creates a request logging middleware with custom configuration.
// Errors returned by inner layers are logged here and then propagated unchanged,
// so the error boundary still translates them.
func LoggingWithConfig(cfg LoggingConfig) handler.Middleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component != "" {
		cfg.Logger = cfg.Logger.With(logger.Component(cfg.Component))
	}

	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx handler.Context) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			result, err := next(ctx)
			elapsed := time.Since(start)

			r := ctx.Request()
			attrs := []any{
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Duration(elapsed),
				logger.RemoteAddr(r.RemoteAddr),
			}
			if id, ok := GetRequestID(ctx); ok {
				attrs = append(attrs, logger.RequestID(id))
			}

			switch {
			case err != nil:
				attrs = append(attrs, logger.Error(err))
				cfg.Logger.ErrorContext(ctx, "request failed", attrs...)
			case elapsed >= cfg.SlowRequestThreshold:
				cfg.Logger.WarnContext(ctx, "slow request", attrs...)
			default:
				cfg.Logger.LogAttrs(ctx, cfg.LogLevel, "request completed", toAttrs(attrs)...)
			}

			return result, err
		}
	}
}

func toAttrs(attrs []any) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if attr, ok := a.(slog.Attr); ok {
			out = append(out, attr)
		}
	}
	return out
}
