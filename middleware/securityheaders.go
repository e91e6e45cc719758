package middleware

import (
	"github.com/dmitrymomot/fennec/core/handler"
)

// SecurityHeadersConfig configures the security headers middleware.
type SecurityHeadersConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(ctx handler.Context) bool

	// ContentTypeOptions controls the X-Content-Type-Options header
	ContentTypeOptions string

	// FrameOptions controls the X-Frame-Options header
	FrameOptions string

	// StrictTransportSecurity controls the Strict-Transport-Security header
	StrictTransportSecurity string

	// ContentSecurityPolicy controls the Content-Security-Policy header
	ContentSecurityPolicy string

	// ReferrerPolicy controls the Referrer-Policy header
	ReferrerPolicy string

	// CustomHeaders allows adding additional custom security headers
	CustomHeaders map[string]string

	// IsDevelopment disables HSTS for local non-TLS development
	IsDevelopment bool
}

// DefaultSecurity provides a balanced configuration suitable for APIs.
var DefaultSecurity = SecurityHeadersConfig{
	ContentTypeOptions:      "nosniff",
	FrameOptions:            "DENY",
	StrictTransportSecurity: "max-age=31536000; includeSubDomains",
	ReferrerPolicy:          "strict-origin-when-cross-origin",
}

// SecurityHeaders creates a security headers middleware with the default
// configuration.
func SecurityHeaders() handler.Middleware {
	return SecurityHeadersWithConfig(DefaultSecurity)
}

// SecurityHeadersWithConfig creates a security headers middleware with custom
// configuration. Headers are set before the handler runs so short-circuiting
// layers still produce protected responses.
func SecurityHeadersWithConfig(cfg SecurityHeadersConfig) handler.Middleware {
	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx handler.Context) (any, error) {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			h := ctx.ResponseWriter().Header()
			if cfg.ContentTypeOptions != "" {
				h.Set("X-Content-Type-Options", cfg.ContentTypeOptions)
			}
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			if cfg.StrictTransportSecurity != "" && !cfg.IsDevelopment {
				h.Set("Strict-Transport-Security", cfg.StrictTransportSecurity)
			}
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			for name, value := range cfg.CustomHeaders {
				h.Set(name, value)
			}

			return next(ctx)
		}
	}
}
