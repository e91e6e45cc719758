package binder

import "github.com/dmitrymomot/fennec/core/handler"

// Query creates a binder for URL query parameters using the `query` struct
// tag. Repeated parameters bind to slice fields.
func Query() Binder {
	return func(ctx handler.Context, v any) error {
		return bindToStruct(v, "query", ctx.Request().URL.Query(), ErrFailedToParseQuery)
	}
}
