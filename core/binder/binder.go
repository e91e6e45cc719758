package binder

import (
	"github.com/dmitrymomot/fennec/core/handler"
)

// Binder binds request data from one source (path, query, JSON body, form)
// onto a Go struct.
type Binder func(ctx handler.Context, v any) error

// Bind applies the given binders in order and validates the result.
// Binding failures map to 400-level errors, validation failures to 422,
// both renderable by the error translator as-is.
func Bind(ctx handler.Context, v any, binders ...Binder) error {
	for _, bind := range binders {
		if err := bind(ctx, v); err != nil {
			return err
		}
	}
	return Validate(v)
}
