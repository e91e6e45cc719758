package binder

import (
	"fmt"

	"github.com/dmitrymomot/fennec/core/handler"
)

// defaultMaxFormMemory bounds in-memory multipart parsing at 10 MB.
const defaultMaxFormMemory = 10 << 20

// Form creates a binder for URL-encoded and multipart form data using the
// `form` struct tag.
func Form() Binder {
	return func(ctx handler.Context, v any) error {
		r := ctx.Request()

		if err := r.ParseMultipartForm(defaultMaxFormMemory); err != nil {
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
		}

		return bindToStruct(v, "form", r.PostForm, ErrFailedToParseForm)
	}
}
