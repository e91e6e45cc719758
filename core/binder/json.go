package binder

import (
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"github.com/dmitrymomot/fennec/core/handler"
)

// JSON creates a binder that decodes an application/json request body.
// Requests without a body are left as-is; a non-JSON content type on a
// non-empty body is rejected with ErrUnsupportedMediaType.
func JSON() Binder {
	return func(ctx handler.Context, v any) error {
		r := ctx.Request()
		if r.Body == nil || r.ContentLength == 0 {
			return nil
		}

		contentType := r.Header.Get("Content-Type")
		if contentType != "" {
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !isJSONMediaType(mediaType) {
				return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
			}
		}

		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		return nil
	}
}

func isJSONMediaType(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
