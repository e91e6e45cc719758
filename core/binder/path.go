package binder

import (
	"reflect"

	"github.com/dmitrymomot/fennec/core/handler"
)

// Path creates a binder for path parameters extracted by routing.
//
// Struct fields select parameters with the `path` tag:
//
//	type GetUserRequest struct {
//		ID     int    `path:"id"`
//		Expand bool   `query:"expand"`
//	}
//
//	func getUser(ctx handler.Context) (any, error) {
//		var req GetUserRequest
//		if err := binder.Bind(ctx, &req, binder.Path(), binder.Query()); err != nil {
//			return nil, err
//		}
//		...
//	}
func Path() Binder {
	return func(ctx handler.Context, v any) error {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
			return bindToStruct(v, "path", nil, ErrFailedToParsePath)
		}

		rt := rv.Elem().Type()
		values := make(map[string][]string, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			name, skip := parseFieldTag(rt.Field(i), "path")
			if skip {
				continue
			}
			if val := ctx.Param(name); val != "" {
				values[name] = []string{val}
			}
		}

		return bindToStruct(v, "path", values, ErrFailedToParsePath)
	}
}
