// Package binder extracts request data into strongly-typed structs,
// combining path, query, JSON body, and form sources with declarative
// validation.
//
//	type CreateUserRequest struct {
//		TeamID int    `path:"team_id"`
//		Name   string `json:"name" validate:"required,min=2"`
//		Email  string `json:"email" validate:"required,email"`
//	}
//
//	func createUser(ctx handler.Context) (any, error) {
//		var req CreateUserRequest
//		if err := binder.Bind(ctx, &req, binder.Path(), binder.JSON()); err != nil {
//			return nil, err
//		}
//		...
//	}
//
// Bind applies binders in order, later sources overwriting earlier ones on
// overlapping fields, then validates `validate` tags. Validation failures
// return a 422 HTTPError carrying per-field details.
package binder
