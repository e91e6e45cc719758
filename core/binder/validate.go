package binder

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/fennec/core/response"
)

// validate is the shared validator instance. go-playground/validator caches
// struct metadata internally, so one instance serves the whole process.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks `validate` struct tags on v.
// Failures map to a 422 HTTPError with per-field details, which the error
// translator surfaces verbatim. Non-struct values pass unchecked.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = "failed on " + fe.Tag()
	}

	return response.ErrUnprocessableEntity.
		WithMessage("Validation failed").
		WithDetails(details)
}
