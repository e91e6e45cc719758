package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/fennec/core/handler"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// ToHTTPError converts any error to an HTTPError.
// HTTPError values pass through unchanged; errors exposing StatusCode() map
// to the predefined error for that status; anything else becomes a 500 with
// the original error attached as a detail.
func ToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// ErrorHandler is the default error handler that renders plain text errors.
func ErrorHandler(ctx handler.Context, err error) {
	httpErr := ToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as error envelopes.
func JSONErrorHandler(ctx handler.Context, err error) {
	httpErr := ToHTTPError(err)
	var details any
	if len(httpErr.Details) > 0 {
		details = httpErr.Details
	}
	Render(ctx, FailWithDetails(httpErr.Status, httpErr.Message, details))
}
