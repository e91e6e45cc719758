package binder

import "errors"

var (
	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or doesn't match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")

	// ErrFailedToParseForm indicates form data parsing failed.
	ErrFailedToParseForm = errors.New("failed to parse form data")

	// ErrFailedToParseQuery indicates query parameter conversion failed.
	ErrFailedToParseQuery = errors.New("failed to parse query parameters")

	// ErrFailedToParsePath indicates path parameter conversion failed.
	ErrFailedToParsePath = errors.New("failed to parse path parameters")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a
	// media type the binder doesn't support.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
