package handler

import "net/http"

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are handled by the application's error translator.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc processes a single request and produces its result.
//
// The returned value may be a Response, which is rendered verbatim, or any
// other value, which the dispatcher wraps in the default JSON envelope.
// A non-nil error is converted into an error response by the application's
// error translator; the value is ignored in that case.
type HandlerFunc func(ctx Context) (any, error)

// ErrorHandler converts an error raised during request processing into a
// rendered response.
type ErrorHandler func(ctx Context, err error)

// Middleware wraps handlers to add cross-cutting functionality.
//
// The wrapped handler receives a continuation that invokes the remainder of
// the chain; it must call it at most once per request. Middleware added first
// wraps outermost: it observes the request first and the result last.
type Middleware func(next HandlerFunc) HandlerFunc
