package app

import "github.com/dmitrymomot/fennec/core/handler"

// chain builds a single handler from a middleware stack and endpoint.
// Middleware added first wraps outermost, so it observes the request first
// and the result last.
func chain(middlewares []handler.Middleware, endpoint handler.HandlerFunc) handler.HandlerFunc {
	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
