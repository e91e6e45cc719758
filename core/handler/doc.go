// Package handler defines the core contracts for request processing:
// the request context, handler functions, middleware, and response rendering.
//
// A handler returns a result union rather than writing to the wire directly:
//
//	func getUser(ctx handler.Context) (any, error) {
//		id := ctx.Param("id")
//		user, err := users.Get(ctx, id)
//		if err != nil {
//			return nil, response.ErrNotFound
//		}
//		return user, nil // wrapped in the JSON envelope by the dispatcher
//	}
//
// Returning a handler.Response gives full control over rendering:
//
//	func homepage(ctx handler.Context) (any, error) {
//		return response.HTML("<h1>hello</h1>"), nil
//	}
//
// Middleware composes around handlers in registration order (onion model):
// the first middleware added observes the raw request first and the final
// result last. A middleware that returns without calling its continuation
// prevents everything inward of it, including the terminal handler, from
// running.
package handler
