// Package middleware provides composable HTTP middleware for fennec
// applications.
//
// Middleware wraps a handler.HandlerFunc and runs in registration order:
// the first middleware added is the outermost layer, so it sees the request
// first and the response last. Each middleware decides whether to call the
// next layer or short-circuit with its own result.
//
// Usage:
//
//	app := app.New()
//	app.Use(middleware.RequestID())
//	app.Use(middleware.Logging())
//	app.Use(middleware.BodyLimit())
package middleware
