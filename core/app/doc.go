// Package app provides the dispatcher that drives one request through
// routing, dependency injection, the middleware chain, and error
// translation.
//
// # Basic usage
//
//	a := app.New(app.WithLogger(logger))
//
//	a.Use(middleware.RequestID(), middleware.LoggingWithLogger(logger))
//
//	a.Get("/users/{id:int}", getUser,
//		router.WithDependencies(inject.Dep("store", provideStore)))
//
//	http.ListenAndServe(":8080", a)
//
// # Request lifecycle
//
// Each request moves through a fixed sequence: the route table resolves the
// method and path (a miss renders a 404 envelope); path parameters are bound
// onto the context; the dependency plan resolves; middleware run in
// registration order around the terminal handler; the result or error is
// converted into a response. Errors and panics from any stage are caught
// exactly once, at the dispatcher boundary, and translated; clients always
// receive a structured envelope, never a raw fault.
//
// Dependency resource release callbacks run after the response is produced,
// on all exit paths. Background tasks queued during handling run last,
// after the response has been sent.
//
// # Error translation
//
// Handlers for specific error kinds are registered on the translator:
//
//	app.RegisterErrorHandler(a.Translator(), func(ctx handler.Context, err store.NotFoundError) (any, error) {
//		return response.Fail(http.StatusNotFound, err.Error()), nil
//	})
//
// Unregistered response.HTTPError values surface their status and message
// verbatim; any other error becomes a fixed-message 500 with the detail
// logged server-side only.
package app
