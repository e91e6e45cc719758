// Package inject provides per-request dependency resolution for handlers.
//
// Dependencies are declared at route registration and compiled into a static
// binding plan; there is no per-request reflection. Each binding names a
// provider:
//
//	func provideStore(ctx context.Context) (any, error) {
//		return store, nil
//	}
//
//	app.Get("/users/{id:int}", getUser,
//		router.WithDependencies(inject.Dep("store", provideStore)))
//
// Handlers read resolved values from the request context:
//
//	func getUser(ctx handler.Context) (any, error) {
//		store, _ := inject.FromContext(ctx, "store")
//		...
//	}
//
// Resource bindings additionally return a release callback, which the
// dispatcher runs after the response is produced, on all exit paths:
//
//	inject.Resource("tx", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
//		tx, err := db.Begin(ctx)
//		if err != nil {
//			return nil, nil, err
//		}
//		return tx, func() { tx.Rollback() }, nil
//	})
//
// A Resolver carries the override table for test doubles. Overrides are
// keyed by binding name and scoped to the Resolver instance, so concurrent
// test suites with separate apps never collide.
package inject
