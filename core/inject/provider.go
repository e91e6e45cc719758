package inject

import "context"

// Provider supplies a value for an injected handler dependency.
// It is invoked once per request and may block on I/O; the request context
// is passed through for cancellation and deadline propagation.
type Provider func(ctx context.Context) (any, error)

// ReleaseFunc tears down a resource acquired by a ResourceProvider.
// The dispatcher guarantees it runs after the response is produced,
// on all exit paths including errors and panics.
type ReleaseFunc func()

// ResourceProvider supplies a value together with a release callback,
// for dependencies that hold resources scoped to a single request
// (connections, transactions, file handles).
type ResourceProvider func(ctx context.Context) (any, ReleaseFunc, error)

// Binding associates a dependency name with its provider.
// Bindings are declared at route-registration time and compiled into a Plan;
// nothing about a handler's dependencies is inspected per request.
type Binding struct {
	name     string
	provide  Provider
	resource ResourceProvider
}

// Name returns the binding's dependency name.
func (b Binding) Name() string {
	return b.name
}

// Dep declares a plain dependency binding.
func Dep(name string, p Provider) Binding {
	return Binding{name: name, provide: p}
}

// Static declares a binding that always resolves to the given value.
func Static(name string, v any) Binding {
	return Binding{name: name, provide: func(context.Context) (any, error) {
		return v, nil
	}}
}

// Resource declares a binding whose provider returns a value plus a release
// callback, run after the response is produced.
func Resource(name string, p ResourceProvider) Binding {
	return Binding{name: name, resource: p}
}
