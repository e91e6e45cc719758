package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/inject"
)

// Match is the transient result of a successful route lookup.
// It is produced per request and discarded once the request completes.
type Match struct {
	Route  *Route
	Params Params
}

// RouteOption configures a single route at registration time.
type RouteOption func(*Route)

// WithName assigns a name to the route for introspection.
func WithName(name string) RouteOption {
	return func(r *Route) { r.name = name }
}

// WithDependencies attaches a dependency binding plan to the route.
// Bindings are compiled into a plan once, at registration; duplicate or
// invalid bindings are configuration errors and panic.
func WithDependencies(bindings ...inject.Binding) RouteOption {
	return func(r *Route) { r.plan = inject.MustPlan(bindings...) }
}

// Router maps (method, path) pairs to handlers.
//
// Routes are matched in registration order and the first match wins, which
// makes ordering semantically significant: literal routes must be registered
// before parameterized routes that also match them. Registration happens
// during application setup only; the table is read-only while serving.
type Router struct {
	root   *Router
	prefix string
	routes []*Route
	logger *slog.Logger
}

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets the logger used for registration-time diagnostics,
// such as shadowed-route warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty route table.
func New(opts ...Option) *Router {
	r := &Router{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	r.root = r
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Group returns a view of the router that registers all its routes under
// the given path prefix. Groups share the parent's route table and match
// ordering.
func (r *Router) Group(prefix string) *Router {
	return &Router{
		root:   r.root,
		prefix: r.prefix + strings.TrimSuffix(prefix, "/"),
		logger: r.logger,
	}
}

// Get registers a handler for GET requests.
func (r *Router) Get(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodGet}, opts...)
}

// Post registers a handler for POST requests.
func (r *Router) Post(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodPost}, opts...)
}

// Put registers a handler for PUT requests.
func (r *Router) Put(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodPut}, opts...)
}

// Delete registers a handler for DELETE requests.
func (r *Router) Delete(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodDelete}, opts...)
}

// Patch registers a handler for PATCH requests.
func (r *Router) Patch(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodPatch}, opts...)
}

// Head registers a handler for HEAD requests.
func (r *Router) Head(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodHead}, opts...)
}

// Options registers a handler for OPTIONS requests.
func (r *Router) Options(template string, h handler.HandlerFunc, opts ...RouteOption) {
	r.Handle(template, h, []string{http.MethodOptions}, opts...)
}

// Handle registers a handler for the given methods.
// Template or method problems are configuration errors and panic.
func (r *Router) Handle(template string, h handler.HandlerFunc, methods []string, opts ...RouteOption) {
	if h == nil {
		panic(fmt.Errorf("%w: %q", ErrNilHandler, template))
	}
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods for %q", ErrInvalidMethod, template))
	}

	full := r.prefix + template
	segments, err := compileTemplate(full)
	if err != nil {
		panic(err)
	}

	methodSet := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		upper := strings.ToUpper(m)
		if !validMethods[upper] {
			panic(fmt.Errorf("%w: %q", ErrInvalidMethod, m))
		}
		methodSet[upper] = struct{}{}
	}

	route := &Route{
		template: full,
		segments: segments,
		methods:  methodSet,
		handler:  h,
	}
	for _, opt := range opts {
		opt(route)
	}

	root := r.root
	for _, existing := range root.routes {
		if existing.covers(route) {
			root.logger.Warn("route is shadowed by an earlier registration and unreachable",
				"template", route.template,
				"shadowed_by", existing.template,
			)
			break
		}
	}

	root.routes = append(root.routes, route)
}

// Match resolves a request path and method to a handler plus extracted
// parameters. Routes are tried in registration order; both an unknown path
// and a known path with a wrong method return ErrNotFound.
func (r *Router) Match(method, path string) (*Match, error) {
	method = strings.ToUpper(method)

	for _, route := range r.root.routes {
		if !route.allowsMethod(method) {
			continue
		}
		params, ok := route.match(path)
		if !ok {
			continue
		}
		return &Match{Route: route, Params: params}, nil
	}

	return nil, ErrNotFound
}

// Routes returns all registered routes in registration order.
func (r *Router) Routes() []*Route {
	out := make([]*Route, len(r.root.routes))
	copy(out, r.root.routes)
	return out
}

var validMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}
