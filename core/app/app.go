package app

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync/atomic"

	"github.com/dmitrymomot/fennec/core/background"
	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/inject"
	"github.com/dmitrymomot/fennec/core/response"
	"github.com/dmitrymomot/fennec/core/router"
)

// App orchestrates one request end-to-end: route matching, dependency
// resolution, the middleware chain, and error translation. It is stateless
// across requests and safe to invoke concurrently once setup is complete.
//
// Setup (route registration, Use, Override, RegisterErrorHandler) must
// happen before serving starts and must not overlap live traffic.
type App struct {
	router       *router.Router
	middlewares  []handler.Middleware
	resolver     *inject.Resolver
	translator   *Translator
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
	serving      atomic.Bool
}

// Option configures an App during creation.
type Option func(*App)

// WithLogger sets the logger used by the dispatcher, the route table and
// the error translator.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithResolver replaces the default dependency resolver, allowing several
// apps to share one override table.
func WithResolver(r *inject.Resolver) Option {
	return func(a *App) {
		if r != nil {
			a.resolver = r
		}
	}
}

// WithErrorHandler sets the handler invoked when response rendering itself
// fails before anything reached the wire. The default renders the error
// envelope via response.JSONErrorHandler.
func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(a *App) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// New creates an App with an empty route table and middleware chain.
func New(opts ...Option) *App {
	a := &App{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		resolver:     inject.NewResolver(),
		errorHandler: response.JSONErrorHandler,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.router = router.New(router.WithLogger(a.logger))
	a.translator = NewTranslator(a.logger)
	return a
}

// Router returns the app's route table.
func (a *App) Router() *router.Router { return a.router }

// Resolver returns the app's dependency resolver, used to install
// provider overrides in tests.
func (a *App) Resolver() *inject.Resolver { return a.resolver }

// Translator returns the app's error translator.
func (a *App) Translator() *Translator { return a.translator }

// Use appends middleware to the chain. Middleware added first wraps
// outermost. Appending after serving has started is a configuration error
// and panics.
func (a *App) Use(middlewares ...handler.Middleware) {
	if a.serving.Load() {
		panic("fennec: middleware must be added before serving starts")
	}
	a.middlewares = append(a.middlewares, middlewares...)
}

// Get registers a handler for GET requests.
func (a *App) Get(template string, h handler.HandlerFunc, opts ...router.RouteOption) {
	a.router.Get(template, h, opts...)
}

// Post registers a handler for POST requests.
func (a *App) Post(template string, h handler.HandlerFunc, opts ...router.RouteOption) {
	a.router.Post(template, h, opts...)
}

// Put registers a handler for PUT requests.
func (a *App) Put(template string, h handler.HandlerFunc, opts ...router.RouteOption) {
	a.router.Put(template, h, opts...)
}

// Delete registers a handler for DELETE requests.
func (a *App) Delete(template string, h handler.HandlerFunc, opts ...router.RouteOption) {
	a.router.Delete(template, h, opts...)
}

// Patch registers a handler for PATCH requests.
func (a *App) Patch(template string, h handler.HandlerFunc, opts ...router.RouteOption) {
	a.router.Patch(template, h, opts...)
}

// Handle registers a handler for the given methods.
func (a *App) Handle(template string, h handler.HandlerFunc, methods []string, opts ...router.RouteOption) {
	a.router.Handle(template, h, methods, opts...)
}

// Group returns a route registration view under the given path prefix.
func (a *App) Group(prefix string) *router.Router {
	return a.router.Group(prefix)
}

// ServeHTTP implements http.Handler, driving the request state machine:
// route match, path parameter binding, dependency resolution, the
// middleware chain, error translation, and response rendering. Resource
// release callbacks run after the response is produced; background tasks
// run after that.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.serving.Store(true)

	ww := newResponseWriter(w)
	ctx := newContext(ww, r)

	tasks := background.New()
	background.Attach(ctx, tasks)
	defer func() {
		tasks.Run(r.Context(), a.logger)
	}()

	result, release, err := a.handle(ctx)
	if release != nil {
		defer release()
	}

	a.respond(ctx, ww, result, err)
}

// handle runs steps 2-5 of the request lifecycle and recovers panics from
// any of them. The returned release callback is non-nil once dependency
// resources have been acquired; the caller runs it after rendering.
func (a *App) handle(ctx *Context) (result any, release inject.ReleaseFunc, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = &panicError{value: p, stack: debug.Stack()}
		}
	}()

	m, err := a.router.Match(ctx.r.Method, requestPath(ctx.r))
	if err != nil {
		return nil, nil, err
	}
	ctx.params = m.Params

	terminal := func(c handler.Context) (any, error) {
		values, rel, rerr := a.resolver.Resolve(c, m.Route.Plan())
		if rerr != nil {
			return nil, rerr
		}
		release = rel

		supplied := make(inject.Values, len(m.Params))
		for name, val := range m.Params {
			supplied[name] = val
		}
		inject.Attach(ctx, values.Merge(supplied))

		return m.Route.Handler()(c)
	}

	result, err = chain(a.middlewares, terminal)(ctx)
	return result, release, err
}

// respond converts the handler result or error into a wire response.
func (a *App) respond(ctx *Context, ww *responseWriter, result any, err error) {
	var resp handler.Response
	if err != nil {
		resp = a.translator.Translate(ctx, err)
	} else {
		resp = wrapResult(result)
	}

	if ww.Written() {
		// A middleware or handler already wrote to the wire; nothing to
		// render, but a late error is worth recording.
		if err != nil {
			a.logger.Error("error after response written",
				"method", ctx.r.Method,
				"path", ctx.r.URL.Path,
				"status", ww.Status(),
				"error", err,
			)
		}
		return
	}

	if rerr := resp(ww, ctx.r); rerr != nil {
		a.logger.Error("response rendering failed",
			"method", ctx.r.Method,
			"path", ctx.r.URL.Path,
			"error", rerr,
		)
		if !ww.Written() {
			a.errorHandler(ctx, rerr)
		}
	}
}

// wrapResult turns a handler result into a renderable response: Response
// values render verbatim, anything else is wrapped in the success envelope.
func wrapResult(result any) handler.Response {
	if resp, ok := result.(handler.Response); ok {
		return resp
	}
	return response.Success(result)
}

// requestPath returns the routing path, preferring RawPath to preserve
// URL encoding.
func requestPath(r *http.Request) string {
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}
	return path
}
