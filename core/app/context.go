package app

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/fennec/core/router"
)

// Context is the default request context. It implements handler.Context,
// delegating context.Context methods to the request's context, and carries
// typed path parameters plus request-scoped values.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params router.Params
	values map[any]any
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the request-scoped value for key, falling back to the
// request's context.
func (c *Context) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.r.Context().Value(key)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the path parameter for the given key rendered as a string.
func (c *Context) Param(key string) string {
	return c.params.String(key)
}

// ParamInt returns the path parameter for the given key as an int.
// Parameters bound as strings return false.
func (c *Context) ParamInt(key string) (int, bool) {
	return c.params.Int(key)
}

// Params returns all path parameters extracted by routing.
func (c *Context) Params() router.Params {
	return c.params
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}
