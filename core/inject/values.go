package inject

import "context"

// Values holds resolved dependency values keyed by binding name.
type Values map[string]any

// Merge returns a new Values with overlay entries winning on name collision.
// Neither receiver nor overlay is modified.
func (v Values) Merge(overlay Values) Values {
	merged := make(Values, len(v)+len(overlay))
	for k, val := range v {
		merged[k] = val
	}
	for k, val := range overlay {
		merged[k] = val
	}
	return merged
}

// Get returns the value for name and whether it is present.
func (v Values) Get(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// valuesContextKey keys resolved dependency values in a request context.
type valuesContextKey struct{}

// valueSetter is the minimal context surface needed to attach values.
// The app package's request context satisfies it.
type valueSetter interface {
	SetValue(key, val any)
}

// Attach stores resolved values on the request context so handlers can
// retrieve them with FromContext.
func Attach(ctx valueSetter, values Values) {
	ctx.SetValue(valuesContextKey{}, values)
}

// ValuesFromContext returns all resolved dependency values from the context,
// or nil when none were attached.
func ValuesFromContext(ctx context.Context) Values {
	v, _ := ctx.Value(valuesContextKey{}).(Values)
	return v
}

// FromContext returns the resolved dependency value for name.
func FromContext(ctx context.Context, name string) (any, bool) {
	return ValuesFromContext(ctx).Get(name)
}
