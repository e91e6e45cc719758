package router

import "strconv"

// Params holds path parameter values extracted from a matched route.
// Values are typed per the route template: parameters declared `{name:int}`
// hold int, `{name:string}` hold string, and bare `{name}` parameters hold
// int when the path segment is fully numeric and string otherwise.
type Params map[string]any

// Get returns the raw value for name and whether it is present.
func (p Params) Get(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// String returns the value for name rendered as a string.
// Missing parameters return the empty string.
func (p Params) String(name string) string {
	switch v := p[name].(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// Int returns the value for name as an int.
// String values are not converted; a string-typed parameter returns false.
func (p Params) Int(name string) (int, bool) {
	v, ok := p[name].(int)
	return v, ok
}
