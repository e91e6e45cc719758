package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/inject"
)

// paramType controls how a matched path segment is coerced.
type paramType uint8

const (
	// typeAny is used for bare {name} placeholders: a fully numeric
	// segment is coerced to int, anything else stays a string.
	typeAny paramType = iota
	typeInt
	typeString
)

// segment is one compiled element of a route template.
type segment struct {
	literal string
	name    string
	typ     paramType
	param   bool
}

// Route is an immutable registration-time record. Its compiled segments are
// a pure function of the template and never change after construction.
type Route struct {
	template string
	segments []segment
	methods  map[string]struct{}
	handler  handler.HandlerFunc
	plan     *inject.Plan
	name     string
}

// Handler returns the route's registered handler.
func (r *Route) Handler() handler.HandlerFunc { return r.handler }

// Plan returns the route's dependency binding plan, or nil when the route
// declares no dependencies.
func (r *Route) Plan() *inject.Plan { return r.plan }

// Template returns the route's original path template.
func (r *Route) Template() string { return r.template }

// Name returns the route's optional name.
func (r *Route) Name() string { return r.name }

// Methods returns the route's allowed HTTP methods.
func (r *Route) Methods() []string {
	out := make([]string, 0, len(r.methods))
	for m := range r.methods {
		out = append(out, m)
	}
	return out
}

// ParamNames returns the template's placeholder names in template order.
func (r *Route) ParamNames() []string {
	var names []string
	for _, s := range r.segments {
		if s.param {
			names = append(names, s.name)
		}
	}
	return names
}

func (r *Route) allowsMethod(method string) bool {
	_, ok := r.methods[method]
	return ok
}

// compileTemplate parses a path template into matchable segments.
// Placeholders take the form {name}, {name:int} or {name:string}.
func compileTemplate(template string) ([]segment, error) {
	if template == "" || template[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, template)
	}

	raw := splitPath(template)
	segments := make([]segment, 0, len(raw))
	seen := make(map[string]struct{})

	for _, part := range raw {
		open := strings.Count(part, "{")
		closed := strings.Count(part, "}")

		switch {
		case open == 0 && closed == 0:
			segments = append(segments, segment{literal: part})
			continue
		case open != 1 || closed != 1 || !strings.HasPrefix(part, "{") || !strings.HasSuffix(part, "}"):
			return nil, fmt.Errorf("%w: %q in %q", ErrUnbalancedBraces, part, template)
		}

		inner := part[1 : len(part)-1]
		name, typName, hasType := strings.Cut(inner, ":")
		if name == "" {
			return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, template)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, template)
		}
		seen[name] = struct{}{}

		typ := typeAny
		if hasType {
			switch typName {
			case "int":
				typ = typeInt
			case "string":
				typ = typeString
			default:
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownParamType, typName, template)
			}
		}

		segments = append(segments, segment{name: name, typ: typ, param: true})
	}

	return segments, nil
}

// match applies the compiled template to a concrete path and extracts typed
// parameters. A nil Params with ok=true means the route has no placeholders.
func (r *Route) match(path string) (Params, bool) {
	parts := splitPath(path)
	if len(parts) != len(r.segments) {
		return nil, false
	}

	var params Params
	for i, seg := range r.segments {
		token := parts[i]

		if !seg.param {
			if token != seg.literal {
				return nil, false
			}
			continue
		}

		// Placeholders match exactly one non-empty segment.
		if token == "" {
			return nil, false
		}

		var value any
		switch seg.typ {
		case typeInt:
			n, ok := parseIntToken(token)
			if !ok {
				return nil, false
			}
			value = n
		case typeString:
			value = token
		default: // typeAny
			if n, ok := parseIntToken(token); ok {
				value = n
			} else {
				value = token
			}
		}

		if params == nil {
			params = make(Params, len(r.segments))
		}
		params[seg.name] = value
	}

	return params, true
}

// splitPath splits a path into segments, treating the root path as empty.
func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// parseIntToken converts a fully numeric token to int.
// Only unsigned digit runs qualify; signed or decimal tokens stay strings.
func parseIntToken(token string) (int, bool) {
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// covers reports whether every path this route matches is also matched by
// other with an overlapping method set, making this route unreachable when
// other is registered earlier.
func (r *Route) covers(other *Route) bool {
	earlier, later := r, other
	if len(earlier.segments) != len(later.segments) {
		return false
	}

	overlap := false
	for m := range later.methods {
		if earlier.allowsMethod(m) {
			overlap = true
			break
		}
	}
	if !overlap {
		return false
	}

	for i, e := range earlier.segments {
		l := later.segments[i]
		switch {
		case !e.param:
			if l.param || e.literal != l.literal {
				return false
			}
		case e.typ == typeInt:
			// An int placeholder only sees numeric segments.
			if !l.param {
				if _, ok := parseIntToken(l.literal); !ok {
					return false
				}
			} else if l.typ != typeInt {
				return false
			}
		default:
			// Bare and string placeholders cover any single segment.
		}
	}

	return true
}
