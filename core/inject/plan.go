package inject

import "fmt"

// Plan is a handler's compiled dependency binding set.
// It is built once at route registration and read-only afterwards.
type Plan struct {
	bindings []Binding
}

// NewPlan compiles bindings into a Plan, validating names and providers.
func NewPlan(bindings ...Binding) (*Plan, error) {
	seen := make(map[string]struct{}, len(bindings))
	for _, b := range bindings {
		if b.name == "" {
			return nil, ErrEmptyBindingName
		}
		if b.provide == nil && b.resource == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilProvider, b.name)
		}
		if _, ok := seen[b.name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBinding, b.name)
		}
		seen[b.name] = struct{}{}
	}
	return &Plan{bindings: bindings}, nil
}

// MustPlan compiles bindings into a Plan and panics on configuration errors.
// Intended for route registration at application setup.
func MustPlan(bindings ...Binding) *Plan {
	p, err := NewPlan(bindings...)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the dependency names declared by the plan, in declaration order.
func (p *Plan) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.bindings))
	for i, b := range p.bindings {
		names[i] = b.name
	}
	return names
}

// Len returns the number of bindings in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.bindings)
}
