package inject

import (
	"context"
	"fmt"
	"sync"
)

// Resolver computes dependency values for handler plans.
//
// The override table is owned by the Resolver instance, not by the package:
// test suites construct their own Resolver (or App) and never collide.
// Overrides are a setup/test-phase facility and must not be mutated
// concurrently with live request processing.
type Resolver struct {
	mu        sync.RWMutex
	overrides map[string]Provider
}

// NewResolver creates a Resolver with an empty override table.
func NewResolver() *Resolver {
	return &Resolver{overrides: make(map[string]Provider)}
}

// Override installs a replacement provider for the given binding name.
// It applies to every plan resolved by this Resolver; lookup is by name,
// so handlers sharing a binding name share the override.
func (r *Resolver) Override(name string, p Provider) {
	if p == nil {
		panic(fmt.Errorf("%w: override %q", ErrNilProvider, name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overrides[name] = p
}

// ClearOverrides removes all installed overrides.
func (r *Resolver) ClearOverrides() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.overrides)
}

func (r *Resolver) override(name string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.overrides[name]
	return p, ok
}

// Resolve computes a value for every binding in the plan.
//
// The returned release function tears down acquired resources in reverse
// acquisition order; callers must invoke it after the response is produced.
// If any provider fails, already-acquired resources are released and the
// provider's error is propagated; a partial value set is never returned.
func (r *Resolver) Resolve(ctx context.Context, plan *Plan) (Values, ReleaseFunc, error) {
	if plan.Len() == 0 {
		return Values{}, func() {}, nil
	}

	values := make(Values, plan.Len())
	var releases []ReleaseFunc

	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, b := range plan.bindings {
		var (
			val any
			rel ReleaseFunc
			err error
		)

		if p, ok := r.override(b.name); ok {
			val, err = p(ctx)
		} else if b.resource != nil {
			val, rel, err = b.resource(ctx)
		} else {
			val, err = b.provide(ctx)
		}

		if err != nil {
			releaseAll()
			return nil, nil, fmt.Errorf("resolve dependency %q: %w", b.name, err)
		}

		if rel != nil {
			releases = append(releases, rel)
		}
		values[b.name] = val
	}

	return values, releaseAll, nil
}

// Inject resolves the plan, merges supplied values over the resolved ones
// (supplied wins on name collision), invokes fn with the merged set, and
// releases acquired resources after fn returns.
//
// The dispatcher resolves and releases around response rendering instead of
// calling Inject directly; this entry point serves direct invocation, such
// as calling handlers from tests or background jobs.
func (r *Resolver) Inject(ctx context.Context, plan *Plan, supplied Values, fn func(ctx context.Context, values Values) (any, error)) (any, error) {
	values, release, err := r.Resolve(ctx, plan)
	if err != nil {
		return nil, err
	}
	defer release()

	return fn(ctx, values.Merge(supplied))
}
