package inject_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fennec/core/inject"
)

func TestPlan(t *testing.T) {
	t.Parallel()

	t.Run("valid bindings", func(t *testing.T) {
		t.Parallel()

		plan, err := inject.NewPlan(
			inject.Static("cfg", "value"),
			inject.Dep("db", func(ctx context.Context) (any, error) { return "conn", nil }),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, plan.Len())
		assert.Equal(t, []string{"cfg", "db"}, plan.Names())
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		_, err := inject.NewPlan(
			inject.Static("db", 1),
			inject.Static("db", 2),
		)
		assert.ErrorIs(t, err, inject.ErrDuplicateBinding)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := inject.NewPlan(inject.Static("", 1))
		assert.ErrorIs(t, err, inject.ErrEmptyBindingName)
	})

	t.Run("nil provider", func(t *testing.T) {
		t.Parallel()

		_, err := inject.NewPlan(inject.Dep("db", nil))
		assert.ErrorIs(t, err, inject.ErrNilProvider)
	})

	t.Run("must plan panics on invalid bindings", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			inject.MustPlan(inject.Dep("db", nil))
		})
	})

	t.Run("nil plan is empty", func(t *testing.T) {
		t.Parallel()

		var plan *inject.Plan
		assert.Equal(t, 0, plan.Len())
		assert.Empty(t, plan.Names())
	})
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()

	t.Run("resolves all bindings", func(t *testing.T) {
		t.Parallel()

		plan := inject.MustPlan(
			inject.Static("cfg", "prod"),
			inject.Dep("counter", func(ctx context.Context) (any, error) { return 7, nil }),
		)

		r := inject.NewResolver()
		values, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)
		defer release()

		v, ok := values.Get("cfg")
		require.True(t, ok)
		assert.Equal(t, "prod", v)

		v, ok = values.Get("counter")
		require.True(t, ok)
		assert.Equal(t, 7, v)
	})

	t.Run("empty plan resolves to empty values", func(t *testing.T) {
		t.Parallel()

		r := inject.NewResolver()
		values, release, err := r.Resolve(context.Background(), nil)
		require.NoError(t, err)
		require.NotNil(t, release)
		release()
		assert.Empty(t, values)
	})

	t.Run("provider error aborts resolution", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("db unreachable")
		plan := inject.MustPlan(
			inject.Dep("db", func(ctx context.Context) (any, error) { return nil, boom }),
		)

		r := inject.NewResolver()
		_, _, err := r.Resolve(context.Background(), plan)
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), `"db"`)
	})

	t.Run("resources release in reverse order", func(t *testing.T) {
		t.Parallel()

		var order []string
		plan := inject.MustPlan(
			inject.Resource("first", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
				return 1, func() { order = append(order, "first") }, nil
			}),
			inject.Resource("second", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
				return 2, func() { order = append(order, "second") }, nil
			}),
		)

		r := inject.NewResolver()
		_, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)

		assert.Empty(t, order, "resources must stay acquired until release is called")
		release()
		assert.Equal(t, []string{"second", "first"}, order)
	})

	t.Run("failure releases already acquired resources", func(t *testing.T) {
		t.Parallel()

		var released []string
		boom := errors.New("acquire failed")
		plan := inject.MustPlan(
			inject.Resource("conn", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
				return "c", func() { released = append(released, "conn") }, nil
			}),
			inject.Dep("broken", func(ctx context.Context) (any, error) { return nil, boom }),
		)

		r := inject.NewResolver()
		_, _, err := r.Resolve(context.Background(), plan)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"conn"}, released)
	})
}

func TestResolverOverrides(t *testing.T) {
	t.Parallel()

	t.Run("override wins over binding", func(t *testing.T) {
		t.Parallel()

		plan := inject.MustPlan(inject.Static("db", "real"))

		r := inject.NewResolver()
		r.Override("db", func(ctx context.Context) (any, error) { return "fake", nil })

		values, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)
		defer release()

		v, _ := values.Get("db")
		assert.Equal(t, "fake", v)
	})

	t.Run("override replaces resource acquisition entirely", func(t *testing.T) {
		t.Parallel()

		acquired := false
		plan := inject.MustPlan(
			inject.Resource("conn", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
				acquired = true
				return "real", func() {}, nil
			}),
		)

		r := inject.NewResolver()
		r.Override("conn", func(ctx context.Context) (any, error) { return "fake", nil })

		values, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)
		release()

		v, _ := values.Get("conn")
		assert.Equal(t, "fake", v)
		assert.False(t, acquired, "overridden resource provider must not run")
	})

	t.Run("clear restores original providers", func(t *testing.T) {
		t.Parallel()

		plan := inject.MustPlan(inject.Static("db", "real"))

		r := inject.NewResolver()
		r.Override("db", func(ctx context.Context) (any, error) { return "fake", nil })
		r.ClearOverrides()

		values, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)
		defer release()

		v, _ := values.Get("db")
		assert.Equal(t, "real", v)
	})

	t.Run("unknown name affects matching plans only", func(t *testing.T) {
		t.Parallel()

		plan := inject.MustPlan(inject.Static("db", "real"))

		r := inject.NewResolver()
		r.Override("cache", func(ctx context.Context) (any, error) { return "fake", nil })

		values, release, err := r.Resolve(context.Background(), plan)
		require.NoError(t, err)
		defer release()

		v, _ := values.Get("db")
		assert.Equal(t, "real", v)
		_, ok := values.Get("cache")
		assert.False(t, ok)
	})

	t.Run("nil override panics", func(t *testing.T) {
		t.Parallel()

		r := inject.NewResolver()
		assert.Panics(t, func() {
			r.Override("db", nil)
		})
	})
}

func TestResolverInject(t *testing.T) {
	t.Parallel()

	t.Run("supplied values win over resolved", func(t *testing.T) {
		t.Parallel()

		plan := inject.MustPlan(
			inject.Static("id", 0),
			inject.Static("db", "conn"),
		)

		r := inject.NewResolver()
		result, err := r.Inject(context.Background(), plan, inject.Values{"id": 42},
			func(ctx context.Context, values inject.Values) (any, error) {
				id, _ := values.Get("id")
				db, _ := values.Get("db")
				return []any{id, db}, nil
			})
		require.NoError(t, err)
		assert.Equal(t, []any{42, "conn"}, result)
	})

	t.Run("releases resources after fn returns", func(t *testing.T) {
		t.Parallel()

		released := false
		plan := inject.MustPlan(
			inject.Resource("conn", func(ctx context.Context) (any, inject.ReleaseFunc, error) {
				return "c", func() { released = true }, nil
			}),
		)

		r := inject.NewResolver()
		_, err := r.Inject(context.Background(), plan, nil,
			func(ctx context.Context, values inject.Values) (any, error) {
				assert.False(t, released, "resource must live for the duration of fn")
				return nil, nil
			})
		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("propagates fn error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("handler failed")
		r := inject.NewResolver()
		_, err := r.Inject(context.Background(), nil, nil,
			func(ctx context.Context, values inject.Values) (any, error) {
				return nil, boom
			})
		assert.ErrorIs(t, err, boom)
	})
}

func TestValuesMerge(t *testing.T) {
	t.Parallel()

	base := inject.Values{"a": 1, "b": 2}
	merged := base.Merge(inject.Values{"b": 20, "c": 30})

	assert.Equal(t, inject.Values{"a": 1, "b": 20, "c": 30}, merged)
	// Merge must not mutate the receiver.
	assert.Equal(t, inject.Values{"a": 1, "b": 2}, base)
}
