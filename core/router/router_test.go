package router_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fennec/core/handler"
	"github.com/dmitrymomot/fennec/core/router"
)

func okHandler(ctx handler.Context) (any, error) {
	return "ok", nil
}

func TestRouterMatch(t *testing.T) {
	t.Parallel()

	t.Run("static route", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/health", okHandler)

		m, err := r.Match(http.MethodGet, "/health")
		require.NoError(t, err)
		assert.Equal(t, "/health", m.Route.Template())
		assert.Empty(t, m.Params)
	})

	t.Run("parameterized route extracts values", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/{id}/posts/{slug}", okHandler)

		m, err := r.Match(http.MethodGet, "/users/42/posts/hello-world")
		require.NoError(t, err)

		id, ok := m.Params.Int("id")
		require.True(t, ok)
		assert.Equal(t, 42, id)
		assert.Equal(t, "hello-world", m.Params.String("slug"))
	})

	t.Run("untyped parameter coerces digit tokens to int", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/items/{key}", okHandler)

		m, err := r.Match(http.MethodGet, "/items/007")
		require.NoError(t, err)
		v, ok := m.Params.Get("key")
		require.True(t, ok)
		assert.Equal(t, 7, v)

		m, err = r.Match(http.MethodGet, "/items/abc123")
		require.NoError(t, err)
		v, ok = m.Params.Get("key")
		require.True(t, ok)
		assert.Equal(t, "abc123", v)
	})

	t.Run("int parameter rejects non-numeric tokens", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/{id:int}", okHandler)

		m, err := r.Match(http.MethodGet, "/users/42")
		require.NoError(t, err)
		v, ok := m.Params.Get("id")
		require.True(t, ok)
		assert.Equal(t, 42, v)

		_, err = r.Match(http.MethodGet, "/users/alice")
		assert.ErrorIs(t, err, router.ErrNotFound)

		// Signs are not digits, so negative tokens stay unmatched.
		_, err = r.Match(http.MethodGet, "/users/-5")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})

	t.Run("string parameter keeps digit tokens as strings", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/codes/{code:string}", okHandler)

		m, err := r.Match(http.MethodGet, "/codes/12345")
		require.NoError(t, err)
		v, ok := m.Params.Get("code")
		require.True(t, ok)
		assert.Equal(t, "12345", v)
	})

	t.Run("first registered wins", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/{id}", okHandler, router.WithName("first"))
		r.Get("/users/{name}", okHandler, router.WithName("second"))

		m, err := r.Match(http.MethodGet, "/users/alice")
		require.NoError(t, err)
		assert.Equal(t, "first", m.Route.Name())
	})

	t.Run("literal before parameter when registered first", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/me", okHandler, router.WithName("me"))
		r.Get("/users/{id}", okHandler, router.WithName("by-id"))

		m, err := r.Match(http.MethodGet, "/users/me")
		require.NoError(t, err)
		assert.Equal(t, "me", m.Route.Name())

		m, err = r.Match(http.MethodGet, "/users/42")
		require.NoError(t, err)
		assert.Equal(t, "by-id", m.Route.Name())
	})

	t.Run("parameter registered first shadows literal", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/{id}", okHandler, router.WithName("by-id"))
		r.Get("/users/me", okHandler, router.WithName("me"))

		m, err := r.Match(http.MethodGet, "/users/me")
		require.NoError(t, err)
		assert.Equal(t, "by-id", m.Route.Name())
	})

	t.Run("unknown path", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users", okHandler)

		_, err := r.Match(http.MethodGet, "/posts")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})

	t.Run("wrong method is not found", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users", okHandler)

		_, err := r.Match(http.MethodPost, "/users")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})

	t.Run("method is case insensitive", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users", okHandler)

		_, err := r.Match("get", "/users")
		assert.NoError(t, err)
	})

	t.Run("segment count must match exactly", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users/{id}", okHandler)

		_, err := r.Match(http.MethodGet, "/users")
		assert.ErrorIs(t, err, router.ErrNotFound)

		_, err = r.Match(http.MethodGet, "/users/42/extra")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})

	t.Run("trailing slash is a distinct path", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Get("/users", okHandler)

		_, err := r.Match(http.MethodGet, "/users/")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})
}

func TestRouterHandle(t *testing.T) {
	t.Parallel()

	t.Run("multiple methods on one route", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		r.Handle("/things", okHandler, []string{http.MethodGet, http.MethodPost})

		_, err := r.Match(http.MethodGet, "/things")
		assert.NoError(t, err)
		_, err = r.Match(http.MethodPost, "/things")
		assert.NoError(t, err)
		_, err = r.Match(http.MethodDelete, "/things")
		assert.ErrorIs(t, err, router.ErrNotFound)
	})

	t.Run("panics on nil handler", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Get("/broken", nil)
		})
	})

	t.Run("panics on invalid method", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Handle("/broken", okHandler, []string{"FETCH"})
		})
	})

	t.Run("panics on empty method list", func(t *testing.T) {
		t.Parallel()

		r := router.New()
		assert.Panics(t, func() {
			r.Handle("/broken", okHandler, nil)
		})
	})
}

func TestRouterTemplateValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		template string
	}{
		{"missing leading slash", "users/{id}"},
		{"unbalanced open brace", "/users/{id"},
		{"unbalanced close brace", "/users/id}"},
		{"empty parameter name", "/users/{}"},
		{"unknown parameter type", "/users/{id:uuid}"},
		{"duplicate parameter name", "/users/{id}/posts/{id}"},
		{"brace inside segment", "/users/x{id}"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := router.New()
			assert.Panics(t, func() {
				r.Get(tc.template, okHandler)
			})
		})
	}
}

func TestRouterGroup(t *testing.T) {
	t.Parallel()

	r := router.New()
	api := r.Group("/api")
	api.Get("/users/{id:int}", okHandler)

	m, err := r.Match(http.MethodGet, "/api/users/9")
	require.NoError(t, err)
	v, ok := m.Params.Get("id")
	require.True(t, ok)
	assert.Equal(t, 9, v)

	// Groups share the parent's route table.
	_, err = api.Match(http.MethodGet, "/api/users/9")
	assert.NoError(t, err)
}

func TestRouterShadowWarning(t *testing.T) {
	t.Parallel()

	t.Run("warns when later route is unreachable", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger(log))
		r.Get("/users/{id}", okHandler)
		r.Get("/users/me", okHandler)

		assert.Contains(t, buf.String(), "shadowed")
		assert.Contains(t, buf.String(), "/users/me")
	})

	t.Run("int placeholder shadows numeric literal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger(log))
		r.Get("/users/{id:int}", okHandler)
		r.Get("/users/42", okHandler)

		assert.Contains(t, buf.String(), "shadowed")
	})

	t.Run("int placeholder does not shadow word literal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger(log))
		r.Get("/users/{id:int}", okHandler)
		r.Get("/users/me", okHandler)

		assert.NotContains(t, buf.String(), "shadowed")
	})

	t.Run("no warning for disjoint methods", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		r := router.New(router.WithLogger(log))
		r.Get("/users/{id}", okHandler)
		r.Post("/users/me", okHandler)

		assert.NotContains(t, buf.String(), "shadowed")
	})
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	r := router.New()
	r.Get("/a", okHandler)
	r.Post("/b", okHandler)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/a", routes[0].Template())
	assert.Equal(t, "/b", routes[1].Template())
}

func TestParams(t *testing.T) {
	t.Parallel()

	p := router.Params{"id": 42, "slug": "hello"}

	assert.Equal(t, "42", p.String("id"))
	assert.Equal(t, "hello", p.String("slug"))
	assert.Equal(t, "", p.String("missing"))

	id, ok := p.Int("id")
	require.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = p.Int("slug")
	assert.False(t, ok)
}
