package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fennec/core/config"
)

type appConfig struct {
	Name    string        `env:"TEST_APP_NAME,required"`
	Port    int           `env:"TEST_APP_PORT" envDefault:"8080"`
	Debug   bool          `env:"TEST_APP_DEBUG" envDefault:"false"`
	Timeout time.Duration `env:"TEST_APP_TIMEOUT" envDefault:"5s"`
}

func TestLoad(t *testing.T) {
	t.Run("loads from environment with defaults", func(t *testing.T) {
		t.Setenv("TEST_APP_NAME", "fennec")
		t.Setenv("TEST_APP_PORT", "9090")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "fennec", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.False(t, cfg.Debug)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("second load returns cached value", func(t *testing.T) {
		t.Setenv("TEST_APP_NAME", "fennec")
		t.Setenv("TEST_APP_PORT", "9090")

		var first appConfig
		require.NoError(t, config.Load(&first))

		// Same type loads once per process; env changes are ignored.
		t.Setenv("TEST_APP_PORT", "1111")
		var second appConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		type strictConfig struct {
			Secret string `env:"TEST_APP_MISSING_SECRET,required"`
		}

		var cfg strictConfig
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("nil target fails", func(t *testing.T) {
		var cfg *appConfig
		assert.Error(t, config.Load(cfg))
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		type strictConfig struct {
			Token string `env:"TEST_APP_MISSING_TOKEN,required"`
		}

		assert.Panics(t, func() {
			var cfg strictConfig
			config.MustLoad(&cfg)
		})
	})
}
