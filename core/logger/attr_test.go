package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fennec/core/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(errors.New("boom"))
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, "boom", attr.Value.String())
	})

	t.Run("nil error is an empty attr", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		log.Info("ok", logger.Error(nil))
		assert.NotContains(t, buf.String(), "error=")
	})

	t.Run("empty request id is an empty attr", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
		assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	})

	t.Run("request attrs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "GET", logger.Method("GET").Value.String())
		assert.Equal(t, "/users", logger.Path("/users").Value.String())
		assert.Equal(t, int64(404), logger.Status(404).Value.Int64())
		assert.Equal(t, "10.0.0.1", logger.RemoteAddr("10.0.0.1").Value.String())
	})

	t.Run("durations", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
		assert.Equal(t, "elapsed", logger.Elapsed(time.Now()).Key)
	})
}
