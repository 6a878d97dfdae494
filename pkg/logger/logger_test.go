package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pacam/formrelay/pkg/logger"
)

type ctxKey struct{}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, flush := logger.New(logger.Config{Output: &buf, Format: logger.FormatJSON}, requestIDExtractor)
		require.NoError(t, flush(context.Background()))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "submission received", slog.String("kind", "redemption"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "submission received", rec["msg"])
		assert.Equal(t, "redemption", rec["kind"])
		assert.Equal(t, "req-1", rec["request_id"])
	})

	t.Run("extractor skipped when value absent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := logger.New(logger.Config{Output: &buf}, requestIDExtractor)
		log.Info("no request")

		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := logger.New(logger.Config{Output: &buf, Format: "TEXT"})
		log.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, _ := logger.New(logger.Config{Output: &buf, Level: slog.LevelWarn})
		log.Info("dropped")
		log.Warn("kept")

		assert.NotContains(t, buf.String(), "dropped")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestNewLogHandlerDecorator_NilExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), nil, requestIDExtractor, nil)
	log := slog.New(h).With("component", "test")

	ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
	log.InfoContext(ctx, "msg")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
	assert.Contains(t, buf.String(), `"component":"test"`)
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", logger.Error(errors.New("boom")).Value.String())
	assert.Equal(t, "<nil>", logger.Error(nil).Value.String())
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
