package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-collate/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	record := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	return record
}

func TestGet_DefaultSubsystem(t *testing.T) {
	t.Parallel()

	base, buf := capture(t)
	ctx := logger.WithLogger(t.Context(), base)

	logger.Get(ctx).Info("hello")

	record := decode(t, buf)
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, logger.DefaultSubsystem, record["subsystem"])
}

func TestGet_SubsystemAndValues(t *testing.T) {
	t.Parallel()

	base, buf := capture(t)
	ctx := logger.WithLogger(t.Context(), base)
	ctx = logger.WithSubsystem(ctx, "index")
	ctx = logger.With(ctx, "table", "users", "keys", 3)

	logger.Get(ctx).Debug("bisecting")

	record := decode(t, buf)
	assert.Equal(t, "index", record["subsystem"])
	assert.Equal(t, "users", record["table"])
	assert.InDelta(t, 3.0, record["keys"], 0)
}

func TestGet_NoContext(t *testing.T) {
	t.Parallel()

	require.NotNil(t, logger.Get())
	require.NotNil(t, logger.Get(nil)) //nolint:staticcheck

	assert.Equal(t, logger.DefaultSubsystem, logger.GetSubsystem(nil)) //nolint:staticcheck
}

func TestWith_NoValues(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Equal(t, ctx, logger.With(ctx))
}
