package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedZap(t *testing.T) (*ZapLogger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	return NewZapLogger(zap.New(core)), logs
}

func TestZapLogger_Levels(t *testing.T) {
	log, logs := newObservedZap(t)
	ctx := context.Background()

	log.Info(ctx, "info msg", "k", "v")
	log.Warn(ctx, "warn msg")
	log.Error(ctx, "error msg")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "info msg", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
}

func TestZapLogger_With_AddsPersistentFields(t *testing.T) {
	log, logs := newObservedZap(t)

	log.With("component", "facade").Info(context.Background(), "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "facade", entries[0].ContextMap()["component"])
}
