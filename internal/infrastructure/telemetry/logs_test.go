package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}
	logger := zap.New(core)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.With(zap.String("k", "v")).Error("kept with field")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "kept", entries[0].Message)
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
	assert.False(t, core.Enabled(zapcore.InfoLevel))
}

func TestNewBridgedLogger(t *testing.T) {
	base, baseLogs := observer.New(zapcore.InfoLevel)
	other, otherLogs := observer.New(zapcore.InfoLevel)

	NewBridgedLogger(base, other).Info("both")

	assert.Equal(t, 1, baseLogs.Len())
	assert.Equal(t, 1, otherLogs.Len())
}
