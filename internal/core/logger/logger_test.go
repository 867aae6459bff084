package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToWriter_TrimsNewlines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := ToWriter(zap.New(core), zapcore.WarnLevel)

	n, err := w.Write([]byte("slow sql 250ms\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, n)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "slow sql 250ms", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestToWriter_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := ToWriter(zap.New(core), zapcore.InfoLevel)

	_, _ = w.Write([]byte("ignored"))
	assert.Zero(t, logs.Len())
}

func TestNewWithRotate_WritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "admin.log")
	l, cleanup := NewWithRotate("info", true, FileRotate{Enable: true, Filename: file, MaxSizeMB: 1})
	defer cleanup()

	l.Info("hello")
	assert.FileExists(t, file)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	l, cleanup := New("loud", false)
	defer cleanup()

	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
