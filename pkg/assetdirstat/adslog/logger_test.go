package adslog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_Nop(t *testing.T) {
	logger, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ads.log")
	logger, err := New(Options{File: logFile, Level: "warn"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("skipping unreadable entry", zap.String("path", "Assets/x.png"))
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"path":"Assets/x.png"`)
}

func TestNew_Stderr(t *testing.T) {
	logger, err := New(Options{ToStderr: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{ToStderr: true, Level: "chatty"})
	assert.Error(t, err)
}
