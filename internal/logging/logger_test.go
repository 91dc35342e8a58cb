package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthub/admin-api/internal/config"
)

func TestNewLogger_FileOutput(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Dir = t.TempDir()
	cfg.Console.Enabled = false
	cfg.File.Enabled = true

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("test message", "key", "value")

	require.NoError(t, Shutdown())

	data, err := os.ReadFile(filepath.Join(cfg.Dir, "admin-api.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message")
}

func TestNewLogger_ErrorFileOnlyGetsWarnings(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Dir = t.TempDir()
	cfg.Console.Enabled = false
	cfg.File.Enabled = true

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	logger.Info("routine info")
	logger.Error("something failed")

	require.NoError(t, Shutdown())

	data, err := os.ReadFile(filepath.Join(cfg.Dir, "errors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "something failed")
	assert.NotContains(t, string(data), "routine info")
}

func TestNewLogger_NoOutputsStillWorks(t *testing.T) {
	cfg := config.DefaultLoggingConfig()
	cfg.Console.Enabled = false
	cfg.File.Enabled = false

	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	// Must not panic with every output disabled.
	logger.Info("discarded")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(NewLevelFilter(inner, slog.LevelWarn))

	logger.Info("filtered out")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "filtered out")
	assert.Contains(t, buf.String(), "kept")
}

func TestLevelFilter_Enabled(t *testing.T) {
	inner := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug})
	f := NewLevelFilter(inner, slog.LevelWarn)

	assert.False(t, f.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, f.Enabled(context.Background(), slog.LevelError))
}

func TestMultiHandler_FansOut(t *testing.T) {
	buf1 := &bytes.Buffer{}
	buf2 := &bytes.Buffer{}
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(buf1, nil),
		slog.NewJSONHandler(buf2, nil),
	))

	logger.Info("hello")

	assert.Contains(t, buf1.String(), "hello")
	assert.Contains(t, buf2.String(), "hello")
}

func TestMultiHandler_RespectsPerHandlerLevels(t *testing.T) {
	debugBuf := &bytes.Buffer{}
	errorBuf := &bytes.Buffer{}
	logger := slog.New(NewMultiHandler(
		slog.NewTextHandler(debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	logger.Info("info only")

	assert.Contains(t, debugBuf.String(), "info only")
	assert.Empty(t, errorBuf.String())
}
