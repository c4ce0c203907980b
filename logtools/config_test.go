package logtools_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/on-the-ground/toolbelt/logtools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"DEBUG":   zap.DebugLevel,
		"debug":   zap.DebugLevel,
		" Info ":  zap.InfoLevel,
		"WARNING": zap.WarnLevel,
		"warn":    zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"":        zap.InfoLevel,
		"verbose": zap.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, logtools.ParseLevel(in), in)
	}
}

func TestSetup_FileSinkIsNotDuplicated(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	path := filepath.Join(t.TempDir(), "app.log")
	cfg := logtools.Config{Level: "debug", ToFile: true, Filename: path}

	_, err := logtools.Setup(cfg)
	require.NoError(t, err)
	logger, err := logtools.Setup(cfg)
	require.NoError(t, err)

	assert.Same(t, logger, zap.L())
	zap.L().Info("hello from setup")
	zap.L().Debug("debug line")
	require.NoError(t, logtools.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Equal(t, 1, strings.Count(content, "hello from setup"))
	assert.Contains(t, content, "[INFO] hello from setup")
	assert.Contains(t, content, "[DEBUG] debug line")
}

func TestSetup_LevelFilters(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	path := filepath.Join(t.TempDir(), "warn.log")
	_, err := logtools.Setup(logtools.Config{Level: "WARNING", ToFile: true, Filename: path})
	require.NoError(t, err)

	zap.L().Info("quiet")
	zap.L().Warn("loud")
	require.NoError(t, logtools.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "quiet")
	assert.Contains(t, string(raw), "[WARN] loud")
}

func TestSetup_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "app.log")
	_, err := logtools.Setup(logtools.Config{ToFile: true, Filename: path})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestClose_InstallsNop(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	_, err := logtools.Setup(logtools.Config{Level: "info"})
	require.NoError(t, err)
	require.NoError(t, logtools.Close())
	assert.False(t, zap.L().Core().Enabled(zap.FatalLevel))
}

func TestDefaultConfig(t *testing.T) {
	cfg := logtools.DefaultConfig()
	assert.Equal(t, "INFO", cfg.Level)
	assert.True(t, cfg.ToConsole)
	assert.False(t, cfg.ToFile)
	assert.Equal(t, logtools.DefaultFilename, cfg.Filename)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_TO_CONSOLE", "false")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_FILE", "/tmp/toolbelt.log")

	cfg, err := logtools.ConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, logtools.Config{
		Level:     "debug",
		ToConsole: false,
		ToFile:    true,
		Filename:  "/tmp/toolbelt.log",
	}, cfg)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_TO_CONSOLE", "LOG_TO_FILE", "LOG_FILE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := logtools.ConfigFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, logtools.DefaultConfig(), cfg)
}
