package config_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "Casa", cfg.Defaults.Origin)
	assert.Equal(t, "Parque", cfg.Defaults.Destination)
	assert.Empty(t, cfg.Map.Path)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Setenv("CITYNAV_TEST_ADDR", "127.0.0.1:9999")
	path := filepath.Join(t.TempDir(), "citynav.yaml")
	doc := `
server:
  addr: ${CITYNAV_TEST_ADDR}
  read_timeout: 2s
log:
  level: debug
  format: json
defaults:
  algorithm: bfs
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout, "omitted keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "bfs", cfg.Defaults.Algorithm)
	assert.Equal(t, "Casa", cfg.Defaults.Origin)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.Parse("server:\n  adress: :80\n")
	require.Error(t, err, "unknown keys are rejected")

	_, err = config.Parse("log:\n  level: loud\n")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse("log:\n  format: xml\n")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse("defaults:\n  algorithm: dfs\n")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Parse("server:\n  addr: \"\"\n")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_EmptyPathAndDocument(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])

	_, err = config.NewLogger(config.LogConfig{Level: "info", Format: "xml"}, &buf)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	_, err = config.NewLogger(config.LogConfig{Level: "verbose"}, &buf)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug, "": slog.LevelInfo, "INFO": slog.LevelInfo,
		"warning": slog.LevelWarn, "error": slog.LevelError,
	} {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLogFormat_ValidateAgreesWithNewLogger(t *testing.T) {
	for _, format := range []string{"", "text", "JSON", "xml"} {
		cfg := config.Default()
		cfg.Log.Format = format
		vErr := cfg.Validate()
		_, lErr := config.NewLogger(cfg.Log, io.Discard)
		assert.Equal(t, vErr == nil, lErr == nil, "format %q", format)
	}

	cfg, err := config.Parse("log:\n  format: \"\"\n")
	require.NoError(t, err)
	assert.Empty(t, cfg.Log.Format)

	got, err := config.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, "text", got)
}
