package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agency-hub/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.BackendMemory, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Seed)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 4.8, cfg.Dashboard.ClientSatisfaction)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("STORAGE_SEED", "false")
	t.Setenv("PSQL_ADDRESS", "postgres://agency:secret@db:5432/agency?sslmode=disable")
	t.Setenv("PSQL_MAX_CONNS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, configs.BackendPostgres, cfg.Storage.Backend)
	assert.False(t, cfg.Storage.Seed)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, int32(4), cfg.Psql.MaxConns)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerHandler(t *testing.T) {
	cases := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"json", func(t *testing.T, out string) { assert.True(t, strings.HasPrefix(out, "{"), out) }},
		{"text", func(t *testing.T, out string) { assert.Contains(t, out, "msg=hello") }},
		{"tint", func(t *testing.T, out string) { assert.Contains(t, out, "hello") }},
		{"yaml", func(t *testing.T, out string) { assert.Contains(t, out, "msg=hello") }},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(configs.Logger{Level: "debug", Format: tc.format}.Handler(&buf))
			logger.Debug("hello")
			tc.check(t, buf.String())
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "WARNING"}.SlogLevel())
	assert.Equal(t, slog.LevelError, configs.Logger{Level: "err"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
}
