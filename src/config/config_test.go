package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	// Keep the user's own config out of the search path
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.Storage.BasePath)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Empty(t, cfg.CORS.Origins)
	assert.Equal(t, 120, cfg.RateLimit.PerMin)
	assert.True(t, cfg.Monitor.Enabled)
	assert.Equal(t, "@every 5m", cfg.Monitor.Schedule)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
storage:
  base_path: /srv/files
  max_file_size: 10
server:
  port: 9090
  environment: production
  shutdown_timeout: 3s
logging:
  level: DEBUG
  format: text
cors:
  origins:
    - https://files.example.com
    - " https://admin.example.com "
rate_limit:
  per_min: 0
monitor:
  enabled: false
  schedule: ""
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/files", cfg.Storage.BasePath)
	assert.Equal(t, int64(10), cfg.Storage.MaxFileSize)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, []string{"https://files.example.com", "https://admin.example.com"}, cfg.CORS.Origins)
	assert.Equal(t, 0, cfg.RateLimit.PerMin)
	assert.False(t, cfg.Monitor.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
storage:
  base_path: /srv/files
server:
  port: 9090
`)
	t.Setenv("FILEBROWSER_SERVER_PORT", "7070")
	t.Setenv("FILEBROWSER_STORAGE_MAX_FILE_SIZE", "2048")
	t.Setenv("FILEBROWSER_SERVER_SHUTDOWN_TIMEOUT", "15s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/srv/files", cfg.Storage.BasePath)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "storage: [not, a, map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"empty base path", func(cfg *Config) { cfg.Storage.BasePath = "" }},
		{"zero max size", func(cfg *Config) { cfg.Storage.MaxFileSize = 0 }},
		{"max size above 1 TiB", func(cfg *Config) { cfg.Storage.MaxFileSize = 1<<40 + 1 }},
		{"max size near int64 limit", func(cfg *Config) { cfg.Storage.MaxFileSize = math.MaxInt64 }},
		{"port too high", func(cfg *Config) { cfg.Server.Port = 70000 }},
		{"unknown environment", func(cfg *Config) { cfg.Server.Environment = "staging" }},
		{"zero shutdown timeout", func(cfg *Config) { cfg.Server.ShutdownTimeout = 0 }},
		{"unknown level", func(cfg *Config) { cfg.Logging.Level = "trace" }},
		{"unknown format", func(cfg *Config) { cfg.Logging.Format = "xml" }},
		{"negative rate", func(cfg *Config) { cfg.RateLimit.PerMin = -1 }},
		{"missing schedule", func(cfg *Config) { cfg.Monitor.Schedule = "" }},
		{"bad schedule", func(cfg *Config) { cfg.Monitor.Schedule = "every five minutes" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestValidate_DisabledMonitorSkipsSchedule(t *testing.T) {
	cfg := validConfig()
	cfg.Monitor.Enabled = false
	cfg.Monitor.Schedule = ""

	assert.NoError(t, Validate(cfg))
}

func TestFormatValidationError(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Config.Server.Port")
	assert.Contains(t, err.Error(), "'min' tag")
}

func validConfig() *Config {
	return &Config{
		Storage:   StorageConfig{BasePath: "./data", MaxFileSize: 1024},
		Server:    ServerConfig{Port: 8080, Environment: "test", ShutdownTimeout: time.Second},
		Logging:   LoggingConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{PerMin: 60},
		Monitor:   MonitorConfig{Enabled: true, Schedule: "*/5 * * * *"},
	}
}
