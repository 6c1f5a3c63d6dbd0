package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FILEBROWSER_SERVER_PORT
const EnvPrefix = "FILEBROWSER"

// Config represents the complete server configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (FILEBROWSER_*)
//  2. Configuration file (YAML)
//  3. Default values
//
// It is read once at startup and never reloaded.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Monitor   MonitorConfig   `mapstructure:"monitor"`
}

// StorageConfig locates the flat store and bounds uploads.
type StorageConfig struct {
	// BasePath is the single directory holding every stored file
	BasePath string `mapstructure:"base_path" validate:"required"`

	// MaxFileSize is the upload limit in bytes; a file of exactly this size is accepted.
	// Capped at 1 TiB.
	MaxFileSize int64 `mapstructure:"max_file_size" validate:"gt=0,lte=1099511627776"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Environment     string        `mapstructure:"environment" validate:"required,oneof=development production test"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LoggingConfig controls logrus output.
type LoggingConfig struct {
	// Level is normalized to lowercase before validation
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

// CORSConfig holds the origin whitelist. Empty denies every cross-origin request.
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

// RateLimitConfig limits requests per client IP. Zero disables limiting.
type RateLimitConfig struct {
	PerMin int `mapstructure:"per_min" validate:"gte=0"`
}

// MonitorConfig schedules the periodic store probe.
type MonitorConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load loads configuration from file, environment, and defaults.
// An empty configPath searches ./config.yaml and $XDG_CONFIG_HOME/filebrowser/config.yaml;
// a missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)
	setDefaults(v)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable support and the config file search.
func setupViper(v *viper.Viper, configPath string) {
	// Example: FILEBROWSER_STORAGE_BASE_PATH=/srv/files
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}

	v.AddConfigPath(".")
	v.AddConfigPath(getConfigDir())
	v.SetConfigName("config")
	v.SetConfigType("yaml")
}

// setDefaults registers every key so environment overrides apply on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.base_path", "./data")
	v.SetDefault("storage.max_file_size", 10*1024*1024)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("cors.origins", []string{})
	v.SetDefault("rate_limit.per_min", 120)
	v.SetDefault("monitor.enabled", true)
	v.SetDefault("monitor.schedule", "@every 5m")
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

func normalize(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))

	origins := make([]string, 0, len(cfg.CORS.Origins))
	for _, origin := range cfg.CORS.Origins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.CORS.Origins = origins
}

// getConfigDir returns $XDG_CONFIG_HOME/filebrowser, ~/.config/filebrowser, or "."
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "filebrowser")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "filebrowser")
}
