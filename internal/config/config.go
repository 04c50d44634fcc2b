// Package config loads rosatheme settings from file, environment and
// defaults.
//
// Configuration is read with viper from ~/.config/rosatheme/config.yaml (or
// the file passed with --config). Every key can be overridden by an
// environment variable with the ROSATHEME_ prefix, dots replaced by
// underscores: ROSATHEME_DAEMON_PORT=9000.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/rosagold/rosatheme/internal/theme"
)

const (
	appDir         = "rosatheme"
	fileName       = "config.yaml"
	envPrefix      = "ROSATHEME"
	DefaultPort    = 7412
	DefaultHost    = "127.0.0.1"
	DefaultModeKey = "beauty-salon-theme"
)

// Config is the full application configuration.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
}

// ThemeConfig controls the initial color mode.
type ThemeConfig struct {
	InitialColorMode   string `mapstructure:"initial_color_mode"`
	UseSystemColorMode bool   `mapstructure:"use_system_color_mode"`
	StorageKey         string `mapstructure:"storage_key"`
}

// DatabaseConfig locates the preference store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DaemonConfig configures the gRPC theme service.
type DaemonConfig struct {
	Hostname  string          `mapstructure:"hostname"`
	Port      int             `mapstructure:"port"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig toggles and sizes the per-method limiter.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	modes := theme.DefaultModeConfig()
	return &Config{
		Theme: ThemeConfig{
			InitialColorMode:   string(modes.InitialColorMode),
			UseSystemColorMode: modes.UseSystemColorMode,
			StorageKey:         DefaultModeKey,
		},
		Database: DatabaseConfig{
			Path: defaultDatabasePath(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Daemon: DaemonConfig{
			Hostname: DefaultHost,
			Port:     DefaultPort,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 200,
				BurstSize:         400,
			},
		},
	}
}

// Dir returns the directory holding the default config file.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", "."+appDir)
	}
	return filepath.Join(home, ".config", appDir)
}

func defaultDatabasePath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir, appDir+".db")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", appDir+".db")
	}
	return filepath.Join(home, ".local", "share", appDir, appDir+".db")
}

// Load reads the configuration. An empty path searches the default
// location; a missing default file is not an error, a missing explicit file
// is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Database.Path = expandHome(cfg.Database.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("theme.initial_color_mode", cfg.Theme.InitialColorMode)
	v.SetDefault("theme.use_system_color_mode", cfg.Theme.UseSystemColorMode)
	v.SetDefault("theme.storage_key", cfg.Theme.StorageKey)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("daemon.hostname", cfg.Daemon.Hostname)
	v.SetDefault("daemon.port", cfg.Daemon.Port)
	v.SetDefault("daemon.rate_limit.enabled", cfg.Daemon.RateLimit.Enabled)
	v.SetDefault("daemon.rate_limit.requests_per_second", cfg.Daemon.RateLimit.RequestsPerSecond)
	v.SetDefault("daemon.rate_limit.burst_size", cfg.Daemon.RateLimit.BurstSize)
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	var errs []error

	if _, err := theme.ParseColorMode(c.Theme.InitialColorMode); err != nil {
		errs = append(errs, fmt.Errorf("theme.initial_color_mode: %w", err))
	}
	if strings.TrimSpace(c.Theme.StorageKey) == "" {
		errs = append(errs, errors.New("theme.storage_key is required"))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	if c.Daemon.Port < 1 || c.Daemon.Port > 65535 {
		errs = append(errs, fmt.Errorf("daemon.port must be between 1 and 65535, got %d", c.Daemon.Port))
	}
	if c.Daemon.RateLimit.Enabled {
		if c.Daemon.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, errors.New("daemon.rate_limit.requests_per_second must be positive"))
		}
		if c.Daemon.RateLimit.BurstSize < 1 {
			errs = append(errs, errors.New("daemon.rate_limit.burst_size must be at least 1"))
		}
	}

	return errors.Join(errs...)
}

// ModeConfig converts the theme settings into the resolver's form.
func (c *Config) ModeConfig() theme.ModeConfig {
	mode, _ := theme.ParseColorMode(c.Theme.InitialColorMode)
	return theme.ModeConfig{
		InitialColorMode:   mode,
		UseSystemColorMode: c.Theme.UseSystemColorMode,
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
