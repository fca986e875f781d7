package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment override, e.g.
// ZENQUIZ_AUTO_ADVANCE or ZENQUIZ_LOG_LEVEL.
const EnvPrefix = "ZENQUIZ"

// Config holds the runtime configuration.
type Config struct {
	// Catalog is a path to a catalog JSON file. Empty means the built-in
	// catalog.
	Catalog string `mapstructure:"catalog"`

	// AutoAdvance is how long a correct answer stays on screen before the
	// next question. Default: 1.5s.
	AutoAdvance time.Duration `mapstructure:"auto_advance"`

	// DefaultName pre-fills the name prompt on the welcome screen.
	DefaultName string `mapstructure:"default_name"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig configures the rotated log file.
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"` // debug, info, warn, error
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AutoAdvance: 1500 * time.Millisecond,
		Log: LogConfig{
			File:       DefaultLogPath(),
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultLogPath returns $XDG_STATE_HOME/zenquiz/zenquiz.log, falling back
// to ~/.local/state. Returns "" when no home directory can be resolved.
func DefaultLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "zenquiz", "zenquiz.log")
}

// NewViper returns a viper instance with defaults and environment overrides
// registered. Callers may bind flags before passing it to Load.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("auto_advance", d.AutoAdvance)
	v.SetDefault("default_name", d.DefaultName)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads an optional config file into v and decodes the result.
// With an empty path, zenquiz.yaml is searched for in the working
// directory and $XDG_CONFIG_HOME/zenquiz; a missing file is not an error
// in that case.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("zenquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "zenquiz"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.AutoAdvance <= 0 {
		errs = append(errs, fmt.Errorf("auto_advance must be positive, got %s", c.AutoAdvance))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
