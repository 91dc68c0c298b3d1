package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path   string `mapstructure:"path" validate:"required"`
	Resume bool   `mapstructure:"resume"`
}

// SeedConfig points at the seed list. An empty path uses the built-in list.
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// ThemeConfig selects a theme and optionally overrides its color tokens.
type ThemeConfig struct {
	Name   string            `mapstructure:"name" validate:"omitempty,oneof=light dark"`
	Colors map[string]string `mapstructure:"colors" validate:"dive,keys,required,endkeys,hexcolor"`
}

// LogConfig holds log file settings. The terminal belongs to the UI, so logs
// always go to a file.
type LogConfig struct {
	Path  string `mapstructure:"path" validate:"required"`
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title        string `mapstructure:"title"`
	HistoryLimit int    `mapstructure:"history_limit" validate:"gte=1,lte=500"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "rollcall")
}

// Load reads configuration from file and env. Env var overrides use prefix ROLLCALL_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "rollcall.db"))
	v.SetDefault("database.resume", true)
	v.SetDefault("seed.path", "")
	v.SetDefault("theme.name", "light")
	v.SetDefault("log.path", filepath.Join(dataDir(), "rollcall.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Roll Call")
	v.SetDefault("ui.history_limit", 50)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROLLCALL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rollcall"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROLLCALL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist and parse.
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("ROLLCALL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "rollcall", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.resume", cfg.Database.Resume)
	v.Set("seed.path", cfg.Seed.Path)
	v.Set("theme.name", cfg.Theme.Name)
	if len(cfg.Theme.Colors) > 0 {
		v.Set("theme.colors", cfg.Theme.Colors)
	}
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.history_limit", cfg.UI.HistoryLimit)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
