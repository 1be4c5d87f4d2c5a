package config

import (
	"fmt"
	"strings"

	"github.com/hance08/clevercash/internal/validation"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
		Log:      LogConfig{Level: "warn"},
	}
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !contains(logLevels, level) {
		return fmt.Errorf("invalid log.level '%s' (use debug, info, warn or error)", c.Log.Level)
	}

	if err := validation.ValidateCurrency(c.Defaults.Currency); err != nil {
		return fmt.Errorf("invalid defaults.currency '%s': %w", c.Defaults.Currency, err)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
