package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultIsValid(t *testing.T) {
	cfg := NewDefault()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "USD", cfg.Defaults.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "debug level", mutate: func(c *Config) { c.Log.Level = "DEBUG" }},
		{name: "empty level", mutate: func(c *Config) { c.Log.Level = "" }},
		{name: "unknown level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "euro", mutate: func(c *Config) { c.Defaults.Currency = "EUR" }},
		{name: "lowercase currency", mutate: func(c *Config) { c.Defaults.Currency = "usd" }, wantErr: true},
		{name: "long currency", mutate: func(c *Config) { c.Defaults.Currency = "USDT" }, wantErr: true},
		{name: "empty currency", mutate: func(c *Config) { c.Defaults.Currency = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
