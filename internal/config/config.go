// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the configuration for the workspace service.
// Environment variables are parsed from the AURA_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8990"`

	// DataDir overrides the default ~/.aura state directory when set.
	DataDir string `envconfig:"DATA_DIR" default:""`

	// Auto-save loop interval. The loop itself only runs while
	// settings.autoSave is enabled.
	AutoSaveIntervalSeconds int `envconfig:"AUTOSAVE_INTERVAL_SECONDS" default:"30"`

	// SeedSampleData controls whether a completely empty store is seeded
	// with demo content on first run.
	SeedSampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`

	ShutdownTimeoutSeconds int `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10"`
}

// New creates a Config by parsing environment variables.
// Example: AURA_HTTP_PORT, AURA_DATA_DIR.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("AURA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.AutoSaveIntervalSeconds <= 0 {
		return nil, fmt.Errorf("AURA_AUTOSAVE_INTERVAL_SECONDS must be positive")
	}
	return &cfg, nil
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
