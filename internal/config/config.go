// Package config loads the runtime configuration for the trajectory server.
// Fields are pointer-typed so a partial file only overrides what it names;
// the Get* accessors supply the defaults for everything else.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kanade-k-1228/traj/internal/trajectory"
)

// maxFileSize caps config files at 1MB; anything larger is a mistake.
const maxFileSize = 1 * 1024 * 1024

// Config holds the tunable runtime parameters. JSON and YAML files share
// the same field names.
type Config struct {
	// TimeSteps is the fixed trajectory length N.
	TimeSteps *int `json:"time_steps,omitempty" yaml:"time_steps,omitempty"`
	// Dt is the sample interval in seconds.
	Dt *float64 `json:"dt,omitempty" yaml:"dt,omitempty"`
	// Listen is the HTTP listen address.
	Listen *string `json:"listen,omitempty" yaml:"listen,omitempty"`
}

// Default returns an empty config; all accessors fall back to defaults.
func Default() *Config {
	return &Config{}
}

// Load reads a config file. The format is chosen by extension: .json, or
// .yaml/.yml. Fields omitted from the file keep their defaults, so partial
// configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("config file must be .json, .yaml or .yml, got %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that explicitly set fields are usable.
func (c *Config) Validate() error {
	if c.TimeSteps != nil && *c.TimeSteps < 2 {
		return fmt.Errorf("time_steps must be at least 2, got %d", *c.TimeSteps)
	}
	if c.Dt != nil && *c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", *c.Dt)
	}
	if c.Listen != nil && *c.Listen == "" {
		return fmt.Errorf("listen must not be empty when set")
	}
	return nil
}

// GetTimeSteps returns the configured trajectory length, or the default.
func (c *Config) GetTimeSteps() int {
	if c != nil && c.TimeSteps != nil {
		return *c.TimeSteps
	}
	return trajectory.DefaultTimeSteps
}

// GetDt returns the configured sample interval, or the default.
func (c *Config) GetDt() float64 {
	if c != nil && c.Dt != nil {
		return *c.Dt
	}
	return trajectory.DefaultDt
}

// GetListen returns the configured listen address, or ":8080".
func (c *Config) GetListen() string {
	if c != nil && c.Listen != nil {
		return *c.Listen
	}
	return ":8080"
}
