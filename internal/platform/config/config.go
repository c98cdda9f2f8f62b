// Package config loads service configuration from an optional YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// ServeDisabled suppresses automatic listener startup so the
	// service can be driven programmatically (e.g. from tests).
	ServeDisabled bool `yaml:"serve_disabled"`
}

// Load reads the configuration file at path. An empty path or a
// missing file yields the defaults. The PORT and SERVE_DISABLED
// environment variables override file values.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case os.IsNotExist(err):
			// Missing file falls back to defaults
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}

	// Environment overrides
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SERVE_DISABLED"); v != "" {
		cfg.Server.ServeDisabled = strings.EqualFold(v, "true") || v == "1"
	}

	return &cfg, nil
}
