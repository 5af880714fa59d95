// Package config provides configuration management for metamerge.
//
// Configuration only tunes ambient behaviour (logging, loader limits, output
// formatting, the stats report); the merge inputs and threshold always come
// from the command line.
//
// Config file locations (priority order):
//  1. $METAMERGE_CONFIG
//  2. ./metamerge.yaml
//  3. $XDG_CONFIG_HOME/metamerge/config.yaml
//  4. ~/.config/metamerge/config.yaml
//  5. /etc/metamerge/config.yaml
//
// .env files in the working directory and the user config directories are
// loaded first, so METAMERGE_CONFIG can be set there.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxLineBytes = 1 << 20
	defaultLogLevel     = "info"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	if files := FindEnvFiles(); len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return nil, "", fmt.Errorf("load .env: %w", err)
		}
	}

	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// DefaultConfig returns defaults used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Log:     LogConfig{Level: defaultLogLevel},
		Loader:  LoaderConfig{MaxLineBytes: defaultMaxLineBytes},
		Stats:   StatsConfig{Enabled: true, Base: 10, Steps: 10},
	}
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	if c.Loader.MaxLineBytes <= 0 {
		c.Loader.MaxLineBytes = defaultMaxLineBytes
	}
	if c.Stats.Base < 2 {
		c.Stats.Base = 10
	}
	if c.Stats.Steps < 1 {
		c.Stats.Steps = 10
	}
	if f := c.Log.File; f != nil {
		if f.MaxSizeMB <= 0 {
			f.MaxSizeMB = 10
		}
		if f.MaxBackups <= 0 {
			f.MaxBackups = 3
		}
		if f.MaxAgeDays <= 0 {
			f.MaxAgeDays = 28
		}
	}
}

// Validate checks values that have no sensible default
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	if c.Log.File != nil && c.Log.File.Path == "" {
		return fmt.Errorf("config: log.file.path is required when log.file is set")
	}
	return nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Log level: %s", c.Log.Level)
	if c.Log.File != nil {
		summary += fmt.Sprintf(" (file: %s)", c.Log.File.Path)
	}
	summary += fmt.Sprintf(", max metadata line: %d bytes, stats: %v", c.Loader.MaxLineBytes, c.Stats.Enabled)
	return summary
}
