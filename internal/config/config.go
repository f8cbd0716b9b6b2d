// Package config holds the settings of the jslc front end.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the front end configuration, read from YAML
type Config struct {
	Strict      bool   `yaml:"strict"`       // Report unterminated block comments and lone '|'
	Format      string `yaml:"format"`       // Token dump format: text or yaml
	Color       bool   `yaml:"color"`        // Colour the text dump
	LogLevel    string `yaml:"log_level"`    // logrus level name
	HistoryFile string `yaml:"history_file"` // REPL history, empty disables it
}

// Defaults returns the configuration used when no file is given
func Defaults() *Config {
	return &Config{
		Strict:      false,
		Format:      "text",
		Color:       true,
		LogLevel:    "warning",
		HistoryFile: filepath.Join(os.TempDir(), ".jslc_history"),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated fields
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "yaml":
	default:
		return fmt.Errorf("invalid format %q: must be text or yaml", c.Format)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
