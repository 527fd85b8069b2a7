// Package config loads the archive configuration from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRoot = "~/Documents/interviews"
	RootEnv     = "INTERVIEW_ROOT"
	ConfigEnv   = "INTERVIEW_CONFIG"
)

// Config represents the application configuration
type Config struct {
	Root     string     `yaml:"root"`
	Editor   string     `yaml:"editor"`
	LogLevel slog.Level `yaml:"log_level"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.LogLevel, validation.Min(slog.LevelDebug), validation.Max(slog.LevelError)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values
func NewDefaultConfig() *Config {
	return &Config{
		Root:     DefaultRoot,
		LogLevel: slog.LevelWarn,
	}
}

// DefaultPath returns the config file location under the XDG config directory
func DefaultPath() string {
	if env := os.Getenv(ConfigEnv); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "interview", "config.yaml")
}

// Load reads filename into cfg with environment variable expansion.
// A missing file leaves cfg untouched. INTERVIEW_ROOT overrides the root.
func Load(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", filename, err)
		}
	}

	if env := os.Getenv(RootEnv); env != "" {
		cfg.Root = env
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
