package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".fgconfig.yaml"

	// Default configuration values
	DefaultRequestDelay = 1000 * time.Millisecond
	DefaultSubmitDelay  = 1500 * time.Millisecond
	DefaultName         = "John Doe"
	DefaultRegNo        = "REG12347"
	DefaultEmail        = "john@example.com"
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
)

// Config represents user configuration from .fgconfig.yaml.
// This file is user-managed and never written by fg.
type Config struct {
	// RequestDelay is the simulated latency of the request stage.
	RequestDelay time.Duration `yaml:"request_delay"`

	// SubmitDelay is the simulated latency of each webhook attempt.
	SubmitDelay time.Duration `yaml:"submit_delay"`

	// Name, RegNo and Email are the identity used when flags are omitted.
	Name  string `yaml:"name"`
	RegNo string `yaml:"reg_no"`
	Email string `yaml:"email"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		RequestDelay: DefaultRequestDelay,
		SubmitDelay:  DefaultSubmitDelay,
		Name:         DefaultName,
		RegNo:        DefaultRegNo,
		Email:        DefaultEmail,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
	}
}

// LoadConfig loads .fgconfig.yaml from the storage root if it exists,
// otherwise returns defaults.
func (s *Storage) LoadConfig() (*Config, error) {
	return LoadConfigFile(s.ConfigPath())
}

// LoadConfigFile loads a config file, merging it over defaults.
// A missing file is not an error.
func LoadConfigFile(path string) (*Config, error) {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Parse YAML and merge with defaults
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if cfg.RequestDelay < 0 || cfg.SubmitDelay < 0 {
		return nil, fmt.Errorf("invalid %s: delays must not be negative", name)
	}

	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}
