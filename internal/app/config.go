package app

import (
	"clientctl/internal/config"
	"clientctl/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// ConfigPath replaces the layered config files when set
	ConfigPath string

	// Debug settings
	Debug bool

	// Loaded clientctl configuration
	ClientctlConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(configPath string, debug bool) *Config {
	return &Config{
		ConfigPath: configPath,
		Debug:      debug,
	}
}

// logLevel is the configured level, forced to debug by the flag.
func (c *Config) logLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	if c.ClientctlConfig == nil {
		return logging.LevelInfo
	}
	return logging.ParseLevel(c.ClientctlConfig.Logging.Level)
}
