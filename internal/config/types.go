package config

import (
	"time"
)

// Config is the top-level configuration structure for clientctl.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig points at the remote client-records backend.
type APIConfig struct {
	BaseURL        string        `yaml:"baseURL,omitempty" env:"API_URL"`                // Collection root, "/clients" is appended
	RequestTimeout time.Duration `yaml:"requestTimeout,omitempty" env:"REQUEST_TIMEOUT"` // Per-request timeout
}

// AuthConfig describes the hosted authentication provider.
type AuthConfig struct {
	URL         string `yaml:"url,omitempty" env:"AUTH_URL"`             // Token service root, e.g. https://<project>.supabase.co/auth/v1
	APIKey      string `yaml:"apiKey,omitempty" env:"AUTH_API_KEY"`      // Public (anon) key sent as the apikey header
	SessionFile string `yaml:"sessionFile,omitempty" env:"SESSION_FILE"` // Where the refresh token is kept between runs
}

// LoggingConfig controls pkg/logging.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty" env:"LOG_LEVEL"`   // debug, info, warn, error
	Format string `yaml:"format,omitempty" env:"LOG_FORMAT"` // text or json (CLI mode only)
}
