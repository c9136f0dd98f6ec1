package config

import (
	"path/filepath"
	"time"
)

const (
	DefaultAPIBaseURL     = "https://crud-app-backend-n0wq.onrender.com/api"
	DefaultRequestTimeout = 15 * time.Second
	defaultSessionFile    = "session.yaml"
)

// GetDefaultConfig returns the configuration used when no file or
// environment variable overrides a setting. The auth URL has no sensible
// default and must be configured.
func GetDefaultConfig() Config {
	sessionFile := ""
	if dir, err := GetUserConfigDir(); err == nil {
		sessionFile = filepath.Join(dir, defaultSessionFile)
	}

	return Config{
		API: APIConfig{
			BaseURL:        DefaultAPIBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Auth: AuthConfig{
			SessionFile: sessionFile,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
