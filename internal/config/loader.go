package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/clientctl"
	projectConfigDir = ".clientctl"
	configFileName   = "config.yaml"
	envPrefix        = "CLIENTCTL_"
)

// LoadConfig loads the clientctl configuration by layering default, user,
// project and environment settings. When explicitPath is set it replaces the
// user and project files.
func LoadConfig(explicitPath string) (Config, error) {
	config := GetDefaultConfig()

	if explicitPath != "" {
		fileConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		config = mergeConfigs(config, fileConfig)
	} else {
		for _, pathFn := range []func() (string, error){getUserConfigPath, getProjectConfigPath} {
			path, err := pathFn()
			if err != nil {
				// Optional layer; skip when the location can't be determined.
				continue
			}
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				continue
			}
			fileConfig, err := loadConfigFromFile(path)
			if err != nil {
				return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			config = mergeConfigs(config, fileConfig)
		}
	}

	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}

	config.Auth.SessionFile = expandHome(config.Auth.SessionFile)
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// applyEnv overlays CLIENTCTL_* environment variables. Unset variables leave
// the field untouched.
func applyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only non-zero
// overlay fields win.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.RequestTimeout > 0 {
		merged.API.RequestTimeout = overlay.API.RequestTimeout
	}
	if overlay.Auth.URL != "" {
		merged.Auth.URL = overlay.Auth.URL
	}
	if overlay.Auth.APIKey != "" {
		merged.Auth.APIKey = overlay.Auth.APIKey
	}
	if overlay.Auth.SessionFile != "" {
		merged.Auth.SessionFile = overlay.Auth.SessionFile
	}
	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Format != "" {
		merged.Logging.Format = overlay.Logging.Format
	}

	return merged
}

// Validate reports configuration that would make every request fail.
func (c Config) Validate() error {
	var errs []error
	if err := validateURL("api.baseURL", c.API.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("auth.url", c.Auth.URL); err != nil {
		errs = append(errs, err)
	}
	if c.API.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("api.requestTimeout must be positive, got %s", c.API.RequestTimeout))
	}
	return errors.Join(errs...)
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is not set", field)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", field, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", field, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %q", field, raw)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
