package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPaths points the user/project layers and the home directory at tempDir
// for the duration of the test.
func withPaths(t *testing.T, tempDir string) (userPath, projectPath string) {
	t.Helper()

	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	originalHome := osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
		osUserHomeDir = originalHome
	})

	userPath = filepath.Join(tempDir, "user", configFileName)
	projectPath = filepath.Join(tempDir, "project", configFileName)
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
	osUserHomeDir = func() (string, error) { return tempDir, nil }
	return userPath, projectPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	withPaths(t, tempDir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, filepath.Join(tempDir, userConfigDir, "session.yaml"), cfg.Auth.SessionFile)
	assert.Empty(t, cfg.Auth.URL)
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	userPath, projectPath := withPaths(t, tempDir)

	writeFile(t, userPath, `
api:
  baseURL: https://user.example.com/api
  requestTimeout: 5s
auth:
  url: https://auth.example.com/auth/v1
  apiKey: user-key
`)
	writeFile(t, projectPath, `
api:
  baseURL: https://project.example.com/api
logging:
  level: debug
`)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://project.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "https://auth.example.com/auth/v1", cfg.Auth.URL)
	assert.Equal(t, "user-key", cfg.Auth.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfig_ExplicitFileSkipsLayers(t *testing.T) {
	tempDir := t.TempDir()
	userPath, _ := withPaths(t, tempDir)
	writeFile(t, userPath, "auth:\n  apiKey: from-user\n")

	explicit := filepath.Join(tempDir, "custom.yaml")
	writeFile(t, explicit, "auth:\n  url: https://explicit.example.com\n  sessionFile: ~/sessions/a.yaml\n")

	cfg, err := LoadConfig(explicit)
	require.NoError(t, err)

	assert.Equal(t, "https://explicit.example.com", cfg.Auth.URL)
	assert.Empty(t, cfg.Auth.APIKey)
	assert.Equal(t, filepath.Join(tempDir, "sessions", "a.yaml"), cfg.Auth.SessionFile)
}

func TestLoadConfig_EnvOverridesFiles(t *testing.T) {
	tempDir := t.TempDir()
	userPath, _ := withPaths(t, tempDir)
	writeFile(t, userPath, "api:\n  baseURL: https://file.example.com/api\n")

	t.Setenv("CLIENTCTL_API_URL", "https://env.example.com/api")
	t.Setenv("CLIENTCTL_REQUEST_TIMEOUT", "42s")
	t.Setenv("CLIENTCTL_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 42*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfig_BadEnvValue(t *testing.T) {
	withPaths(t, t.TempDir())
	t.Setenv("CLIENTCTL_REQUEST_TIMEOUT", "soon")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	_, projectPath := withPaths(t, tempDir)
	writeFile(t, projectPath, "api: [unclosed")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), projectPath)
}

func TestConfig_Validate(t *testing.T) {
	valid := GetDefaultConfig()
	valid.Auth.URL = "https://auth.example.com/auth/v1"

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing auth url", mutate: func(c *Config) { c.Auth.URL = "" }, wantErr: "auth.url is not set"},
		{name: "bad scheme", mutate: func(c *Config) { c.API.BaseURL = "ftp://x" }, wantErr: "must use http or https"},
		{name: "no host", mutate: func(c *Config) { c.API.BaseURL = "https://" }, wantErr: "has no host"},
		{name: "zero timeout", mutate: func(c *Config) { c.API.RequestTimeout = 0 }, wantErr: "requestTimeout must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
