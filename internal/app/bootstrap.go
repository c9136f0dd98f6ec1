package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"clientctl/internal/auth"
	"clientctl/internal/config"
	"clientctl/pkg/logging"
)

// ErrNotSignedIn is returned by CLI commands that need a stored session.
var ErrNotSignedIn = errors.New("not signed in, run 'clientctl login' first")

// Application is the main application structure that bootstraps and runs clientctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, sets up CLI logging and wires services.
func NewApplication(cfg *Config) (*Application, error) {
	// CLI logging until a mode decides otherwise; the level is refined once
	// the config is known.
	logging.InitForCLI(cfg.logLevel(), "text", os.Stderr)

	clientctlCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load clientctl configuration")
		return nil, fmt.Errorf("failed to load clientctl configuration: %w", err)
	}
	if err := clientctlCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ClientctlConfig = &clientctlCfg

	logging.InitForCLI(cfg.logLevel(), clientctlCfg.Logging.Format, os.Stderr)
	logging.Debug("Bootstrap", "API at %s, auth at %s", clientctlCfg.API.BaseURL, clientctlCfg.Auth.URL)

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the wired collaborators to CLI commands.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the loaded configuration.
func (a *Application) Config() *Config {
	return a.config
}

// RunTUI executes the interactive terminal UI until the user quits.
func (a *Application) RunTUI(ctx context.Context) error {
	defer a.services.Close()
	return runTUIMode(ctx, a.config, a.services)
}

// RequireSession restores the stored session for a one-shot CLI command.
func (a *Application) RequireSession(ctx context.Context) (*auth.Session, error) {
	session, err := a.services.Auth.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotSignedIn
	}
	return session, nil
}
