package app

import (
	"context"

	"clientctl/internal/tui/controller"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"
	"clientctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(lipgloss.HasDarkBackground())

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(config.logLevel())
	defer logging.CloseTUIChannel()

	// Subscribe before the model restores the session so INITIAL_SESSION is seen.
	events := services.Auth.Subscribe()

	p := controller.NewProgram(model.TUIConfig{
		DebugMode:      config.Debug,
		Service:        services.API,
		Auth:           services.Auth,
		AuthEvents:     events,
		LogChannel:     logChan,
		RequestTimeout: config.ClientctlConfig.API.RequestTimeout,
	})

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
