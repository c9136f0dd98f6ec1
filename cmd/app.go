package cmd

import (
	"context"
	"fmt"

	"clientctl/internal/app"

	"github.com/spf13/cobra"
)

// newApplication loads configuration and wires services for a command.
func newApplication(debug bool) (*app.Application, error) {
	application, err := app.NewApplication(app.NewConfig(configPath, debug))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
