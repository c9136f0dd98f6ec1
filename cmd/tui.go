package cmd

import (
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive client manager",
		Long: `Opens the interactive client manager. This is also what clientctl does
when run without a subcommand.

Keys (press ? inside the manager for the full list):
  a add, e/enter edit, d delete, t toggle status, y copy email,
  / search, r reload, L activity log, ctrl+o sign out, q quit.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
	c.Flags().BoolVar(&tuiDebugMode, "debug-tui", false, "Show debug entries in the activity log")
	return c
}

// runTUI is shared by the root command and 'clientctl tui'.
func runTUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication(tuiDebugMode)
	if err != nil {
		return err
	}
	return application.RunTUI(commandContext(cmd))
}
