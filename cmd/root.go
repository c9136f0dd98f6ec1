package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath replaces the user and project config files when set.
	configPath string

	// tuiDebugMode enables debug logging in the activity log.
	tuiDebugMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clientctl",
	Short: "Manage client records from your terminal",
	Long: `clientctl is a terminal client for a hosted client-records service.

Run without a subcommand it opens the interactive manager: sign in, then
browse, search, add, edit, delete and activate client records. The
subcommands cover scripting and AI assistant access to the same records.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed requests, missing session)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "clientctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/clientctl/config.yaml, then ./.clientctl/config.yaml)")
	rootCmd.Flags().BoolVar(&tuiDebugMode, "debug-tui", false, "Show debug entries in the activity log")

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newMCPCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
