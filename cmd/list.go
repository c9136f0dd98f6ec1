package cmd

import (
	"fmt"

	"clientctl/internal/api"
	"clientctl/internal/cli"
	"clientctl/internal/clients"

	"github.com/spf13/cobra"
)

type listOptions struct {
	search string
	json   bool
	output string
	quiet  bool
}

func newListCmd() *cobra.Command {
	opts := &listOptions{}
	c := &cobra.Command{
		Use:   "list",
		Short: "List client records",
		Long: `Lists client records using the stored session.

The search term matches name, email or job, ignoring case. Sign in first
with 'clientctl login'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	c.Flags().StringVarP(&opts.search, "search", "s", "", "Only show records whose name, email or job contain this term")
	c.Flags().BoolVar(&opts.json, "json", false, "Shorthand for --output json")
	c.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")
	c.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress non-essential output")
	return c
}

func (o *listOptions) format() (cli.OutputFormat, error) {
	if o.json {
		return cli.OutputFormatJSON, nil
	}
	return cli.ParseOutputFormat(o.output)
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	format, err := opts.format()
	if err != nil {
		return err
	}

	application, err := newApplication(false)
	if err != nil {
		return err
	}
	defer application.Services().Close()

	ctx := commandContext(cmd)
	if _, err := application.RequireSession(ctx); err != nil {
		return err
	}

	all, err := application.Services().API.List(ctx)
	if err != nil {
		if api.IsUnauthorized(err) {
			return fmt.Errorf("error fetching clients: %w (session rejected, run 'clientctl login')", err)
		}
		return fmt.Errorf("error fetching clients: %w", err)
	}

	printer := cli.NewPrinter(format, opts.quiet)
	printer.Out = cmd.OutOrStdout()
	return printer.PrintClients(clients.Filter(all, opts.search))
}
