package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"clientctl/internal/api/tools"
	"clientctl/internal/mcpserver"

	"github.com/spf13/cobra"
)

type mcpOptions struct {
	transport string
	host      string
	port      int
}

func newMCPCmd() *cobra.Command {
	opts := &mcpOptions{}
	c := &cobra.Command{
		Use:   "mcp",
		Short: "Serve client records as MCP tools",
		Long: `Serves the client records to AI assistants over the Model Context Protocol,
using the stored session.

Tools: client_list, client_get, client_create, client_update,
client_toggle and client_delete. Deleting requires confirm=true.

By default the server speaks MCP on stdio, so it can be registered directly
as a command in an assistant's MCP configuration. Use --transport sse to
listen on HTTP instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(cmd, opts)
		},
	}
	c.Flags().StringVar(&opts.transport, "transport", mcpserver.TransportStdio, "Transport to serve on (stdio, sse)")
	c.Flags().StringVar(&opts.host, "host", "localhost", "Host for the sse transport")
	c.Flags().IntVar(&opts.port, "port", 8090, "Port for the sse transport")
	return c
}

func runMCP(cmd *cobra.Command, opts *mcpOptions) error {
	application, err := newApplication(false)
	if err != nil {
		return err
	}
	defer application.Services().Close()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := application.RequireSession(ctx); err != nil {
		return err
	}

	timeout := application.Config().ClientctlConfig.API.RequestTimeout
	clientTools := tools.NewClientTools(application.Services().API, timeout)

	srv, err := mcpserver.New(mcpserver.Config{
		Transport: opts.transport,
		Host:      opts.host,
		Port:      opts.port,
		Version:   rootCmd.Version,
	}, clientTools.ServerTools())
	if err != nil {
		return err
	}

	return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}
