package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"clientctl/internal/cli"
	"clientctl/internal/mcpserver"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTerminal(t *testing.T, isTTY bool, password string, err error) {
	t.Helper()
	origIs, origRead := stdinIsTerminal, readTerminalPassword
	t.Cleanup(func() {
		stdinIsTerminal = origIs
		readTerminalPassword = origRead
	})
	stdinIsTerminal = func() bool { return isTTY }
	readTerminalPassword = func() ([]byte, error) { return []byte(password), err }
}

func TestRootFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("debug-tui"))
	assert.NotNil(t, rootCmd.RunE, "root command opens the TUI")
}

func TestVersionCommand(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()
	rootCmd.Version = "1.4.0"

	var buf bytes.Buffer
	c := newVersionCmd()
	c.SetOut(&buf)
	c.Run(c, nil)

	assert.Equal(t, "clientctl version 1.4.0\n", buf.String())
}

func TestListOptions_Format(t *testing.T) {
	tests := []struct {
		name    string
		opts    listOptions
		want    cli.OutputFormat
		wantErr bool
	}{
		{name: "default table", opts: listOptions{output: "table"}, want: cli.OutputFormatTable},
		{name: "yaml", opts: listOptions{output: "yaml"}, want: cli.OutputFormatYAML},
		{name: "json flag wins", opts: listOptions{output: "yaml", json: true}, want: cli.OutputFormatJSON},
		{name: "unknown", opts: listOptions{output: "csv"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opts.format()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListCommandFlags(t *testing.T) {
	c := newListCmd()
	for _, name := range []string{"search", "json", "output", "quiet"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
}

func TestReadPassword_FromStdin(t *testing.T) {
	withTerminal(t, false, "", nil)

	c := &cobra.Command{}
	c.SetIn(strings.NewReader("s3cret\nignored\n"))
	got, err := readPassword(c)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestReadPassword_StdinWithoutNewline(t *testing.T) {
	withTerminal(t, false, "", nil)

	c := &cobra.Command{}
	c.SetIn(strings.NewReader("s3cret\r"))
	got, err := readPassword(c)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)
}

func TestReadPassword_Terminal(t *testing.T) {
	withTerminal(t, true, "typed", nil)

	var stderr bytes.Buffer
	c := &cobra.Command{}
	c.SetErr(&stderr)
	got, err := readPassword(c)
	require.NoError(t, err)
	assert.Equal(t, "typed", got)
	assert.Contains(t, stderr.String(), "Password: ")
}

func TestReadPassword_TerminalError(t *testing.T) {
	withTerminal(t, true, "", errors.New("no tty"))

	c := &cobra.Command{}
	c.SetErr(&bytes.Buffer{})
	_, err := readPassword(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read password")
}

func TestRunLogin_RequiresPassword(t *testing.T) {
	withTerminal(t, false, "", nil)

	c := &cobra.Command{}
	c.SetIn(strings.NewReader(""))
	err := runLogin(c, "me@x.com")
	require.Error(t, err)
	assert.Equal(t, "password is required", err.Error())
}

func TestRunLogin_RequiresEmail(t *testing.T) {
	err := runLogin(&cobra.Command{}, "  ")
	require.Error(t, err)
	assert.Equal(t, "email is required", err.Error())
}

func TestMCPCommandFlags(t *testing.T) {
	c := newMCPCmd()
	transport := c.Flags().Lookup("transport")
	require.NotNil(t, transport)
	assert.Equal(t, mcpserver.TransportStdio, transport.DefValue)
	assert.Equal(t, "8090", c.Flags().Lookup("port").DefValue)
}
