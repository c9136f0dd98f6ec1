package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"clientctl/pkg/logging"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// For mocking in tests
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
var readTerminalPassword = func() ([]byte, error) { return term.ReadPassword(int(os.Stdin.Fd())) }

func newLoginCmd() *cobra.Command {
	var email string
	c := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Long: `Signs in with email and password and stores the session for later
commands and the interactive manager.

The password is prompted for on a terminal, otherwise it is read from the
first line of stdin:

  echo "$PASSWORD" | clientctl login --email me@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, email)
		},
	}
	c.Flags().StringVarP(&email, "email", "e", "", "Account email")
	_ = c.MarkFlagRequired("email")
	return c
}

func runLogin(cmd *cobra.Command, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password is required")
	}

	application, err := newApplication(false)
	if err != nil {
		return err
	}
	defer application.Services().Close()

	session, err := application.Services().Auth.SignIn(commandContext(cmd), email, password)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", session.User.Email)
	return nil
}

// readPassword prompts on a terminal and reads a line from stdin otherwise.
func readPassword(cmd *cobra.Command) (string, error) {
	if stdinIsTerminal() {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := readTerminalPassword()
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE:  runLogout,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	application, err := newApplication(false)
	if err != nil {
		return err
	}
	defer application.Services().Close()

	ctx := commandContext(cmd)
	session, err := application.Services().Auth.Restore(ctx)
	if err != nil {
		// Still clear whatever is stored.
		logging.Warn("CLI", "Stored session could not be restored: %v", err)
	} else if session == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
		return nil
	}

	if err := application.Services().Auth.SignOut(ctx); err != nil {
		return fmt.Errorf("sign out failed: %w", err)
	}
	if session != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Signed out %s\n", session.User.Email)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	}
	return nil
}
