package model

import (
	"context"
	"time"

	"clientctl/internal/api"
	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// FetchClientsCmd loads the whole collection. It returns nil while signed
// out so a stray refresh never hits the backend anonymously.
func (m *Model) FetchClientsCmd() tea.Cmd {
	if !m.Authenticated() || m.Service == nil {
		return nil
	}
	return FetchClientsCmd(m.Service, m.RequestTimeout)
}

// FetchClientsCmd creates a command that lists all clients.
func FetchClientsCmd(svc api.ClientService, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		list, err := svc.List(ctx)
		return ClientsFetchedMsg{Clients: list, Err: err}
	}
}

// SubmitClientCmd creates or updates a client depending on mode.
func SubmitClientCmd(svc api.ClientService, timeout time.Duration, mode FormMode, id int64, payload clients.Payload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		var (
			saved clients.Client
			err   error
		)
		if mode == ModeEdit {
			saved, err = svc.Update(ctx, id, payload)
		} else {
			saved, err = svc.Create(ctx, payload)
		}
		return ClientSavedMsg{Mode: mode, Client: saved, Err: err}
	}
}

// DeleteClientCmd removes a client.
func DeleteClientCmd(svc api.ClientService, timeout time.Duration, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		return ClientDeletedMsg{ID: id, Err: svc.Delete(ctx, id)}
	}
}

// ToggleStatusCmd sends the full record back with isactive inverted.
func ToggleStatusCmd(svc api.ClientService, timeout time.Duration, c clients.Client) tea.Cmd {
	payload := c.Payload()
	payload.IsActive = !c.IsActive

	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		updated, err := svc.Update(ctx, c.ID, payload)
		return StatusToggledMsg{ID: c.ID, Client: updated, Err: err}
	}
}

// RestoreSessionCmd loads the stored session. The provider reports the
// outcome as an INITIAL_SESSION event; the message only carries the error.
func RestoreSessionCmd(p SessionProvider, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		_, err := p.Restore(ctx)
		return SessionRestoreResultMsg{Err: err}
	}
}

// SignInCmd exchanges credentials for a session.
func SignInCmd(p SessionProvider, timeout time.Duration, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		_, err := p.SignIn(ctx, email, password)
		return SignInResultMsg{Err: err}
	}
}

// SignOutCmd ends the session.
func SignOutCmd(p SessionProvider, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()

		return SignOutResultMsg{Err: p.SignOut(ctx)}
	}
}

// ListenForAuthEventsCmd waits for the next session event. It must be
// re-issued after every AuthEventMsg.
func ListenForAuthEventsCmd(ch <-chan auth.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return AuthChannelClosedMsg{}
		}
		return AuthEventMsg{Event: ev}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It must be re-issued
// after every NewLogEntryMsg.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
