package controller

import (
	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const sessionSubsystem = "Session"

// handleAuthEventMsg moves the session gate. Entering the authenticated
// state from the login view loads the collection; a token refresh only swaps
// the session.
func handleAuthEventMsg(m *model.Model, msg model.AuthEventMsg) (*model.Model, tea.Cmd) {
	ev := msg.Event
	wasAuthenticated := m.Authenticated()
	LogDebug(m, sessionSubsystem, "Session event %s", ev.Type)

	switch ev.Type {
	case auth.EventInitialSession, auth.EventSignedIn:
		if ev.Session == nil {
			if !wasAuthenticated {
				return m, enterLogin(m)
			}
			return m, nil
		}
		m.Session = ev.Session
		if wasAuthenticated {
			return m, nil
		}
		enterApp(m)
		return m, startFetch(m)

	case auth.EventTokenRefreshed:
		if ev.Session != nil {
			m.Session = ev.Session
		}
		return m, nil

	case auth.EventSignedOut:
		m.Session = nil
		m.Clients = make([]clients.Client, 0)
		m.Cursor = 0
		m.PendingDelete = nil
		m.Form = model.FormState{}
		m.SearchInput.SetValue("")
		m.SearchInput.Blur()
		return m, enterLogin(m)
	}

	LogWarn(sessionSubsystem, "Ignoring unknown session event %q", ev.Type)
	return m, nil
}

func enterLogin(m *model.Model) tea.Cmd {
	m.Login = model.NewLoginState()
	m.IsLoading = false
	m.CurrentAppMode = model.ModeLogin
	return textinput.Blink
}

func enterApp(m *model.Model) {
	m.Login = model.NewLoginState()
	m.Login.Email.Blur()
	m.CurrentAppMode = model.ModeList
}

func handleSessionRestoreResultMsg(m *model.Model, msg model.SessionRestoreResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err == nil {
		return m, nil
	}
	LogError(sessionSubsystem, msg.Err, "Session restore failed")
	return m, m.SetError("Error restoring session: " + msg.Err.Error())
}

func handleSignInResultMsg(m *model.Model, msg model.SignInResultMsg) (*model.Model, tea.Cmd) {
	m.Login.Submitting = false
	if msg.Err != nil {
		LogWarn(sessionSubsystem, "Sign-in failed: %v", msg.Err)
		m.Login.Err = msg.Err.Error()
		m.Login.Password.SetValue("")
		return m, nil
	}
	// The SIGNED_IN event may not have been handled yet, so ask the provider.
	email := m.UserEmail()
	if s := m.Auth.Session(); s != nil {
		email = s.User.Email
	}
	return m, m.SetStatusMessage("Signed in as "+email, model.StatusBarSuccess, model.StatusDisplayDuration)
}

func handleSignOutResultMsg(m *model.Model, msg model.SignOutResultMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		// The local session is gone either way.
		LogWarn(sessionSubsystem, "Sign-out reported an error: %v", msg.Err)
	}
	return m, m.SetStatusMessage("Signed out", model.StatusBarInfo, model.StatusDisplayDuration)
}
