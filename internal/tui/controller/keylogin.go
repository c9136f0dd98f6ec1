package controller

import (
	"strings"

	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgLogin drives the sign-in form. Keys are ignored while a
// sign-in request is in flight.
func handleKeyMsgLogin(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	l := &m.Login
	if l.Submitting {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m, l.FocusNext()
	case "shift+tab", "up":
		return m, l.FocusPrev()
	case "enter":
		if l.Focus == model.LoginFieldEmail {
			return m, l.FocusNext()
		}
		return submitLogin(m)
	}

	var cmd tea.Cmd
	switch l.Focus {
	case model.LoginFieldEmail:
		l.Email, cmd = l.Email.Update(keyMsg)
	case model.LoginFieldPassword:
		l.Password, cmd = l.Password.Update(keyMsg)
	default:
		return m, nil
	}
	l.Err = ""
	return m, cmd
}

func submitLogin(m *model.Model) (*model.Model, tea.Cmd) {
	l := &m.Login
	email := strings.TrimSpace(l.Email.Value())
	password := l.Password.Value()
	if email == "" || password == "" {
		l.Err = "Email and password are required"
		return m, nil
	}

	l.Err = ""
	l.Submitting = true
	LogInfo(sessionSubsystem, "Signing in as %s", email)
	return m, model.SignInCmd(m.Auth, m.RequestTimeout, email, password)
}
