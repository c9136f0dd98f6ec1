package model

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	LoginFieldEmail = iota
	LoginFieldPassword
	LoginFieldSubmit

	loginFieldCount
)

// LoginState is the sign-in form shown while the session gate is closed.
type LoginState struct {
	Email      textinput.Model
	Password   textinput.Model
	Focus      int
	Err        string
	Submitting bool
}

// NewLoginState returns an empty sign-in form focused on the email field.
func NewLoginState() LoginState {
	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.CharLimit = 254
	email.Width = 32

	password := textinput.New()
	password.Prompt = ""
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 128
	password.Width = 32

	l := LoginState{Email: email, Password: password}
	l.SetFocus(LoginFieldEmail)
	return l
}

// SetFocus moves focus to field, wrapping around.
func (l *LoginState) SetFocus(field int) tea.Cmd {
	field = ((field % loginFieldCount) + loginFieldCount) % loginFieldCount
	l.Focus = field

	l.Email.Blur()
	l.Password.Blur()
	switch field {
	case LoginFieldEmail:
		return l.Email.Focus()
	case LoginFieldPassword:
		return l.Password.Focus()
	}
	return nil
}

// FocusNext moves focus forward.
func (l *LoginState) FocusNext() tea.Cmd {
	return l.SetFocus(l.Focus + 1)
}

// FocusPrev moves focus backward.
func (l *LoginState) FocusPrev() tea.Cmd {
	return l.SetFocus(l.Focus - 1)
}
