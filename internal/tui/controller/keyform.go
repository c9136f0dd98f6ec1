package controller

import (
	"errors"
	"strings"

	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const formSubsystem = "Form"

var errNoTarget = errors.New("no client selected")

// handleKeyMsgForm drives the add/edit modal.
func handleKeyMsgForm(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	f := &m.Form

	switch keyMsg.String() {
	case "esc":
		m.CloseForm()
		return m, nil
	case "ctrl+s":
		return submitForm(m)
	case "tab", "down":
		return m, f.FocusNext()
	case "shift+tab", "up":
		return m, f.FocusPrev()
	case "enter":
		if f.Focus == model.FieldSubmit {
			return submitForm(m)
		}
		return m, f.FocusNext()
	}

	switch f.Focus {
	case model.FieldStatus:
		switch keyMsg.String() {
		case "left", "right", "h", "l", " ":
			f.ToggleStatus()
		}
		return m, nil
	case model.FieldSubmit:
		if keyMsg.String() == " " {
			return submitForm(m)
		}
		return m, nil
	}

	in := f.FocusedInput()
	if in == nil {
		return m, nil
	}
	if f.Focus == model.FieldRate && !rateKeyAllowed(keyMsg) {
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(keyMsg)
	f.Err = ""
	return m, cmd
}

// rateKeyAllowed keeps the rate input numeric. Editing and cursor keys pass.
func rateKeyAllowed(keyMsg tea.KeyMsg) bool {
	if keyMsg.Type != tea.KeyRunes {
		return keyMsg.Type != tea.KeySpace
	}
	for _, r := range keyMsg.Runes {
		if !strings.ContainsRune("0123456789.-", r) {
			return false
		}
	}
	return true
}

// submitForm validates the modal and dispatches the create or update. A
// validation failure keeps the modal open; otherwise it closes immediately
// and the outcome arrives as a ClientSavedMsg.
func submitForm(m *model.Model) (*model.Model, tea.Cmd) {
	values := m.Form.Values()
	if err := values.Validate(); err != nil {
		m.Form.Err = err.Error()
		return m, nil
	}
	payload, err := values.Payload()
	if err != nil {
		m.Form.Err = err.Error()
		return m, nil
	}

	mode, id := m.Form.Mode, m.Form.TargetID
	if mode == model.ModeEdit && id == 0 {
		m.Form.Err = errNoTarget.Error()
		return m, nil
	}

	m.CloseForm()
	m.IsLoading = true
	LogDebug(m, formSubsystem, "Submitting client (mode=%d id=%d)", mode, id)
	return m, model.SubmitClientCmd(m.Service, m.RequestTimeout, mode, id, payload)
}
