package controller

import (
	"strings"

	"clientctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const keySubsystem = "KeyHandler"

// handleKeyMsgGlobal processes keys on the record list and the read-only
// overlays (help and activity log).
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.CurrentAppMode == model.ModeLogOverlay {
		switch keyMsg.String() {
		case "L", "esc":
			m.CurrentAppMode = model.ModeList
			return m, nil
		case "y":
			if err := m.Clipboard(strings.Join(m.ActivityLog, "\n")); err != nil {
				LogError(keySubsystem, err, "Failed to copy logs")
				return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, model.StatusDisplayDuration)
			}
			return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, model.StatusDisplayDuration)
		case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		default:
			return m, nil
		}
	}

	if m.CurrentAppMode == model.ModeHelpOverlay {
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = model.ModeList
			return m, nil
		}
		if key.Matches(keyMsg, m.Keys.Quit) {
			return quit(m)
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)

	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		if m.Cursor < len(m.VisibleClients())-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Search):
		m.CurrentAppMode = model.ModeSearch
		return m, m.SearchInput.Focus()

	case key.Matches(keyMsg, m.Keys.Esc):
		if m.SearchInput.Value() != "" {
			m.SearchInput.SetValue("")
			m.ClampCursor()
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Refresh):
		return m, startFetch(m)

	case key.Matches(keyMsg, m.Keys.Add):
		return m, m.OpenForm(model.ModeAdd, nil)

	case key.Matches(keyMsg, m.Keys.SignOut):
		LogInfo(keySubsystem, "Signing out %s", m.UserEmail())
		return m, model.SignOutCmd(m.Auth, m.RequestTimeout)
	}

	// The remaining bindings act on the selected row.
	selected, ok := m.SelectedClient()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Edit):
		return m, m.OpenForm(model.ModeEdit, &selected)

	case key.Matches(keyMsg, m.Keys.Delete):
		m.PendingDelete = &selected
		m.CurrentAppMode = model.ModeConfirmDelete
		return m, nil

	case key.Matches(keyMsg, m.Keys.Toggle):
		LogDebug(m, keySubsystem, "Toggling status of client %d", selected.ID)
		return m, model.ToggleStatusCmd(m.Service, m.RequestTimeout, selected)

	case key.Matches(keyMsg, m.Keys.CopyEmail):
		if err := m.Clipboard(selected.Email); err != nil {
			LogError(keySubsystem, err, "Failed to copy email")
			return m, m.SetStatusMessage("Copy email failed", model.StatusBarError, model.StatusDisplayDuration)
		}
		return m, m.SetStatusMessage("Copied "+selected.Email, model.StatusBarSuccess, model.StatusDisplayDuration)
	}

	return m, nil
}

// startFetch reloads the collection and raises the loading flag. It does
// nothing while signed out.
func startFetch(m *model.Model) tea.Cmd {
	cmd := m.FetchClientsCmd()
	if cmd == nil {
		return nil
	}
	m.IsLoading = true
	return cmd
}
