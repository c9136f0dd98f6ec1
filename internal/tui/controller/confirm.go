package controller

import (
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgConfirmDelete answers the delete confirmation. Cancelling has
// no side effect.
func handleKeyMsgConfirmDelete(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y", "Y", "enter":
		target := m.PendingDelete
		m.PendingDelete = nil
		m.CurrentAppMode = model.ModeList
		if target == nil {
			return m, nil
		}
		m.IsLoading = true
		LogInfo(clientsSubsystem, "Deleting client %d", target.ID)
		return m, model.DeleteClientCmd(m.Service, m.RequestTimeout, target.ID)
	case "n", "N", "esc":
		m.PendingDelete = nil
		m.CurrentAppMode = model.ModeList
		return m, nil
	}
	return m, nil
}
