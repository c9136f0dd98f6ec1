package controller

import (
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgSearch edits the search term. Enter keeps the filter, esc
// clears it. Both return to the list.
func handleKeyMsgSearch(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "enter":
		m.SearchInput.Blur()
		m.CurrentAppMode = model.ModeList
		return m, nil
	case "esc":
		m.SearchInput.SetValue("")
		m.SearchInput.Blur()
		m.CurrentAppMode = model.ModeList
		m.ClampCursor()
		return m, nil
	case "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "down":
		if m.Cursor < len(m.VisibleClients())-1 {
			m.Cursor++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(keyMsg)
	m.ClampCursor()
	return m, cmd
}
