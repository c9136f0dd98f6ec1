package controller

import (
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the client manager.
func NewProgram(cfg model.TUIConfig) *tea.Program {
	m := model.InitialModel(cfg)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen())
}
