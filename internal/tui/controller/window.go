package controller

import (
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions and
// resizes the log overlay viewport to 80% x 70% of the screen.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	// Border and padding of the overlay take 4 columns and 4 rows, the title one more row.
	m.LogViewport.Width = max(int(float64(msg.Width)*0.8)-4, 10)
	m.LogViewport.Height = max(int(float64(msg.Height)*0.7)-5, 3)
	return m, nil
}
