package view

import (
	"fmt"
	"strings"

	"clientctl/internal/tui/components"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const (
	helpColumnSeparator = "  "
	helpColumnGap       = "   "
)

// placeOverlay centers content between the error banner, when one is
// showing, and the status bar.
func placeOverlay(m *model.Model, content string) string {
	statusBar := renderStatusBar(m, m.Width)
	banner := components.ErrorBanner(m.ErrorMessage, m.Width)

	height := m.Height - lipgloss.Height(statusBar)
	if banner != "" {
		height -= lipgloss.Height(banner)
	}
	canvas := lipgloss.Place(m.Width, max(height, 0), lipgloss.Center, lipgloss.Center, content)

	if banner == "" {
		return lipgloss.JoinVertical(lipgloss.Left, canvas, statusBar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, banner, canvas, statusBar)
}

func renderHelpOverlay(m *model.Model) string {
	title := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	body := renderKeyColumns(m.Keys.FullHelp())
	footer := design.DimStyle.Render("Form: " + model.FormHelp())

	container := design.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body, "", footer))
	return placeOverlay(m, container)
}

// renderKeyColumns lays out key bindings as columns of "key  description"
// pairs, aligning keys within each column.
func renderKeyColumns(columns [][]key.Binding) string {
	if len(columns) == 0 {
		return "No keybindings configured."
	}

	rendered := make([]string, 0, len(columns))
	for _, column := range columns {
		keyWidth := 0
		for _, b := range column {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}

		lines := make([]string, 0, len(column))
		for _, b := range column {
			k := b.Help().Key
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(k))
			lines = append(lines, design.TextStyle.Bold(true).Render(k)+pad+helpColumnSeparator+design.TextSecondaryStyle.Render(b.Help().Desc))
		}
		rendered = append(rendered, strings.Join(lines, "\n"))
	}

	parts := make([]string, 0, len(rendered)*2)
	for i, col := range rendered {
		if i > 0 {
			parts = append(parts, helpColumnGap)
		}
		parts = append(parts, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderConfirmDelete(m *model.Model) string {
	target := m.PendingDelete
	if target == nil {
		return renderList(m)
	}

	who := target.Name
	if target.Email != "" {
		who = fmt.Sprintf("%s (%s)", target.Name, target.Email)
	}
	modal := components.NewModal("Delete Client").
		WithType(components.ModalDanger).
		WithContent(fmt.Sprintf("Delete %s?\nThis cannot be undone.", who)).
		WithFooter("y/enter delete • n/esc cancel")
	return placeOverlay(m, modal.Render())
}
