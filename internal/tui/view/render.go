package view

import (
	"fmt"

	"clientctl/internal/tui/components"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render(m.QuittingMessage)
	case model.ModeInitializing:
		return renderInitializing(m)
	case model.ModeLogin:
		return renderLogin(m)
	case model.ModeForm:
		return renderForm(m)
	case model.ModeConfirmDelete:
		return renderConfirmDelete(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderList(m)
	}
}

func renderInitializing(m *model.Model) string {
	text := m.Spinner.View() + " Restoring session..."
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render(text)
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, design.TextSecondaryStyle.Render(text))
}

// renderList is the application shell: navbar, error banner, record table
// and status bar.
func renderList(m *model.Model) string {
	navbar := components.NewNavbar(appTitle).
		WithUser(m.UserEmail()).
		WithWidth(m.Width)
	if m.CurrentAppMode == model.ModeSearch || m.SearchInput.Value() != "" {
		navbar.WithSearch(m.SearchInput.View())
	}
	if m.IsLoading {
		navbar.WithSpinner(m.Spinner.View())
	}
	navbarView := navbar.Render()

	parts := []string{navbarView}
	if banner := components.ErrorBanner(m.ErrorMessage, m.Width); banner != "" {
		parts = append(parts, banner)
	}

	statusBar := renderStatusBar(m, m.Width)
	used := 0
	for _, p := range parts {
		used += lipgloss.Height(p)
	}
	bodyHeight := max(m.Height-used-lipgloss.Height(statusBar), 0)

	// Header and rule take two lines; one more for breathing room.
	tableRows := bodyHeight - 3
	if m.Height == 0 {
		tableRows = 0
	} else if tableRows < 1 {
		tableRows = 1
	}

	table := RenderTable(m.VisibleClients(), m.Cursor, m.Width, tableRows)
	body := lipgloss.NewStyle().Padding(1, 0, 0, 0).Render(table)
	if m.Height > 0 {
		body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	}
	parts = append(parts, body, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusBar shows a transient message when one is set, otherwise the
// record count and key hints.
func renderStatusBar(m *model.Model, width int) string {
	visible := len(m.VisibleClients())
	count := fmt.Sprintf("%d clients", len(m.Clients))
	if visible != len(m.Clients) {
		count = fmt.Sprintf("%d of %d clients", visible, len(m.Clients))
	}
	if m.IsLoading {
		count = "Loading..."
	}

	return components.NewStatusBar(width).
		WithLeftText(count).
		WithRightText(shortHelp(m.Keys.ShortHelp())).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func shortHelp(bindings []key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " • "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
