package view

import (
	"clientctl/internal/tui/components"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const appTitle = "Client Manager"

func renderLogin(m *model.Model) string {
	l := &m.Login
	inputWidth := design.LoginWidth - design.ModalStyle.GetHorizontalFrameSize()

	field := func(label, input string, focused bool) string {
		labelStyle, boxStyle := design.LabelStyle, design.InputStyle
		if focused {
			labelStyle, boxStyle = design.LabelFocusedStyle, design.InputFocusedStyle
		}
		return labelStyle.Render(label) + "\n" +
			boxStyle.Width(inputWidth-boxStyle.GetHorizontalBorderSize()).Render(input)
	}

	rows := []string{
		design.TextSecondaryStyle.Render("Sign in to manage your clients"),
		"",
		field("Email", l.Email.View(), l.Focus == model.LoginFieldEmail),
		field("Password", l.Password.View(), l.Focus == model.LoginFieldPassword),
	}
	if l.Err != "" {
		rows = append(rows, design.FieldErrorStyle.Render("✗ "+l.Err))
	}

	button := design.ButtonSecondaryStyle
	if l.Focus == model.LoginFieldSubmit {
		button = design.ButtonStyle
	}
	label := "Sign In"
	if l.Submitting {
		label = m.Spinner.View() + " Signing in…"
	}
	rows = append(rows, "", button.Render(label))

	modal := components.NewModal(appTitle).
		WithWidth(design.LoginWidth).
		WithContent(lipgloss.JoinVertical(lipgloss.Left, rows...)).
		WithFooter("tab move • enter sign in • ctrl+c quit")

	banner := components.ErrorBanner(m.ErrorMessage, m.Width)
	height := m.Height - lipgloss.Height(banner)
	if banner == "" {
		height = m.Height
	}
	canvas := modal.Place(m.Width, max(height, 0))
	if banner == "" {
		return canvas
	}
	return lipgloss.JoinVertical(lipgloss.Left, banner, canvas)
}
