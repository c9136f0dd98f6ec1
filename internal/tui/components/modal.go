package components

import (
	"clientctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// ModalType selects the modal's accent.
type ModalType int

const (
	ModalDefault ModalType = iota
	ModalDanger
)

// Modal is a bordered dialog centered on the screen.
type Modal struct {
	Title   string
	Content string
	Footer  string
	Width   int
	Type    ModalType
}

// NewModal creates a modal
func NewModal(title string) *Modal {
	return &Modal{
		Title: title,
		Width: design.ModalWidth,
	}
}

// WithContent sets the modal body
func (m *Modal) WithContent(content string) *Modal {
	m.Content = content
	return m
}

// WithFooter sets the line under the body, usually key hints
func (m *Modal) WithFooter(footer string) *Modal {
	m.Footer = footer
	return m
}

// WithWidth sets the modal's outer width
func (m *Modal) WithWidth(width int) *Modal {
	m.Width = width
	return m
}

// WithType sets the modal accent
func (m *Modal) WithType(t ModalType) *Modal {
	m.Type = t
	return m
}

// Render returns the dialog box without placement.
func (m *Modal) Render() string {
	style := design.ModalStyle
	if m.Type == ModalDanger {
		style = design.ModalDangerStyle
	}

	parts := []string{design.TitleStyle.Render(m.Title)}
	if m.Content != "" {
		parts = append(parts, m.Content)
	}
	if m.Footer != "" {
		parts = append(parts, "", design.DimStyle.Render(m.Footer))
	}

	// Width excludes the border.
	inner := m.Width - style.GetHorizontalBorderSize()
	if inner < 10 {
		inner = 10
	}
	return style.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Place centers the rendered modal on a width×height canvas.
func (m *Modal) Place(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.Render())
}
