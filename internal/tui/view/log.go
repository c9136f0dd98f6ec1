package view

import (
	"strings"

	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const logOverlayTitle = "Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// PrepareLogContent applies color styles based on log level keywords.
// The viewport handles overflow, so lines are not truncated.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}

// renderLogOverlay draws the activity log viewport. The controller sizes
// the viewport and keeps its content current.
func renderLogOverlay(m *model.Model) string {
	title := design.LogPanelTitleStyle.Render(logOverlayTitle)
	body := m.LogViewport.View()
	if len(m.ActivityLog) == 0 {
		body = design.DimStyle.Render("No activity yet.")
	}
	content := lipgloss.JoinVertical(lipgloss.Left, title, body)

	overlay := design.LogOverlayStyle.
		Width(m.LogViewport.Width + design.LogOverlayStyle.GetHorizontalPadding()).
		Render(content)
	return placeOverlay(m, overlay)
}
