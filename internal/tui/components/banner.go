package components

import (
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/utils"
)

// ErrorBanner renders the error alert, or nothing when message is empty.
func ErrorBanner(message string, width int) string {
	if message == "" {
		return ""
	}
	style := design.ErrorBannerStyle
	textWidth := width - style.GetHorizontalFrameSize() - 2
	if textWidth < 1 {
		textWidth = 1
	}
	return style.
		Width(width - style.GetHorizontalBorderSize()).
		Render("✗ " + utils.TruncateString(message, textWidth))
}
