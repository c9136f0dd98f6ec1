package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// TruncateString shortens s to at most width terminal cells, marking the cut
// with an ellipsis. Wide runes (CJK, emoji) count as two cells.
func TruncateString(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return ellipsis
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// FitCell truncates s to width cells and right-pads it so every cell in a
// column has the same width. Newlines are flattened to spaces first.
func FitCell(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.FillRight(TruncateString(s, width), width)
}
