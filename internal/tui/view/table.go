package view

import (
	"strconv"
	"strings"

	"clientctl/internal/clients"
	"clientctl/internal/tui/components"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const (
	columnGap      = "  "
	indexWidth     = 4
	rateWidth      = 10
	statusWidth    = 8
	actionsWidth   = 15
	minFlexWidth   = 6
	emptyTableText = "No clients found"
	actionsHint    = "[e] [d] [t] [y]"
)

var tableHeaders = [...]string{"#", "Name", "Email", "Job", "Rate ($)", "Status", "Actions"}

// columnWidths holds the cell width of every table column.
type columnWidths struct {
	index, name, email, job, rate, status, actions int
}

func (w columnWidths) all() []int {
	return []int{w.index, w.name, w.email, w.job, w.rate, w.status, w.actions}
}

// computeColumnWidths gives the fixed columns their width and splits the
// rest 30/40/30 between name, email and job.
func computeColumnWidths(width int) columnWidths {
	if width < design.MinTableWidth {
		width = design.MinTableWidth
	}
	w := columnWidths{
		index:   indexWidth,
		rate:    rateWidth,
		status:  statusWidth,
		actions: actionsWidth,
	}
	gaps := lipgloss.Width(columnGap) * (len(tableHeaders) - 1)
	flex := width - w.index - w.rate - w.status - w.actions - gaps

	w.name = max(flex*3/10, minFlexWidth)
	w.email = max(flex*4/10, minFlexWidth)
	w.job = max(flex-w.name-w.email, minFlexWidth)
	return w
}

// RenderTable renders the record list with the row at cursor highlighted.
// height limits the number of data rows shown (0 shows all); the window
// scrolls to keep the cursor visible.
func RenderTable(rows []clients.Client, cursor, width, height int) string {
	widths := computeColumnWidths(width)

	header := renderCells(tableHeaders[:], widths.all())
	lines := []string{
		design.TableHeaderStyle.Render(header),
		design.DimStyle.Render(strings.Repeat("─", lipgloss.Width(header))),
	}

	if len(rows) == 0 {
		lines = append(lines, design.TableEmptyStyle.Render(emptyTableText))
		return strings.Join(lines, "\n")
	}

	start, end := 0, len(rows)
	if height > 0 && len(rows) > height {
		if cursor >= height {
			start = cursor - height + 1
		}
		end = start + height
	}

	for i := start; i < end; i++ {
		lines = append(lines, RenderRow(i, rows[i], i == cursor, widths))
	}
	return strings.Join(lines, "\n")
}

// RenderRow renders one record. index is zero-based; the first column shows
// its 1-based position.
func RenderRow(index int, c clients.Client, selected bool, widths columnWidths) string {
	cells := []string{
		strconv.Itoa(index + 1),
		c.Name,
		c.Email,
		c.Job,
		c.Rate.String(),
		string(c.Status()),
		actionsHint,
	}

	if selected {
		return design.TableRowSelectedStyle.Render(renderCells(cells, widths.all()))
	}

	// Status carries its own color, so it is styled separately.
	before := renderCells(cells[:5], widths.all()[:5])
	status := components.StatusBadge(c.Status()) + strings.Repeat(" ", max(widths.status-lipgloss.Width(string(c.Status())), 0))
	after := utils.FitCell(cells[6], widths.actions)

	return design.TableRowStyle.Render(before) + columnGap + status + columnGap + design.DimStyle.Render(after)
}

// renderCells pads or truncates each cell to its column and joins them.
func renderCells(cells []string, widths []int) string {
	out := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		out = append(out, utils.FitCell(cell, widths[i]))
	}
	return strings.Join(out, columnGap)
}
