package view

import (
	"strings"

	"clientctl/internal/clients"
	"clientctl/internal/tui/components"
	"clientctl/internal/tui/design"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// formFieldWidth is the width of an input box inside the modal.
var formFieldWidth = design.ModalWidth - design.ModalStyle.GetHorizontalFrameSize()

func renderForm(m *model.Model) string {
	f := &m.Form
	var rows []string

	for i := range f.Inputs {
		rows = append(rows, renderFormInput(model.Label(i), f.Inputs[i].View(), f.Focus == i))
	}
	rows = append(rows, renderStatusSelector(f.Status, f.Focus == model.FieldStatus))

	if f.Err != "" {
		rows = append(rows, design.FieldErrorStyle.Render("✗ "+f.Err))
	}

	submit := design.ButtonStyle
	if f.Focus != model.FieldSubmit {
		submit = design.ButtonSecondaryStyle
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		submit.Render(f.SubmitLabel()),
		"  ",
		design.DimStyle.Render("esc cancel"),
	)
	rows = append(rows, "", buttons)

	modal := components.NewModal(f.Title()).
		WithContent(strings.Join(rows, "\n")).
		WithFooter(model.FormHelp())
	return placeOverlay(m, modal.Render())
}

func renderFormInput(label, input string, focused bool) string {
	labelStyle, boxStyle := design.LabelStyle, design.InputStyle
	if focused {
		labelStyle, boxStyle = design.LabelFocusedStyle, design.InputFocusedStyle
	}
	box := boxStyle.Width(formFieldWidth - boxStyle.GetHorizontalBorderSize()).Render(input)
	return labelStyle.Render(label) + "\n" + box
}

// renderStatusSelector shows the two statuses with the current one marked.
func renderStatusSelector(status clients.Status, focused bool) string {
	labelStyle := design.LabelStyle
	if focused {
		labelStyle = design.LabelFocusedStyle
	}

	var options []string
	for _, s := range []clients.Status{clients.StatusActive, clients.StatusInactive} {
		if s == status {
			options = append(options, "● "+components.StatusBadge(s))
		} else {
			options = append(options, design.DimStyle.Render("○ "+string(s)))
		}
	}
	selector := strings.Join(options, "   ")
	if focused {
		selector = "◀ " + selector + " ▶"
	}
	return labelStyle.Render("Status") + "\n" + selector
}
