package model

import (
	"unicode/utf8"

	"clientctl/internal/clients"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form focus order. The four text inputs come first so their index doubles
// as the index into FormState.Inputs.
const (
	FieldName = iota
	FieldEmail
	FieldJob
	FieldRate
	FieldStatus
	FieldSubmit

	formFieldCount
)

var formLabels = [...]string{
	FieldName:  "Name",
	FieldEmail: "Email",
	FieldJob:   "Job",
	FieldRate:  "Rate ($)",
}

// FormState is the record modal. It holds text only; conversion to a
// request body happens on submit.
type FormState struct {
	Mode     FormMode
	TargetID int64
	Inputs   []textinput.Model
	Status   clients.Status
	Focus    int
	Err      string
}

// NewFormState seeds the modal from target when editing, blank otherwise.
func NewFormState(mode FormMode, target *clients.Client) FormState {
	values := clients.BlankForm()
	var targetID int64
	if mode == ModeEdit && target != nil {
		values = clients.FormFromClient(*target)
		targetID = target.ID
	}

	inputs := make([]textinput.Model, FieldRate+1)
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[FieldName].Placeholder = "Jane Doe"
	inputs[FieldEmail].Placeholder = "jane@example.com"
	inputs[FieldJob].Placeholder = "Designer"
	inputs[FieldRate].Placeholder = "45.00"
	inputs[FieldRate].CharLimit = 16

	seed(&inputs[FieldName], values.Name)
	seed(&inputs[FieldEmail], values.Email)
	seed(&inputs[FieldJob], values.Job)
	seed(&inputs[FieldRate], values.Rate)

	f := FormState{
		Mode:     mode,
		TargetID: targetID,
		Inputs:   inputs,
		Status:   values.Status,
	}
	f.SetFocus(FieldName)
	return f
}

// seed prefills an input, widening its limit so stored values survive an
// unchanged save.
func seed(ti *textinput.Model, value string) {
	if n := utf8.RuneCountInString(value); n > ti.CharLimit {
		ti.CharLimit = n
	}
	ti.SetValue(value)
}

// Title is the modal heading.
func (f *FormState) Title() string {
	if f.Mode == ModeEdit {
		return "Edit Client"
	}
	return "Add New Client"
}

// SubmitLabel is the text of the submit button.
func (f *FormState) SubmitLabel() string {
	if f.Mode == ModeEdit {
		return "Save Changes"
	}
	return "Add Client"
}

// Label returns the label for a text field.
func Label(field int) string {
	if field < 0 || field >= len(formLabels) {
		return ""
	}
	return formLabels[field]
}

// Values snapshots the form as the string-typed record form.
func (f *FormState) Values() clients.Form {
	return clients.Form{
		Name:   f.Inputs[FieldName].Value(),
		Email:  f.Inputs[FieldEmail].Value(),
		Job:    f.Inputs[FieldJob].Value(),
		Rate:   f.Inputs[FieldRate].Value(),
		Status: f.Status,
	}
}

// FocusedInput returns the focused text input, or nil when focus is on the
// status selector or the submit button.
func (f *FormState) FocusedInput() *textinput.Model {
	if f.Focus >= 0 && f.Focus < len(f.Inputs) {
		return &f.Inputs[f.Focus]
	}
	return nil
}

// SetFocus moves focus to field, wrapping around.
func (f *FormState) SetFocus(field int) tea.Cmd {
	field = ((field % formFieldCount) + formFieldCount) % formFieldCount
	f.Focus = field

	var cmd tea.Cmd
	for i := range f.Inputs {
		if i == field {
			cmd = f.Inputs[i].Focus()
		} else {
			f.Inputs[i].Blur()
		}
	}
	return cmd
}

// FocusNext moves focus forward.
func (f *FormState) FocusNext() tea.Cmd {
	return f.SetFocus(f.Focus + 1)
}

// FocusPrev moves focus backward.
func (f *FormState) FocusPrev() tea.Cmd {
	return f.SetFocus(f.Focus - 1)
}

// ToggleStatus flips the status selector.
func (f *FormState) ToggleStatus() {
	f.Status = f.Status.Toggle()
}

// OpenForm shows the record modal.
func (m *Model) OpenForm(mode FormMode, target *clients.Client) tea.Cmd {
	m.Form = NewFormState(mode, target)
	m.CurrentAppMode = ModeForm
	return textinput.Blink
}

// CloseForm hides the record modal without side effects.
func (m *Model) CloseForm() {
	m.Form = FormState{}
	m.CurrentAppMode = ModeList
}
