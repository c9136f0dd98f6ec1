package view

import (
	"strings"
	"testing"

	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleClients() []clients.Client {
	return []clients.Client{
		{ID: 10, Name: "Ann Lee", Email: "ann@x.com", Job: "Designer", Rate: clients.NewRate(45.5), IsActive: true},
		{ID: 11, Name: "Bob", Email: "bob@y.com", Job: "Writer"},
	}
}

func newViewModel(mode model.AppMode) *model.Model {
	m := model.InitialModel(model.TUIConfig{})
	m.Width, m.Height = 120, 30
	m.CurrentAppMode = mode
	m.Session = &auth.Session{AccessToken: "tok", User: auth.User{Email: "me@x.com"}}
	m.Clients = sampleClients()
	return m
}

func TestRenderTable_Rows(t *testing.T) {
	out := RenderTable(sampleClients(), 0, 120, 0)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	for _, h := range tableHeaders {
		assert.Contains(t, lines[0], h)
	}
	assert.Contains(t, lines[2], "1")
	assert.Contains(t, lines[2], "Ann Lee")
	assert.Contains(t, lines[2], "45.5")
	assert.Contains(t, lines[2], "Active")
	assert.Contains(t, lines[3], "2")
	assert.Contains(t, lines[3], "bob@y.com")
	assert.Contains(t, lines[3], "Inactive")
}

func TestRenderTable_Empty(t *testing.T) {
	out := RenderTable(nil, 0, 80, 0)
	assert.Contains(t, out, "No clients found")
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestRenderTable_WindowFollowsCursor(t *testing.T) {
	var rows []clients.Client
	for i := 0; i < 10; i++ {
		rows = append(rows, clients.Client{ID: int64(i + 1), Name: "client-" + string(rune('a'+i))})
	}

	out := RenderTable(rows, 7, 100, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "client-f")
	assert.Contains(t, lines[4], "client-h")
	assert.NotContains(t, out, "client-a")
}

func TestRenderRow_TruncatesLongCells(t *testing.T) {
	widths := computeColumnWidths(80)
	c := clients.Client{ID: 1, Name: strings.Repeat("N", 80), Email: "e@x.com"}

	out := RenderRow(0, c, false, widths)
	assert.Contains(t, out, "…")
	total := 0
	for _, w := range widths.all() {
		total += w
	}
	total += len(columnGap) * (len(tableHeaders) - 1)
	assert.Equal(t, total, lipgloss.Width(out))
}

func TestComputeColumnWidths_Minimum(t *testing.T) {
	w := computeColumnWidths(10)
	assert.GreaterOrEqual(t, w.name, minFlexWidth)
	assert.GreaterOrEqual(t, w.email, minFlexWidth)
	assert.GreaterOrEqual(t, w.job, minFlexWidth)
}

func TestRender_ListShell(t *testing.T) {
	m := newViewModel(model.ModeList)
	m.ErrorMessage = "Error fetching clients: boom"

	out := Render(m)
	assert.Contains(t, out, "Client Manager")
	assert.Contains(t, out, "me@x.com")
	assert.Contains(t, out, "Error fetching clients: boom")
	assert.Contains(t, out, "Ann Lee")
	assert.Contains(t, out, "2 clients")
	assert.Equal(t, m.Height, lipgloss.Height(out))
}

func TestRender_SearchFiltersTable(t *testing.T) {
	m := newViewModel(model.ModeList)
	m.SearchInput.SetValue("bob")

	out := Render(m)
	assert.NotContains(t, out, "Ann Lee")
	assert.Contains(t, out, "bob@y.com")
	assert.Contains(t, out, "1 of 2 clients")
}

func TestRender_StatusMessageReplacesCount(t *testing.T) {
	m := newViewModel(model.ModeList)
	m.StatusBarMessage = "Client added"
	m.StatusBarMessageType = model.StatusBarSuccess

	out := Render(m)
	assert.Contains(t, out, "Client added")
	assert.NotContains(t, out, "2 clients")
}

func TestRender_Form(t *testing.T) {
	m := newViewModel(model.ModeList)
	target := sampleClients()[0]
	m.OpenForm(model.ModeEdit, &target)
	m.Form.Err = "email address is invalid"

	out := Render(m)
	assert.Contains(t, out, "Edit Client")
	assert.Contains(t, out, "Save Changes")
	assert.Contains(t, out, "Rate ($)")
	assert.Contains(t, out, "email address is invalid")

	m.OpenForm(model.ModeAdd, nil)
	out = Render(m)
	assert.Contains(t, out, "Add New Client")
	assert.Contains(t, out, "Add Client")
}

func TestRender_ConfirmDelete(t *testing.T) {
	m := newViewModel(model.ModeConfirmDelete)
	target := sampleClients()[1]
	m.PendingDelete = &target

	out := Render(m)
	assert.Contains(t, out, "Delete Client")
	assert.Contains(t, out, "Bob (bob@y.com)")
	assert.Contains(t, out, "n/esc cancel")
}

func TestRender_Login(t *testing.T) {
	m := newViewModel(model.ModeLogin)
	m.Session = nil
	m.Login.Err = "Invalid login credentials"

	out := Render(m)
	assert.Contains(t, out, "Sign in to manage your clients")
	assert.Contains(t, out, "Password")
	assert.Contains(t, out, "Invalid login credentials")
	assert.NotContains(t, out, "Ann Lee")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newViewModel(model.ModeHelpOverlay)

	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "copy email")
	assert.Contains(t, out, "sign out")
}

func TestRender_LogOverlay(t *testing.T) {
	m := newViewModel(model.ModeLogOverlay)
	m.LogViewport.Width, m.LogViewport.Height = 80, 10
	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] [Clients] Loaded 2 clients")
	m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, 80))

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "Loaded 2 clients")
}

func TestRender_OverlaysShowErrorBanner(t *testing.T) {
	target := sampleClients()[1]
	tests := []struct {
		name  string
		setup func(m *model.Model)
	}{
		{name: "form", setup: func(m *model.Model) { m.OpenForm(model.ModeEdit, &target) }},
		{name: "confirm delete", setup: func(m *model.Model) {
			m.CurrentAppMode = model.ModeConfirmDelete
			m.PendingDelete = &target
		}},
		{name: "help", setup: func(m *model.Model) { m.CurrentAppMode = model.ModeHelpOverlay }},
		{name: "log", setup: func(m *model.Model) {
			m.CurrentAppMode = model.ModeLogOverlay
			m.LogViewport.Width, m.LogViewport.Height = 80, 10
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newViewModel(model.ModeList)
			m.Height = 60
			tt.setup(m)

			without := Render(m)
			assert.NotContains(t, without, "Error toggling status")

			m.ErrorMessage = "Error toggling status: boom"
			out := Render(m)
			assert.Contains(t, out, "Error toggling status: boom")
			assert.Equal(t, m.Height, lipgloss.Height(out))
			assert.Equal(t, lipgloss.Height(without), lipgloss.Height(out))
		})
	}
}

func TestRender_Quitting(t *testing.T) {
	m := newViewModel(model.ModeQuitting)
	m.QuittingMessage = "Goodbye."
	assert.Contains(t, Render(m), "Goodbye.")
}

func TestPrepareLogContent_KeepsLines(t *testing.T) {
	lines := []string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d [INFO] w"}
	out := PrepareLogContent(lines, 40)
	assert.Len(t, strings.Split(out, "\n"), 4)
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
}
