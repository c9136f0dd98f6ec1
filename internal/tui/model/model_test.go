package model

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// immediateTick replaces tea.Tick so scheduled clears can be driven without sleeping.
func immediateTick(t *testing.T) *[]time.Duration {
	t.Helper()
	var durations []time.Duration
	orig := tick
	tick = func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		durations = append(durations, d)
		return func() tea.Msg { return fn(time.Time{}) }
	}
	t.Cleanup(func() { tick = orig })
	return &durations
}

type stubService struct {
	list      []clients.Client
	err       error
	updatedID int64
	payload   clients.Payload
	deleted   int64
}

func (s *stubService) List(ctx context.Context) ([]clients.Client, error) {
	return s.list, s.err
}

func (s *stubService) Create(ctx context.Context, p clients.Payload) (clients.Client, error) {
	s.payload = p
	if s.err != nil {
		return clients.Client{}, s.err
	}
	return clients.Client{ID: 99, Name: p.Name, Email: p.Email, IsActive: p.IsActive}, nil
}

func (s *stubService) Update(ctx context.Context, id int64, p clients.Payload) (clients.Client, error) {
	s.updatedID = id
	s.payload = p
	if s.err != nil {
		return clients.Client{}, s.err
	}
	return clients.Client{ID: id, Name: p.Name, Email: p.Email, Job: p.Job, Rate: p.Rate, IsActive: p.IsActive}, nil
}

func (s *stubService) Delete(ctx context.Context, id int64) error {
	s.deleted = id
	return s.err
}

type stubProvider struct {
	session  *auth.Session
	err      error
	email    string
	password string
	signOut  bool
}

func (p *stubProvider) Session() *auth.Session { return p.session }

func (p *stubProvider) Restore(ctx context.Context) (*auth.Session, error) {
	return p.session, p.err
}

func (p *stubProvider) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	p.email, p.password = email, password
	return p.session, p.err
}

func (p *stubProvider) SignOut(ctx context.Context) error {
	p.signOut = true
	return p.err
}

func TestSetError_SchedulesClearOfCurrentGeneration(t *testing.T) {
	durations := immediateTick(t)
	m := InitialModel(TUIConfig{})

	cmd := m.SetError("Error fetching clients: boom")
	require.NotNil(t, cmd)
	assert.Equal(t, "Error fetching clients: boom", m.ErrorMessage)
	assert.Equal(t, []time.Duration{ErrorDisplayDuration}, *durations)
	assert.Equal(t, 3*time.Second, ErrorDisplayDuration)

	msg := cmd()
	cleared, ok := msg.(ClearErrorMsg)
	require.True(t, ok)
	m.ClearError(cleared.Generation)
	assert.Empty(t, m.ErrorMessage)
}

func TestSetError_NewerErrorSupersedesPendingClear(t *testing.T) {
	immediateTick(t)
	m := InitialModel(TUIConfig{})

	first := m.SetError("first")
	second := m.SetError("second")

	assert.Nil(t, first(), "superseded tick must not produce a clear")
	assert.Equal(t, "second", m.ErrorMessage)

	// A stale generation never clears the newer message.
	m.ClearError(m.ErrorGeneration - 1)
	assert.Equal(t, "second", m.ErrorMessage)

	msg := second()
	require.IsType(t, ClearErrorMsg{}, msg)
	m.ClearError(msg.(ClearErrorMsg).Generation)
	assert.Empty(t, m.ErrorMessage)
}

func TestSetStatusMessage_CancelsPreviousClear(t *testing.T) {
	immediateTick(t)
	m := InitialModel(TUIConfig{})

	first := m.SetStatusMessage("Client added", StatusBarSuccess, StatusDisplayDuration)
	second := m.SetStatusMessage("Client deleted", StatusBarSuccess, StatusDisplayDuration)

	assert.Nil(t, first())
	assert.Equal(t, ClearStatusBarMsg{}, second())
	assert.Equal(t, "Client deleted", m.StatusBarMessage)
	assert.Equal(t, StatusBarSuccess, m.StatusBarMessageType)
}

func TestAddRawLineToActivityLog_CapsLines(t *testing.T) {
	m := InitialModel(TUIConfig{})
	for i := 0; i < MaxActivityLogLines+5; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	AddRawLineToActivityLog(m, "last")

	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "last", m.ActivityLog[len(m.ActivityLog)-1])
	assert.True(t, m.ActivityLogDirty)
}

func TestVisibleClientsAndCursor(t *testing.T) {
	m := InitialModel(TUIConfig{})
	m.Clients = []clients.Client{
		{ID: 1, Name: "Ann Lee", Email: "ann@x.com"},
		{ID: 2, Name: "Bob", Email: "bob@y.com"},
		{ID: 3, Name: "Cy", Email: "cy@x.com", Job: "Annotator"},
	}

	m.SearchInput.SetValue("ann")
	visible := m.VisibleClients()
	require.Len(t, visible, 2)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, int64(3), visible[1].ID)

	m.Cursor = 5
	m.ClampCursor()
	assert.Equal(t, 1, m.Cursor)
	selected, ok := m.SelectedClient()
	require.True(t, ok)
	assert.Equal(t, int64(3), selected.ID)

	m.SearchInput.SetValue("zzz")
	m.ClampCursor()
	assert.Equal(t, 0, m.Cursor)
	_, ok = m.SelectedClient()
	assert.False(t, ok)
}

func TestFormState_AddDefaults(t *testing.T) {
	f := NewFormState(ModeAdd, nil)

	assert.Equal(t, "Add New Client", f.Title())
	assert.Equal(t, "Add Client", f.SubmitLabel())
	assert.Equal(t, clients.BlankForm(), f.Values())
	assert.Equal(t, FieldName, f.Focus)
	assert.True(t, f.Inputs[FieldName].Focused())
}

func TestFormState_EditSeedsFromTarget(t *testing.T) {
	target := clients.Client{ID: 4, Name: "Ann", Email: "ann@x.com", Job: "Dev", Rate: clients.NewRate(45), IsActive: true}
	f := NewFormState(ModeEdit, &target)

	assert.Equal(t, "Edit Client", f.Title())
	assert.Equal(t, "Save Changes", f.SubmitLabel())
	assert.Equal(t, int64(4), f.TargetID)
	assert.Equal(t, clients.FormFromClient(target), f.Values())
}

func TestFormState_EditKeepsLongValues(t *testing.T) {
	target := clients.Client{
		ID:    9,
		Name:  strings.Repeat("n", 150),
		Email: strings.Repeat("e", 140) + "@x.com",
		Job:   strings.Repeat("j", 200),
		Rate:  clients.NewRate(0.1 + 0.2),
	}
	f := NewFormState(ModeEdit, &target)

	assert.Equal(t, clients.FormFromClient(target), f.Values())

	p, err := f.Values().Payload()
	require.NoError(t, err)
	assert.Equal(t, target.Payload(), p)
}

func TestFormState_AddKeepsDefaultLimits(t *testing.T) {
	f := NewFormState(ModeAdd, nil)
	assert.Equal(t, 128, f.Inputs[FieldName].CharLimit)
	assert.Equal(t, 16, f.Inputs[FieldRate].CharLimit)
}

func TestFormState_FocusWrapsAndToggles(t *testing.T) {
	f := NewFormState(ModeAdd, nil)

	f.FocusPrev()
	assert.Equal(t, FieldSubmit, f.Focus)
	assert.Nil(t, f.FocusedInput())
	for _, in := range f.Inputs {
		assert.False(t, in.Focused())
	}

	f.FocusNext()
	assert.Equal(t, FieldName, f.Focus)
	require.NotNil(t, f.FocusedInput())

	f.SetFocus(FieldStatus)
	f.ToggleStatus()
	assert.Equal(t, clients.StatusActive, f.Status)
	f.ToggleStatus()
	assert.Equal(t, clients.StatusInactive, f.Status)
}

func TestOpenAndCloseForm(t *testing.T) {
	m := InitialModel(TUIConfig{})
	m.CurrentAppMode = ModeList

	cmd := m.OpenForm(ModeAdd, nil)
	assert.NotNil(t, cmd)
	assert.Equal(t, ModeForm, m.CurrentAppMode)

	m.CloseForm()
	assert.Equal(t, ModeList, m.CurrentAppMode)
}

func TestLoginState_Focus(t *testing.T) {
	l := NewLoginState()
	assert.True(t, l.Email.Focused())

	l.FocusNext()
	assert.True(t, l.Password.Focused())
	assert.False(t, l.Email.Focused())

	l.FocusNext()
	assert.Equal(t, LoginFieldSubmit, l.Focus)
	assert.False(t, l.Password.Focused())

	l.FocusNext()
	assert.Equal(t, LoginFieldEmail, l.Focus)
}

func TestFetchClientsCmd_RequiresSession(t *testing.T) {
	svc := &stubService{list: []clients.Client{{ID: 1, Name: "Ann"}}}
	m := InitialModel(TUIConfig{Service: svc})

	assert.Nil(t, m.FetchClientsCmd())

	m.Session = &auth.Session{AccessToken: "tok"}
	cmd := m.FetchClientsCmd()
	require.NotNil(t, cmd)
	msg := cmd().(ClientsFetchedMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, svc.list, msg.Clients)
}

func TestSubmitClientCmd(t *testing.T) {
	svc := &stubService{}
	payload := clients.Payload{Name: "Bo", Email: "b@x.com"}

	added := SubmitClientCmd(svc, time.Second, ModeAdd, 0, payload)().(ClientSavedMsg)
	assert.Equal(t, ModeAdd, added.Mode)
	assert.Equal(t, int64(99), added.Client.ID)

	edited := SubmitClientCmd(svc, time.Second, ModeEdit, 7, payload)().(ClientSavedMsg)
	assert.Equal(t, ModeEdit, edited.Mode)
	assert.Equal(t, int64(7), svc.updatedID)
	assert.Equal(t, int64(7), edited.Client.ID)
}

func TestToggleStatusCmd_FlipsOnlyIsActive(t *testing.T) {
	svc := &stubService{}
	c := clients.Client{ID: 3, Name: "Ann", Email: "ann@x.com", Job: "Dev", Rate: clients.NewRate(10), IsActive: false}

	msg := ToggleStatusCmd(svc, time.Second, c)().(StatusToggledMsg)

	require.NoError(t, msg.Err)
	want := c.Payload()
	want.IsActive = true
	assert.Equal(t, want, svc.payload)
	assert.Equal(t, int64(3), msg.ID)
	assert.True(t, msg.Client.IsActive)
}

func TestDeleteClientCmd_ReportsError(t *testing.T) {
	svc := &stubService{err: errors.New("gone")}
	msg := DeleteClientCmd(svc, time.Second, 5)().(ClientDeletedMsg)

	assert.Equal(t, int64(5), svc.deleted)
	assert.EqualError(t, msg.Err, "gone")
}

func TestSessionCommands(t *testing.T) {
	p := &stubProvider{err: errors.New("invalid login")}

	res := SignInCmd(p, time.Second, "a@x.com", "pw")().(SignInResultMsg)
	assert.EqualError(t, res.Err, "invalid login")
	assert.Equal(t, "a@x.com", p.email)
	assert.Equal(t, "pw", p.password)

	restore := RestoreSessionCmd(p, time.Second)().(SessionRestoreResultMsg)
	assert.Error(t, restore.Err)

	out := SignOutCmd(p, time.Second)().(SignOutResultMsg)
	assert.Error(t, out.Err)
	assert.True(t, p.signOut)
}

func TestListenCommands(t *testing.T) {
	assert.Nil(t, ListenForAuthEventsCmd(nil))
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	events := make(chan auth.Event, 1)
	events <- auth.Event{Type: auth.EventSignedOut}
	msg := ListenForAuthEventsCmd(events)()
	assert.Equal(t, AuthEventMsg{Event: auth.Event{Type: auth.EventSignedOut}}, msg)

	close(events)
	assert.Equal(t, AuthChannelClosedMsg{}, ListenForAuthEventsCmd(events)())

	logs := make(chan logging.LogEntry, 1)
	logs <- logging.LogEntry{Message: "hello"}
	entry := ListenForLogEntriesCmd(logs)().(NewLogEntryMsg)
	assert.Equal(t, "hello", entry.Entry.Message)
}

func TestInit_QuitsWithoutProvider(t *testing.T) {
	m := InitialModel(TUIConfig{})
	m.Init()
	assert.Equal(t, "session provider not initialized", m.QuittingMessage)
}

func TestAppModeIsOverlay(t *testing.T) {
	assert.True(t, ModeForm.IsOverlay())
	assert.True(t, ModeConfirmDelete.IsOverlay())
	assert.False(t, ModeList.IsOverlay())
	assert.False(t, ModeLogin.IsOverlay())
	assert.Equal(t, "ConfirmDelete", ModeConfirmDelete.String())
}
