package controller

import (
	"context"
	"errors"
	"sync"
	"testing"

	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeService struct {
	mu       sync.Mutex
	records  []clients.Client
	nextID   int64
	err      error
	created  []clients.Payload
	updates  map[int64]clients.Payload
	deleted  []int64
	listCall int
}

func newFakeService(records ...clients.Client) *fakeService {
	return &fakeService{records: records, nextID: 100, updates: map[int64]clients.Payload{}}
}

func (f *fakeService) List(ctx context.Context) ([]clients.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCall++
	if f.err != nil {
		return nil, f.err
	}
	return append([]clients.Client(nil), f.records...), nil
}

func (f *fakeService) Create(ctx context.Context, p clients.Payload) (clients.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	if f.err != nil {
		return clients.Client{}, f.err
	}
	f.nextID++
	c := clients.Client{ID: f.nextID, Name: p.Name, Email: p.Email, Job: p.Job, Rate: p.Rate, IsActive: p.IsActive}
	f.records = append(f.records, c)
	return c, nil
}

func (f *fakeService) Update(ctx context.Context, id int64, p clients.Payload) (clients.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates[id] = p
	if f.err != nil {
		return clients.Client{}, f.err
	}
	c := clients.Client{ID: id, Name: p.Name, Email: p.Email, Job: p.Job, Rate: p.Rate, IsActive: p.IsActive}
	f.records = clients.Replace(f.records, c)
	return c, nil
}

func (f *fakeService) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	if f.err != nil {
		return f.err
	}
	f.records = clients.Remove(f.records, id)
	return nil
}

type fakeProvider struct {
	session    *auth.Session
	signInErr  error
	signOutErr error
	signedOut  bool
}

func (p *fakeProvider) Session() *auth.Session { return p.session }

func (p *fakeProvider) Restore(ctx context.Context) (*auth.Session, error) {
	return p.session, nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	p.session = &auth.Session{AccessToken: "tok", User: auth.User{ID: "u1", Email: email}}
	return p.session, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.signedOut = true
	p.session = nil
	return p.signOutErr
}

var errBoom = errors.New("boom")

func testSession() *auth.Session {
	return &auth.Session{AccessToken: "tok", User: auth.User{ID: "u1", Email: "me@x.com"}}
}

// newTestModel returns a signed-in model showing the list.
func newTestModel(t *testing.T, svc *fakeService) (*model.Model, *fakeProvider) {
	t.Helper()
	p := &fakeProvider{session: testSession()}
	m := model.InitialModel(model.TUIConfig{
		Service:   svc,
		Auth:      p,
		Clipboard: func(string) error { return nil },
	})
	m.Session = p.session
	m.CurrentAppMode = model.ModeList
	m.Clients = append([]clients.Client(nil), svc.records...)
	return m, p
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// typeText feeds each rune as a separate key press.
func typeText(m *model.Model, s string) *model.Model {
	for _, r := range s {
		m, _ = Update(keyRunes(string(r)), m)
	}
	return m
}

// exec runs a backend command synchronously and feeds its result back in.
// Only call it on commands known not to be timers.
func exec(t *testing.T, m *model.Model, cmd tea.Cmd) (*model.Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return Update(cmd(), m)
}
