package model

import (
	"context"
	"time"

	"clientctl/internal/api"
	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeInitializing AppMode = iota
	ModeLogin
	ModeList
	ModeSearch
	ModeForm
	ModeConfirmDelete
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeInitializing:
		return "Initializing"
	case ModeLogin:
		return "Login"
	case ModeList:
		return "List"
	case ModeSearch:
		return "Search"
	case ModeForm:
		return "Form"
	case ModeConfirmDelete:
		return "ConfirmDelete"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// IsOverlay reports whether the mode draws on top of the list.
func (m AppMode) IsOverlay() bool {
	switch m {
	case ModeForm, ModeConfirmDelete, ModeHelpOverlay, ModeLogOverlay:
		return true
	}
	return false
}

// FormMode says whether the record form creates or edits.
type FormMode int

const (
	ModeAdd FormMode = iota
	ModeEdit
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000

	// ErrorDisplayDuration is how long the error banner stays up.
	ErrorDisplayDuration = 3 * time.Second

	// StatusDisplayDuration is how long success notices stay in the status bar.
	StatusDisplayDuration = 3 * time.Second
)

// SessionProvider is the part of the auth provider the TUI drives.
type SessionProvider interface {
	Session() *auth.Session
	Restore(ctx context.Context) (*auth.Session, error)
	SignIn(ctx context.Context, email, password string) (*auth.Session, error)
	SignOut(ctx context.Context) error
}

// TUIConfig carries everything the model needs from the caller.
type TUIConfig struct {
	DebugMode      bool
	Service        api.ClientService
	Auth           SessionProvider
	AuthEvents     <-chan auth.Event
	LogChannel     <-chan logging.LogEntry
	RequestTimeout time.Duration

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
}

// Model represents the state of the TUI application. Only controller
// handlers mutate it; views read it.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp         bool
	CurrentAppMode  AppMode
	DebugMode       bool
	QuittingMessage string

	// Session gate
	Session *auth.Session
	Login   LoginState

	// Records
	Clients   []clients.Client
	Cursor    int
	IsLoading bool

	// Search
	SearchInput textinput.Model

	// Record form and delete confirmation
	Form          FormState
	PendingDelete *clients.Client

	// Error banner
	ErrorMessage     string
	ErrorGeneration  int
	ErrorClearCancel chan struct{}

	// Status bar
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Activity log
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int

	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	// Collaborators
	Service        api.ClientService
	Auth           SessionProvider
	AuthEvents     <-chan auth.Event
	LogChannel     <-chan logging.LogEntry
	RequestTimeout time.Duration
	Clipboard      func(string) error
}

// VisibleClients is the filtered view of the collection. It is recomputed on
// every call so it always reflects the current records and search term.
func (m *Model) VisibleClients() []clients.Client {
	return clients.Filter(m.Clients, m.SearchInput.Value())
}

// SelectedClient returns the record under the cursor.
func (m *Model) SelectedClient() (clients.Client, bool) {
	visible := m.VisibleClients()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return clients.Client{}, false
	}
	return visible[m.Cursor], true
}

// ClampCursor keeps the cursor inside the visible rows.
func (m *Model) ClampCursor() {
	n := len(m.VisibleClients())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// Authenticated reports whether the session gate is open.
func (m *Model) Authenticated() bool {
	return m.Session != nil
}

// UserEmail is the signed-in user's address, or "".
func (m *Model) UserEmail() string {
	if m.Session == nil {
		return ""
	}
	return m.Session.User.Email
}
