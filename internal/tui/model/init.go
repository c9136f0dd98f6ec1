package model

import (
	"time"

	"clientctl/internal/clients"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRequestTimeout bounds each backend call when the config leaves it unset.
const DefaultRequestTimeout = 15 * time.Second

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(cfg TUIConfig) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search clients"
	search.CharLimit = 64
	search.Width = 24

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	copyFn := cfg.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := Model{
		CurrentAppMode:   ModeInitializing,
		DebugMode:        cfg.DebugMode,
		Login:            NewLoginState(),
		Clients:          make([]clients.Client, 0),
		SearchInput:      search,
		ActivityLog:      make([]string, 0),
		ActivityLogDirty: true,
		LogViewport:      viewport.New(0, 0),
		Spinner:          s,
		Keys:             DefaultKeyMap(),
		Help:             help.New(),
		Service:          cfg.Service,
		Auth:             cfg.Auth,
		AuthEvents:       cfg.AuthEvents,
		LogChannel:       cfg.LogChannel,
		RequestTimeout:   timeout,
		Clipboard:        copyFn,
	}
	return &m
}

// Init starts the log and session listeners and restores the stored session.
// The session gate opens on the INITIAL_SESSION event the restore emits.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Spinner.Tick}

	if cmd := ListenForLogEntriesCmd(m.LogChannel); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := ListenForAuthEventsCmd(m.AuthEvents); cmd != nil {
		cmds = append(cmds, cmd)
	}

	if m.Auth == nil {
		m.QuittingMessage = "session provider not initialized"
		return tea.Quit
	}
	cmds = append(cmds, RestoreSessionCmd(m.Auth, m.RequestTimeout))

	return tea.Batch(cmds...)
}
