package controller

import (
	"fmt"

	"clientctl/internal/tui/model"
	"clientctl/internal/tui/view"
	"clientctl/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the single entry point for state changes.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch routes every Bubble Tea message to its handler based
// on the message type and the current application mode.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return quit(m)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.CurrentAppMode {
		case model.ModeQuitting:
			return m, nil
		case model.ModeInitializing:
			if key.Matches(msg, m.Keys.Quit) {
				return quit(m)
			}
			return m, nil
		case model.ModeLogin:
			return handleKeyMsgLogin(m, msg)
		case model.ModeForm:
			return handleKeyMsgForm(m, msg)
		case model.ModeConfirmDelete:
			return handleKeyMsgConfirmDelete(m, msg)
		case model.ModeSearch:
			return handleKeyMsgSearch(m, msg)
		default:
			return handleKeyMsgGlobal(m, msg)
		}

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.ClientsFetchedMsg:
		return handleClientsFetchedMsg(m, msg)
	case model.ClientSavedMsg:
		return handleClientSavedMsg(m, msg)
	case model.ClientDeletedMsg:
		return handleClientDeletedMsg(m, msg)
	case model.StatusToggledMsg:
		return handleStatusToggledMsg(m, msg)

	case model.AuthEventMsg:
		m, cmd = handleAuthEventMsg(m, msg)
		cmds = append(cmds, cmd, model.ListenForAuthEventsCmd(m.AuthEvents))
		return m, tea.Batch(cmds...)
	case model.AuthChannelClosedMsg:
		LogWarn(sessionSubsystem, "Session event channel closed")
		return m, nil
	case model.SessionRestoreResultMsg:
		return handleSessionRestoreResultMsg(m, msg)
	case model.SignInResultMsg:
		return handleSignInResultMsg(m, msg)
	case model.SignOutResultMsg:
		return handleSignOutResultMsg(m, msg)

	case model.ClearErrorMsg:
		m.ClearError(msg.Generation)
		return m, nil

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))
		// Fall through to the viewport refresh below.

	default:
		// Cursor blink and similar component messages go to whatever has focus.
		switch m.CurrentAppMode {
		case model.ModeLogin:
			m.Login.Email, cmd = m.Login.Email.Update(msg)
			cmds = append(cmds, cmd)
			m.Login.Password, cmd = m.Login.Password.Update(msg)
			cmds = append(cmds, cmd)
		case model.ModeForm:
			if in := m.Form.FocusedInput(); in != nil {
				*in, cmd = in.Update(msg)
				cmds = append(cmds, cmd)
			}
		case model.ModeSearch:
			m.SearchInput, cmd = m.SearchInput.Update(msg)
			cmds = append(cmds, cmd)
		case model.ModeLogOverlay:
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// refreshLogViewport re-renders the log overlay content when new lines
// arrived or its width changed.
func refreshLogViewport(m *model.Model) {
	widthChanged := m.LogViewportLastWidth != m.LogViewport.Width
	if !m.ActivityLogDirty && !widthChanged {
		return
	}

	wasAtBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if m.CurrentAppMode != model.ModeLogOverlay || wasAtBottom {
		// Only follow the tail when the user is not scrolled back.
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug lines only reach the activity log in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Goodbye."
	m.QuitApp = true
	return m, tea.Quit
}
