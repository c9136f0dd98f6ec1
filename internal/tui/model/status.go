package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tick schedules the auto-clear messages. Tests replace it.
var tick = tea.Tick

// SetStatusMessage updates the status bar message and schedules its removal.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// SetError shows text in the error banner for ErrorDisplayDuration. A newer
// error supersedes the pending clear of an older one.
func (m *Model) SetError(text string) tea.Cmd {
	m.ErrorMessage = text
	m.ErrorGeneration++

	if m.ErrorClearCancel != nil {
		close(m.ErrorClearCancel)
	}

	m.ErrorClearCancel = make(chan struct{})
	captured := m.ErrorClearCancel
	generation := m.ErrorGeneration

	return tick(ErrorDisplayDuration, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearErrorMsg{Generation: generation}
		}
	})
}

// ClearError removes the banner if generation is still current.
func (m *Model) ClearError(generation int) {
	if generation != m.ErrorGeneration {
		return
	}
	m.ErrorMessage = ""
	m.ErrorClearCancel = nil
}
