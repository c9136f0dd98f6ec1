// Package tui provides the Terminal User Interface for clientctl.
//
// This package implements an interactive client manager using the Bubble Tea
// framework: a searchable table of client records backed by the REST API,
// with add, edit, delete and status-toggle actions behind a sign-in gate.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model: Maintains application state and builds the async commands
//   - View: Renders the UI from the model and never mutates records
//   - Controller: Processes input and messages and owns every state change
//
// # Core Components
//
// Model (internal/tui/model/):
//   - Holds the session, the cached client collection and the cursor
//   - Holds the form, search and login input state
//   - Builds tea.Cmds that call the API and the auth provider
//
// View (internal/tui/view/):
//   - Renders the navbar, error banner, record table and status bar
//   - Renders the add/edit modal, delete confirmation and login form
//   - Provides overlays for help and the activity log
//
// Controller (internal/tui/controller/):
//   - Routes keys by mode (login, list, search, form, confirm, overlays)
//   - Applies API results to the collection and shows failures
//   - Moves the session gate on auth events
//
// # Message Flow
//
//  1. A key press or startup produces a tea.Cmd that calls the backend
//  2. The command returns a result message (ClientsFetchedMsg, ClientSavedMsg, ...)
//  3. The controller applies it to the model or sets the error banner
//  4. The view renders the updated state
//
// Session events and log entries arrive on channels. Each is read by a
// listener command that is re-issued after every message it delivers.
//
// # Keyboard Navigation
//
//   - ↑/↓ or j/k: Move the cursor
//   - /: Search by name, email or job
//   - a: Add a client
//   - e/Enter: Edit the selected client
//   - d/x: Delete the selected client (asks first)
//   - t/Space: Toggle Active/Inactive
//   - y: Copy the selected client's email
//   - r: Reload from the server
//   - ?: Show help overlay
//   - L: Show log viewer
//   - Ctrl+O: Sign out
//   - q/Ctrl+C: Quit application
//
// # Error Handling
//
// Every backend failure is turned into one line in the error banner, for
// example "Error saving client: request failed with status 500". The banner
// clears itself after three seconds or when a newer error replaces it.
// Details go to the activity log.
//
// # Usage Example
//
//	p := controller.NewProgram(model.TUIConfig{
//	    Service:    apiClient,
//	    Auth:       provider,
//	    AuthEvents: provider.Subscribe(),
//	    LogChannel: logChannel,
//	})
//
//	// Run the TUI (blocks until user quits)
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
