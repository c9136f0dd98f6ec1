package controller

import (
	"clientctl/internal/clients"
	"clientctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const clientsSubsystem = "Clients"

func handleClientsFetchedMsg(m *model.Model, msg model.ClientsFetchedMsg) (*model.Model, tea.Cmd) {
	m.IsLoading = false
	if msg.Err != nil {
		LogError(clientsSubsystem, msg.Err, "Fetching clients failed")
		return m, m.SetError("Error fetching clients: " + msg.Err.Error())
	}
	if !m.Authenticated() {
		// Signed out while the request was in flight.
		return m, nil
	}

	m.Clients = msg.Clients
	if m.Clients == nil {
		m.Clients = make([]clients.Client, 0)
	}
	m.ClampCursor()
	LogInfo(clientsSubsystem, "Loaded %d clients", len(m.Clients))
	return m, nil
}

func handleClientSavedMsg(m *model.Model, msg model.ClientSavedMsg) (*model.Model, tea.Cmd) {
	m.IsLoading = false
	if msg.Err != nil {
		LogError(clientsSubsystem, msg.Err, "Saving client failed")
		return m, m.SetError("Error saving client: " + msg.Err.Error())
	}
	if !m.Authenticated() {
		LogDebug(m, clientsSubsystem, "Dropping save result after sign out")
		return m, nil
	}

	if msg.Mode == model.ModeEdit {
		m.Clients = clients.Replace(m.Clients, msg.Client)
		LogInfo(clientsSubsystem, "Updated client %d", msg.Client.ID)
		return m, m.SetStatusMessage("Client updated", model.StatusBarSuccess, model.StatusDisplayDuration)
	}

	m.Clients = clients.Append(m.Clients, msg.Client)
	LogInfo(clientsSubsystem, "Added client %d", msg.Client.ID)
	return m, m.SetStatusMessage("Client added", model.StatusBarSuccess, model.StatusDisplayDuration)
}

func handleClientDeletedMsg(m *model.Model, msg model.ClientDeletedMsg) (*model.Model, tea.Cmd) {
	m.IsLoading = false
	if msg.Err != nil {
		LogError(clientsSubsystem, msg.Err, "Deleting client %d failed", msg.ID)
		return m, m.SetError("Error deleting client: " + msg.Err.Error())
	}
	if !m.Authenticated() {
		LogDebug(m, clientsSubsystem, "Dropping delete result after sign out")
		return m, nil
	}

	m.Clients = clients.Remove(m.Clients, msg.ID)
	m.ClampCursor()
	LogInfo(clientsSubsystem, "Deleted client %d", msg.ID)
	return m, m.SetStatusMessage("Client deleted", model.StatusBarSuccess, model.StatusDisplayDuration)
}

// handleStatusToggledMsg never touches IsLoading; toggles run unguarded.
func handleStatusToggledMsg(m *model.Model, msg model.StatusToggledMsg) (*model.Model, tea.Cmd) {
	if msg.Err != nil {
		LogError(clientsSubsystem, msg.Err, "Toggling client %d failed", msg.ID)
		return m, m.SetError("Error toggling status: " + msg.Err.Error())
	}
	if !m.Authenticated() {
		LogDebug(m, clientsSubsystem, "Dropping toggle result after sign out")
		return m, nil
	}

	m.Clients = clients.Replace(m.Clients, msg.Client)
	LogDebug(m, clientsSubsystem, "Client %d is now %s", msg.Client.ID, msg.Client.Status())
	return m, nil
}
