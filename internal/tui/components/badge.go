package components

import (
	"clientctl/internal/clients"
	"clientctl/internal/tui/design"
)

// StatusBadge renders a record's status: Active in green, Inactive in red.
func StatusBadge(status clients.Status) string {
	if status.Active() {
		return design.StatusActiveStyle.Render(string(clients.StatusActive))
	}
	return design.StatusInactiveStyle.Render(string(clients.StatusInactive))
}
