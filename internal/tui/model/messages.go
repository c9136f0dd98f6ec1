package model

import (
	"clientctl/internal/auth"
	"clientctl/internal/clients"
	"clientctl/pkg/logging"
)

// ---- Record messages ----

type ClientsFetchedMsg struct {
	Clients []clients.Client
	Err     error
}

type ClientSavedMsg struct {
	Mode   FormMode
	Client clients.Client
	Err    error
}

type ClientDeletedMsg struct {
	ID  int64
	Err error
}

type StatusToggledMsg struct {
	ID     int64
	Client clients.Client
	Err    error
}

// ---- Session messages ----

type AuthEventMsg struct {
	Event auth.Event
}

type AuthChannelClosedMsg struct{}

type SessionRestoreResultMsg struct {
	Err error
}

type SignInResultMsg struct {
	Err error
}

type SignOutResultMsg struct {
	Err error
}

// ---- Logging ----

type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Banner / status bar ----

type ClearErrorMsg struct {
	Generation int
}

type ClearStatusBarMsg struct{}
