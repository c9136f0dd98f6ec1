package clients

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email address is invalid")
	ErrInvalidRate   = errors.New("rate must be a number")
)

// Status is the form's string view of IsActive.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// StatusFromActive converts the stored boolean to its form string.
func StatusFromActive(active bool) Status {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// Active reports whether the status maps to isactive=true. Only the exact
// "Active" string does.
func (s Status) Active() bool {
	return s == StatusActive
}

// Toggle returns the other status.
func (s Status) Toggle() Status {
	if s.Active() {
		return StatusInactive
	}
	return StatusActive
}

// Form is the transient, string-typed projection edited in the modal.
type Form struct {
	Name   string
	Email  string
	Job    string
	Rate   string
	Status Status
}

// BlankForm is the state of the modal when adding a client.
func BlankForm() Form {
	return Form{Status: StatusInactive}
}

// FormFromClient pre-fills the modal when editing c.
func FormFromClient(c Client) Form {
	return Form{
		Name:   c.Name,
		Email:  c.Email,
		Job:    c.Job,
		Rate:   c.Rate.String(),
		Status: c.Status(),
	}
}

// Validate applies the required-field and email checks a browser form
// would enforce before submit.
func (f Form) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		return ErrEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// Payload normalizes the form into the request body: fields trimmed,
// status mapped to the boolean, rate parsed.
func (f Form) Payload() (Payload, error) {
	rate, err := ParseRate(f.Rate)
	if err != nil {
		return Payload{}, err
	}
	return Payload{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Job:      strings.TrimSpace(f.Job),
		Rate:     rate,
		IsActive: f.Status.Active(),
	}, nil
}
