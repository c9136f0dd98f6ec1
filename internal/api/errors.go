package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrMalformedResponse wraps every failure to decode a 2xx body into the
	// record schema.
	ErrMalformedResponse = errors.New("malformed response from server")

	// ErrNoToken is returned when the token source has no session.
	ErrNoToken = errors.New("not signed in")
)

// maxErrorBody caps how much of an error body ends up in a message.
const maxErrorBody = 200

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden)
}

// parseErrorResponse builds a StatusError, preferring a JSON "error" or
// "message" field over the raw body.
func parseErrorResponse(statusCode int, body []byte) *StatusError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if runes := []rune(msg); len(runes) > maxErrorBody {
		msg = string(runes[:maxErrorBody]) + "..."
	}
	return &StatusError{StatusCode: statusCode, Message: msg}
}
