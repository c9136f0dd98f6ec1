package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSession is returned when a token is requested while signed out.
	ErrNoSession = errors.New("not signed in")

	// ErrNoRefreshToken is returned when the access token has expired and
	// the session carries nothing to refresh it with.
	ErrNoRefreshToken = errors.New("access token expired and no refresh token available")
)

// Error is an error response from the authentication provider.
type Error struct {
	StatusCode  int
	Code        string
	Description string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Code != "" && e.Description != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Description)
	case e.Description != "":
		return e.Description
	case e.Code != "":
		return e.Code
	default:
		return fmt.Sprintf("authentication request failed with status %d", e.StatusCode)
	}
}

// IsInvalidGrant reports whether err means the credentials or refresh token
// were rejected, as opposed to a transient failure.
func IsInvalidGrant(err error) bool {
	var ae *Error
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.Code {
	case "invalid_grant", "invalid_credentials", "refresh_token_not_found", "refresh_token_already_used", "session_not_found":
		return true
	}
	return false
}

// parseErrorResponse understands both the OAuth2 shape
// {"error","error_description"} and the provider's {"error_code","msg"}.
func parseErrorResponse(statusCode int, body []byte) *Error {
	var payload struct {
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
		ErrorCode        string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
	}

	e := &Error{StatusCode: statusCode}
	if err := json.Unmarshal(body, &payload); err != nil {
		e.Description = strings.TrimSpace(string(body))
		return e
	}

	e.Code = firstNonEmpty(payload.Error, payload.ErrorCode)
	e.Description = firstNonEmpty(payload.ErrorDescription, payload.Msg, payload.Message)
	return e
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
