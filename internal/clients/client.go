package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Client is a record as the backend returns it.
type Client struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Job      string `json:"job"`
	Rate     Rate   `json:"rate"`
	IsActive bool   `json:"isactive"`
}

// Payload is the body sent on create and update. The identifier travels in
// the URL, never in the body.
type Payload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Job      string `json:"job"`
	Rate     Rate   `json:"rate"`
	IsActive bool   `json:"isactive"`
}

// Payload returns the record's writable fields.
func (c Client) Payload() Payload {
	return Payload{
		Name:     c.Name,
		Email:    c.Email,
		Job:      c.Job,
		Rate:     c.Rate,
		IsActive: c.IsActive,
	}
}

// Status returns the form representation of IsActive.
func (c Client) Status() Status {
	return StatusFromActive(c.IsActive)
}

// Rate is an optional hourly rate. The backend stores it as a numeric column
// but older rows come back as strings, so both decode.
type Rate struct {
	Value float64
	Set   bool
}

// NewRate returns a set rate.
func NewRate(v float64) Rate {
	return Rate{Value: v, Set: true}
}

// ParseRate parses free-form rate text. Empty text yields an unset rate.
func ParseRate(text string) (Rate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Rate{}, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, text)
	}
	return NewRate(v), nil
}

// String renders the rate without trailing zeros; unset rates render empty.
func (r Rate) String() string {
	if !r.Set {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// MarshalJSON encodes an unset rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Set {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON accepts null, a number, or a numeric string.
func (r *Rate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = Rate{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseRate(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRate, data)
	}
	*r = NewRate(v)
	return nil
}
