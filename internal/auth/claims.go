package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of access-token claims the client reads.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// parseClaims decodes the token without verifying its signature. The backend
// verifies every request; the client only needs identity and expiry.
func parseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}
	return claims, nil
}

// sessionFromToken builds a Session from a token response. Expiry comes from
// expires_in, then expires_at, then the token's exp claim; identity from the
// response's user object, then the token's sub and email claims.
func sessionFromToken(resp *TokenResponse, now time.Time) (*Session, error) {
	if resp.AccessToken == "" {
		return nil, fmt.Errorf("token response has no access_token")
	}

	s := &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if resp.User != nil {
		s.User = *resp.User
	}

	switch {
	case resp.ExpiresIn > 0:
		s.ExpiresAt = now.Add(time.Duration(resp.ExpiresIn) * time.Second)
	case resp.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(resp.ExpiresAt, 0)
	}

	if s.ExpiresAt.IsZero() || s.User.ID == "" || s.User.Email == "" {
		claims, err := parseClaims(resp.AccessToken)
		if err != nil {
			if s.ExpiresAt.IsZero() {
				return nil, err
			}
			return s, nil
		}
		if s.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
			s.ExpiresAt = claims.ExpiresAt.Time
		}
		if s.User.ID == "" {
			s.User.ID = claims.Subject
		}
		if s.User.Email == "" {
			s.User.Email = claims.Email
		}
	}

	if s.ExpiresAt.IsZero() {
		return nil, fmt.Errorf("token response has no expiry")
	}
	return s, nil
}
