package models

import "time"

// Session is a read-only snapshot of an authenticated session issued by the
// auth backend. Sessions are replaced wholesale on refresh and destroyed on
// sign-out; holders must never mutate one in place.
type Session struct {
	// Subject is the stable identity of the session owner (account UUID).
	Subject string `json:"subject"`

	// Email is the sign-in email, when the backend included it.
	Email string `json:"email,omitempty"`

	// AccessToken is the compact JWT presented on authenticated requests.
	AccessToken string `json:"access_token"`

	// RefreshToken is the opaque token exchanged for a fresh session.
	RefreshToken string `json:"refresh_token,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the access token lifetime has already passed.
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
