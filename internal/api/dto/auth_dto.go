package dto

import "time"

// TokenRequest is the identity payload signed at login.
type TokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// TokenResponse carries the signed credential.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
