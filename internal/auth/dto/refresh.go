package dto

import "time"

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

// RevokeTokenInput is filled by the transport layer from the verified
// bearer token's claims, never from the request body.
type RevokeTokenInput struct {
	UserID    string
	JTI       string
	ExpiresAt time.Time
	IPAddress string
	UserAgent string
}
