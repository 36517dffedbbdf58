package model

import "time"

// AuthToken is a persisted API token. Only the SHA-256 digest of the opaque
// token string is stored; the plaintext is returned to the caller once at
// issuance and never again.
type AuthToken struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Digest    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
