package domain

import "time"

// Token is an opaque session credential. Expiry is checked lazily at use
// time; nothing sweeps expired tokens out of the store.
type Token struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"userEmail"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the token is past its expiry at the given instant.
func (t Token) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
