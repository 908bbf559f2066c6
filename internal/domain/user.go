package domain

import "time"

// User is the domain model for a customer account. Accounts are keyed by
// email address; the password hash never leaves the service.
type User struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	StreetAddress string    `json:"streetAddress"`
	PasswordHash  string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
