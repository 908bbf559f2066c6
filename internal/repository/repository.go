// Package repository holds the key-value collaborators behind the service:
// users, session tokens, carts and orders. Redis implementations cover all
// four; Postgres implementations exist for users and orders when a DSN is
// configured.
package repository

import "errors"

// ErrNotFound is returned when a record does not exist, regardless of the
// backing store.
var ErrNotFound = errors.New("record not found")

const (
	userKeyPrefix  = "user:"
	tokenKeyPrefix = "token:"
	cartKeyPrefix  = "cart:"
	orderKeyPrefix = "order:"
)
