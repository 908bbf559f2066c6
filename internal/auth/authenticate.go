package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// Authenticate reports whether the presented token id matches any live
// token in the collection. Empty id or empty collection short-circuit to
// false. The check is existential: any matching, non-expired token
// authenticates. Pure predicate, no side effects.
func Authenticate(tokens []domain.Token, presentedID string) bool {
	return authenticateAt(tokens, presentedID, time.Now())
}

func authenticateAt(tokens []domain.Token, presentedID string, now time.Time) bool {
	if presentedID == "" || len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if token.ID == presentedID && !token.Expired(now) {
			return true
		}
	}
	return false
}

// NewSessionToken mints an opaque session token for a user.
func NewSessionToken(userEmail string, ttl time.Duration) domain.Token {
	return domain.Token{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		ExpiresAt: time.Now().Add(ttl),
	}
}
