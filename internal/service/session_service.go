package service

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/food-order-service/internal/auth"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// SessionService issues and revokes session tokens. Expired and unknown
// tokens are reported identically to callers.
type SessionService struct {
	users         repository.UserStore
	tokens        repository.TokenStore
	hashingSecret string
	tokenTTL      time.Duration
}

// NewSessionService builds the service.
func NewSessionService(users repository.UserStore, tokens repository.TokenStore, hashingSecret string, tokenTTL time.Duration) *SessionService {
	return &SessionService{
		users:         users,
		tokens:        tokens,
		hashingSecret: hashingSecret,
		tokenTTL:      tokenTTL,
	}
}

// Login verifies credentials and mints a fresh session token. Concurrent
// logins for one user each mint an independent token; that race is
// accepted.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if !auth.ComparePassword(s.hashingSecret, user.PasswordHash, password) {
		return nil, util.NewUnauthorized("invalid credentials")
	}

	token := auth.NewSessionToken(user.Email, s.tokenTTL)
	if err := s.tokens.Save(ctx, token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Logout destroys the presented token. Logging out an unknown token is not
// an error.
func (s *SessionService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return util.NewUnauthorized("missing token")
	}
	return s.tokens.Delete(ctx, tokenID)
}

// Verify resolves a presented token id to a live session. The caller never
// learns whether a rejected token was unknown or expired.
func (s *SessionService) Verify(ctx context.Context, tokenID string) (*domain.Token, error) {
	if tokenID == "" {
		return nil, util.NewUnauthorized("missing token")
	}
	token, err := s.tokens.Get(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewUnauthorized("invalid or expired token")
		}
		return nil, err
	}
	if !auth.Authenticate([]domain.Token{*token}, tokenID) {
		return nil, util.NewUnauthorized("invalid or expired token")
	}
	return token, nil
}
