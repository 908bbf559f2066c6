package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/food-order-service/internal/auth"
	"github.com/spec-kit/food-order-service/internal/domain"
	"github.com/spec-kit/food-order-service/internal/events"
	"github.com/spec-kit/food-order-service/internal/repository"
	"github.com/spec-kit/food-order-service/pkg/util"
)

// AccountService manages customer accounts.
type AccountService struct {
	users         repository.UserStore
	carts         repository.CartStore
	dispatcher    events.Dispatcher
	hashingSecret string
}

// NewAccountService builds the service. The dispatcher may be nil.
func NewAccountService(users repository.UserStore, carts repository.CartStore, dispatcher events.Dispatcher, hashingSecret string) *AccountService {
	return &AccountService{users: users, carts: carts, dispatcher: dispatcher, hashingSecret: hashingSecret}
}

// Register creates a new account with a hashed password. Email must be
// unused.
func (s *AccountService) Register(ctx context.Context, name, email, streetAddress, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, util.NewConflict("email already registered", map[string]any{"email": email})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(s.hashingSecret, password)
	if err != nil {
		return nil, util.NewValidationError(err.Error(), nil)
	}

	now := time.Now()
	user := &domain.User{
		Email:         email,
		Name:          name,
		StreetAddress: streetAddress,
		PasswordHash:  hash,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get loads an account by email.
func (s *AccountService) Get(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, util.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// Update applies non-empty fields to the account. A new password is
// rehashed before storage.
func (s *AccountService) Update(ctx context.Context, email, name, streetAddress, password string) (*domain.User, error) {
	user, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if streetAddress != "" {
		user.StreetAddress = streetAddress
	}
	if password != "" {
		hash, err := auth.HashPassword(s.hashingSecret, password)
		if err != nil {
			return nil, util.NewValidationError(err.Error(), nil)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account and its cart.
func (s *AccountService) Delete(ctx context.Context, email string) error {
	if err := s.users.Delete(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return util.NewNotFound("user", nil)
		}
		return err
	}
	if err := s.carts.Delete(ctx, email); err != nil {
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserDeleted,
			UserEmail: email,
			Timestamp: time.Now(),
		})
	}
	return nil
}
