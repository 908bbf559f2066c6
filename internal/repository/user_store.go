package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// UserStore persists customer accounts keyed by email.
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, email string) error
}

// storedUser carries the password hash, which the domain type keeps out of
// JSON output.
type storedUser struct {
	domain.User
	PasswordHash string `json:"passwordHash"`
}

type redisUserStore struct {
	client *redis.Client
}

// NewRedisUserStore returns a Redis-backed implementation.
func NewRedisUserStore(client *redis.Client) UserStore {
	return &redisUserStore{client: client}
}

func (s *redisUserStore) Create(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(storedUser{User: *user, PasswordHash: user.PasswordHash})
	if err != nil {
		return err
	}
	ok, err := s.client.SetNX(ctx, userKeyPrefix+user.Email, raw, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("user already exists")
	}
	return nil
}

func (s *redisUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	raw, err := s.client.Get(ctx, userKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var stored storedUser
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	user := stored.User
	user.PasswordHash = stored.PasswordHash
	return &user, nil
}

func (s *redisUserStore) Update(ctx context.Context, user *domain.User) error {
	key := userKeyPrefix + user.Email
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}
	raw, err := json.Marshal(storedUser{User: *user, PasswordHash: user.PasswordHash})
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, 0).Err()
}

func (s *redisUserStore) Delete(ctx context.Context, email string) error {
	deleted, err := s.client.Del(ctx, userKeyPrefix+email).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
