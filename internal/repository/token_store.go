package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// TokenStore persists opaque session tokens keyed by token id. Expiry is
// enforced lazily by the authenticator; the store only keeps the record.
type TokenStore interface {
	Save(ctx context.Context, token domain.Token) error
	Get(ctx context.Context, id string) (*domain.Token, error)
	Delete(ctx context.Context, id string) error
}

type redisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore returns a Redis-backed implementation.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func (s *redisTokenStore) Save(ctx context.Context, token domain.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return err
	}
	// Key TTL is hygiene only; authentication checks ExpiresAt itself.
	ttl := time.Until(token.ExpiresAt) + time.Hour
	if ttl <= 0 {
		ttl = time.Hour
	}
	return s.client.Set(ctx, tokenKeyPrefix+token.ID, raw, ttl).Err()
}

func (s *redisTokenStore) Get(ctx context.Context, id string) (*domain.Token, error) {
	raw, err := s.client.Get(ctx, tokenKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var token domain.Token
	if err := json.Unmarshal(raw, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, tokenKeyPrefix+id).Err()
}
