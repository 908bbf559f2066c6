package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// CartStore persists shopping carts keyed by user email. A missing cart
// reads as empty rather than as an error.
type CartStore interface {
	Get(ctx context.Context, userEmail string) ([]domain.CartItem, error)
	Put(ctx context.Context, userEmail string, items []domain.CartItem) error
	Delete(ctx context.Context, userEmail string) error
}

type redisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore returns a Redis-backed implementation.
func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

func (s *redisCartStore) Get(ctx context.Context, userEmail string) ([]domain.CartItem, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+userEmail).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.CartItem{}, nil
		}
		return nil, err
	}
	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *redisCartStore) Put(ctx context.Context, userEmail string, items []domain.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cartKeyPrefix+userEmail, raw, 0).Err()
}

func (s *redisCartStore) Delete(ctx context.Context, userEmail string) error {
	return s.client.Del(ctx, cartKeyPrefix+userEmail).Err()
}
