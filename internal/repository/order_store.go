package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/food-order-service/internal/domain"
)

// OrderStore archives completed orders.
type OrderStore interface {
	Save(ctx context.Context, order *domain.Order) error
}

type redisOrderStore struct {
	client *redis.Client
}

// NewRedisOrderStore returns a Redis-backed implementation.
func NewRedisOrderStore(client *redis.Client) OrderStore {
	return &redisOrderStore{client: client}
}

func (s *redisOrderStore) Save(ctx context.Context, order *domain.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, orderKeyPrefix+order.ID, raw, 0).Err()
}
