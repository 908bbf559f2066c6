package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/food-order-service/internal/domain"
)

type postgresOrderStore struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderStore returns a Postgres-backed OrderStore.
func NewPostgresOrderStore(pool *pgxpool.Pool) OrderStore {
	return &postgresOrderStore{pool: pool}
}

func (s *postgresOrderStore) Save(ctx context.Context, order *domain.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return err
	}

	const query = `
        INSERT INTO orders (id, user_email, lines, total, payment_status, email_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO NOTHING`

	_, err = s.pool.Exec(ctx, query,
		order.ID,
		order.UserEmail,
		lines,
		order.Total,
		order.PaymentStatus,
		order.EmailStatus,
		order.CreatedAt,
	)
	return err
}
