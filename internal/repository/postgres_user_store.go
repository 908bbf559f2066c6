package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/food-order-service/internal/domain"
)

type postgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore returns a Postgres-backed UserStore.
func NewPostgresUserStore(pool *pgxpool.Pool) UserStore {
	return &postgresUserStore{pool: pool}
}

func (s *postgresUserStore) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, name, street_address, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at, updated_at`

	return s.pool.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.StreetAddress,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

func (s *postgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT email, name, street_address, password_hash, created_at, updated_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := s.pool.QueryRow(ctx, query, email).Scan(
		&user.Email,
		&user.Name,
		&user.StreetAddress,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *postgresUserStore) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, street_address=$2, password_hash=$3, updated_at=NOW()
        WHERE email=$4`

	cmd, err := s.pool.Exec(ctx, query,
		user.Name,
		user.StreetAddress,
		user.PasswordHash,
		user.Email,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postgresUserStore) Delete(ctx context.Context, email string) error {
	cmd, err := s.pool.Exec(ctx, `DELETE FROM users WHERE email=$1`, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
