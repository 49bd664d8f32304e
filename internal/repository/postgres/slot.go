package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

// DB is the subset of *pgxpool.Pool used by the repositories.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

var _ model.SlotStore = (*SlotRepository)(nil)

// SlotRepository stores slots as rows of registry_slots.
type SlotRepository struct {
	db DB
}

func NewSlotRepository(db DB) *SlotRepository {
	return &SlotRepository{
		db: db,
	}
}

func (r *SlotRepository) Read(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT payload FROM registry_slots WHERE key = $1`

	var payload []byte
	err := r.db.QueryRow(ctx, query, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	return payload, nil
}

func (r *SlotRepository) Write(ctx context.Context, key string, payload []byte) error {
	const query = `
		INSERT INTO registry_slots (key, payload)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	cmd, err := r.db.Exec(ctx, query, key, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert slot: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("failed to upsert slot: no rows affected")
	}

	return nil
}

func (r *SlotRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
