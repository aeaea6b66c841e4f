package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool creates and pings a new pgx connection pool.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// EnsureSchema creates the orders and tokens tables when they are missing.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool, ordersTable, tokensTable string) error {
	_, err := db.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			order_id                TEXT PRIMARY KEY,
			customer_name           TEXT NOT NULL,
			customer_email          TEXT NOT NULL,
			delivery_address        TEXT NOT NULL,
			items                   JSONB NOT NULL,
			status                  TEXT NOT NULL,
			created_at              TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			updated_at              TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			special_instructions    JSONB,
			estimated_delivery_time JSONB
		)`, ident(ordersTable)))
	if err != nil {
		return fmt.Errorf("create %s table: %w", ordersTable, err)
	}

	_, err = db.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			tracking_token    TEXT PRIMARY KEY,
			order_id          TEXT NOT NULL,
			status            TEXT NOT NULL,
			acao              TEXT NOT NULL,
			cliente           TEXT NOT NULL,
			entregue_em       TEXT NOT NULL,
			created_at        TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			notification_sent BOOLEAN NOT NULL
		)`, ident(tokensTable)))
	if err != nil {
		return fmt.Errorf("create %s table: %w", tokensTable, err)
	}
	return nil
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}
