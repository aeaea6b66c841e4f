package repository

import (
	"context"
	"fmt"

	"fast-delivery-orders/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepo stores tracking tokens in postgres.
type TokenRepo struct {
	db    *pgxpool.Pool
	table string
}

// NewTokenRepo creates a new TokenRepo over the given table.
func NewTokenRepo(db *pgxpool.Pool, table string) *TokenRepo {
	return &TokenRepo{db: db, table: ident(table)}
}

// Put inserts a tracking token.
func (r *TokenRepo) Put(ctx context.Context, t domain.TrackingToken) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (tracking_token, order_id, status, acao, cliente, entregue_em, created_at, notification_sent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`, r.table),
		t.Token, t.OrderID, t.Status, t.Action, t.Customer, t.DeliveredAt, t.CreatedAt.UTC(), t.NotificationSent,
	)
	if err != nil {
		return fmt.Errorf("put tracking token %s: %w", t.Token, err)
	}
	return nil
}
