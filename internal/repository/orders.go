package repository

import (
	"context"
	"fmt"
	"time"

	"fast-delivery-orders/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepo stores orders in postgres.
type OrderRepo struct {
	db    *pgxpool.Pool
	table string
}

// NewOrderRepo creates a new OrderRepo over the given table.
func NewOrderRepo(db *pgxpool.Pool, table string) *OrderRepo {
	return &OrderRepo{db: db, table: ident(table)}
}

// Put inserts a new order. Items and the optional fields are stored as JSONB.
func (r *OrderRepo) Put(ctx context.Context, o *domain.Order) error {
	items, err := jsonbArg(o.Items)
	if err != nil {
		return fmt.Errorf("put order %s items: %w", o.ID, err)
	}
	notes, err := jsonbArg(o.SpecialInstructions)
	if err != nil {
		return fmt.Errorf("put order %s special_instructions: %w", o.ID, err)
	}
	eta, err := jsonbArg(o.EstimatedDeliveryTime)
	if err != nil {
		return fmt.Errorf("put order %s estimated_delivery_time: %w", o.ID, err)
	}

	_, err = r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (order_id, customer_name, customer_email, delivery_address, items, status,
			created_at, updated_at, special_instructions, estimated_delivery_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`, r.table),
		o.ID, o.CustomerName, o.CustomerEmail, o.DeliveryAddress, items, string(o.Status),
		o.CreatedAt.UTC(), o.UpdatedAt.UTC(), notes, eta,
	)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("put order %s: duplicate id: %w", o.ID, err)
		}
		return fmt.Errorf("put order %s: %w", o.ID, err)
	}
	return nil
}

// Get returns the order by id, or (nil, nil) when it does not exist.
func (r *OrderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	var (
		o                 domain.Order
		status            string
		items, notes, eta []byte
	)
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT order_id, customer_name, customer_email, delivery_address, items, status,
			created_at, updated_at, special_instructions, estimated_delivery_time
		FROM %s WHERE order_id = $1`, r.table), id,
	).Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.DeliveryAddress, &items, &status,
		&o.CreatedAt, &o.UpdatedAt, &notes, &eta)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	o.Status = domain.OrderStatus(status)
	if !o.Status.Valid() {
		return nil, fmt.Errorf("get order %s: unknown status %q", id, status)
	}
	if err := scanJSONB(items, &o.Items); err != nil {
		return nil, fmt.Errorf("get order %s items: %w", id, err)
	}
	if err := scanJSONB(notes, &o.SpecialInstructions); err != nil {
		return nil, fmt.Errorf("get order %s special_instructions: %w", id, err)
	}
	if err := scanJSONB(eta, &o.EstimatedDeliveryTime); err != nil {
		return nil, fmt.Errorf("get order %s estimated_delivery_time: %w", id, err)
	}
	return &o, nil
}

// MarkDelivered sets the order status to DELIVERED and stamps updated_at.
// The update is unconditional.
func (r *OrderRepo) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET status = $2, updated_at = $3 WHERE order_id = $1`, r.table),
		id, string(domain.StatusDelivered), at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("mark order %s delivered: %w", id, err)
	}
	return nil
}
