//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery_test

package delivery

import (
	"context"
	"time"

	"fast-delivery-orders/internal/domain"
)

// OrderStore reads orders and marks them delivered.
type OrderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	MarkDelivered(ctx context.Context, id string, at time.Time) error
}

// EventPublisher sends lifecycle events to the notification channel.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.LifecycleEvent) error
}

// Counter is incremented once per successful delivery marking.
type Counter interface {
	Inc()
}
