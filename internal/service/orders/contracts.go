//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"fast-delivery-orders/internal/domain"
)

// OrderWriter persists new orders.
type OrderWriter interface {
	Put(ctx context.Context, o *domain.Order) error
}

// EventPublisher sends lifecycle events to the notification channel.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.LifecycleEvent) error
}

// Counter is incremented once per created order.
type Counter interface {
	Inc()
}
