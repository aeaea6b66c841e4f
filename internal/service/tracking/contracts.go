//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking_test

package tracking

import (
	"context"

	"fast-delivery-orders/internal/domain"
)

// TokenWriter persists tracking tokens.
type TokenWriter interface {
	Put(ctx context.Context, t domain.TrackingToken) error
}
