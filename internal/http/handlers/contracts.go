package handlers

import (
	"context"

	"fast-delivery-orders/internal/domain"
)

type ordersUsecase interface {
	Create(ctx context.Context, in domain.NewOrder) (domain.CreateResult, error)
}

type deliveryUsecase interface {
	MarkDelivered(ctx context.Context, orderID string) (domain.DeliveryResult, error)
}
