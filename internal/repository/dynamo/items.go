package dynamo

import (
	"fmt"

	"fast-delivery-orders/internal/domain"
)

type orderItem struct {
	OrderID               string `dynamodbav:"order_id"`
	CustomerName          string `dynamodbav:"customer_name"`
	CustomerEmail         string `dynamodbav:"customer_email"`
	DeliveryAddress       string `dynamodbav:"delivery_address"`
	Items                 []any  `dynamodbav:"items"`
	Status                string `dynamodbav:"status"`
	CreatedAt             string `dynamodbav:"created_at"`
	UpdatedAt             string `dynamodbav:"updated_at"`
	SpecialInstructions   any    `dynamodbav:"special_instructions,omitempty"`
	EstimatedDeliveryTime any    `dynamodbav:"estimated_delivery_time,omitempty"`
}

type tokenItem struct {
	Token            string `dynamodbav:"tracking_token"`
	OrderID          string `dynamodbav:"order_id"`
	Status           string `dynamodbav:"status"`
	Action           string `dynamodbav:"acao"`
	Customer         string `dynamodbav:"cliente"`
	DeliveredAt      string `dynamodbav:"entregue_em"`
	CreatedAt        string `dynamodbav:"created_at"`
	NotificationSent bool   `dynamodbav:"notification_sent"`
}

func toOrderItem(o *domain.Order) orderItem {
	return orderItem{
		OrderID:               o.ID,
		CustomerName:          o.CustomerName,
		CustomerEmail:         o.CustomerEmail,
		DeliveryAddress:       o.DeliveryAddress,
		Items:                 o.Items,
		Status:                string(o.Status),
		CreatedAt:             domain.FormatTime(o.CreatedAt),
		UpdatedAt:             domain.FormatTime(o.UpdatedAt),
		SpecialInstructions:   o.SpecialInstructions,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
}

func (it orderItem) toDomain() (*domain.Order, error) {
	created, err := domain.ParseTime(it.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("order %s created_at: %w", it.OrderID, err)
	}
	updated, err := domain.ParseTime(it.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("order %s updated_at: %w", it.OrderID, err)
	}
	status := domain.OrderStatus(it.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("order %s: unknown status %q", it.OrderID, it.Status)
	}
	return &domain.Order{
		ID:                    it.OrderID,
		CustomerName:          it.CustomerName,
		CustomerEmail:         it.CustomerEmail,
		DeliveryAddress:       it.DeliveryAddress,
		Items:                 it.Items,
		Status:                status,
		CreatedAt:             created,
		UpdatedAt:             updated,
		SpecialInstructions:   it.SpecialInstructions,
		EstimatedDeliveryTime: it.EstimatedDeliveryTime,
	}, nil
}

func toTokenItem(t domain.TrackingToken) tokenItem {
	return tokenItem{
		Token:            t.Token,
		OrderID:          t.OrderID,
		Status:           t.Status,
		Action:           t.Action,
		Customer:         t.Customer,
		DeliveredAt:      t.DeliveredAt,
		CreatedAt:        domain.FormatTime(t.CreatedAt),
		NotificationSent: t.NotificationSent,
	}
}
