package domain

import "time"

// Order is the durable representation of a customer order.
// Items and the optional fields hold client JSON as decoded by encoding/json
// (string, float64, bool, []any, map[string]any); they are stored verbatim.
type Order struct {
	ID                    string
	CustomerName          string
	CustomerEmail         string
	DeliveryAddress       string
	Items                 []any
	Status                OrderStatus
	CreatedAt             time.Time
	UpdatedAt             time.Time
	SpecialInstructions   any
	EstimatedDeliveryTime any
}

// NewOrder carries the client-supplied fields of an order to be created.
// Optional fields are nil when the client did not send them.
type NewOrder struct {
	CustomerName          string
	CustomerEmail         string
	DeliveryAddress       string
	Items                 []any
	SpecialInstructions   any
	EstimatedDeliveryTime any
}

// CreateResult is returned by order intake.
type CreateResult struct {
	OrderID string
	Status  OrderStatus
}

// DeliveryResult is returned after an order was marked delivered.
type DeliveryResult struct {
	OrderID     string
	Status      OrderStatus
	DeliveredAt time.Time
}
