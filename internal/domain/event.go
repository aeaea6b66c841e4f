package domain

import "time"

// Wire labels of lifecycle events.
const (
	EventStatusCreated   = "Criado"
	EventStatusDelivered = "Entregue"

	ActionCreated   = "novo_pedido"
	ActionDelivered = "pedido_entregue"
)

// LifecycleEvent describes an order state transition published to the notification channel.
type LifecycleEvent struct {
	OrderID     string `json:"pedido"`
	Status      string `json:"status"`
	Action      string `json:"acao"`
	Customer    string `json:"cliente,omitempty"`
	DeliveredAt string `json:"entregue_em,omitempty"`
}

// OrderCreated builds the event emitted after intake.
func OrderCreated(o Order) LifecycleEvent {
	return LifecycleEvent{
		OrderID: o.ID,
		Status:  EventStatusCreated,
		Action:  ActionCreated,
	}
}

// OrderDelivered builds the event emitted after an order was marked delivered.
func OrderDelivered(o Order, at time.Time) LifecycleEvent {
	return LifecycleEvent{
		OrderID:     o.ID,
		Status:      EventStatusDelivered,
		Action:      ActionDelivered,
		Customer:    o.CustomerName,
		DeliveredAt: FormatTime(at),
	}
}
