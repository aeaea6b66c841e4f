package domain

// OrderStatus represents the fulfillment status of an order.
type OrderStatus string

// List of possible order statuses
const (
	StatusPending   OrderStatus = "PENDING"
	StatusDelivered OrderStatus = "DELIVERED"
)

var allowedStatuses = [...]OrderStatus{
	StatusPending, StatusDelivered,
}

// Valid checks if the OrderStatus is known
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}
