package domain

import "time"

// DefaultCustomer is stored when an event carries no customer name.
const DefaultCustomer = "N/A"

// TrackingToken is an audit record written for every lifecycle event received.
// Tokens are never deduplicated: a redelivered event produces a new token.
type TrackingToken struct {
	Token            string
	OrderID          string
	Status           string
	Action           string
	Customer         string
	DeliveredAt      string
	CreatedAt        time.Time
	NotificationSent bool
}
