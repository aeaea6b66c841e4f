// Package notify publishes order lifecycle events to the notification channel.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/logx"
)

// Publisher sends a lifecycle event. Delivery is fire-and-forget: no retries.
type Publisher interface {
	Publish(ctx context.Context, ev domain.LifecycleEvent) error
}

// Encode renders the event as the JSON message carried by every channel.
func Encode(ev domain.LifecycleEvent) (string, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("encode event for order %s: %w", ev.OrderID, err)
	}
	return string(b), nil
}

// Nop drops every event. Used when no channel is configured.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, domain.LifecycleEvent) error { return nil }

// Sink consumes a raw event message in-process.
type Sink func(ctx context.Context, message string) error

// Direct hands events straight to an in-process sink, bypassing any broker.
// Sink failures are logged and not returned: as with a broker, a relay failure
// never fails the producer.
type Direct struct {
	sink   Sink
	logger logx.Logger
}

// NewDirect creates a Direct publisher.
func NewDirect(sink Sink, logger logx.Logger) *Direct {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Direct{sink: sink, logger: logger}
}

// Publish implements Publisher.
func (d *Direct) Publish(ctx context.Context, ev domain.LifecycleEvent) error {
	msg, err := Encode(ev)
	if err != nil {
		return err
	}
	if err := d.sink(ctx, msg); err != nil {
		d.logger.Error("direct relay failed",
			logx.String("order_id", ev.OrderID),
			logx.String("acao", ev.Action),
			logx.Err(err),
		)
	}
	return nil
}
