package envelope

import (
	"context"
	"encoding/json"
	"net/http"

	"fast-delivery-orders/internal/http/payload"
	"fast-delivery-orders/internal/logx"
	"fast-delivery-orders/internal/service/tracking"

	"github.com/aws/aws-lambda-go/events"
)

// Relay relays one event message.
type Relay interface {
	Handle(ctx context.Context, message string) tracking.Outcome
	Observe(o tracking.Outcome)
}

// Handler is the notification relay Lambda handler.
type Handler struct {
	relay  Relay
	logger logx.Logger
}

// NewHandler creates a relay Handler.
func NewHandler(relay Relay, logger logx.Logger) *Handler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handler{relay: relay, logger: logger}
}

// Handle relays every record of an SNS, SQS or mixed batch. It answers 200 with the batch summary,
// or 500 when the batch itself cannot be read. It never returns an error, so the runtime does not redeliver.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("relay event received", logx.Int("bytes", len(raw)))

	msgs, err := Decode(raw)
	if err != nil {
		h.logger.Error("relay batch rejected", logx.Err(err))
		return payload.Proxy(http.StatusInternalServerError, payload.Internal()), nil
	}

	sum := h.Process(ctx, msgs)
	h.logger.Info("relay batch processed",
		logx.Int("received", sum.Received),
		logx.Int("stored", sum.Stored),
		logx.Int("skipped", sum.Skipped),
		logx.Int("failed", sum.Failed),
	)
	return payload.Proxy(http.StatusOK, payload.NewRelayed(sum)), nil
}

// Process relays already decoded messages one by one.
func (h *Handler) Process(ctx context.Context, msgs []Message) tracking.Summary {
	var sum tracking.Summary
	for _, m := range msgs {
		if m.Err != nil {
			h.logger.Error("relay record unreadable",
				logx.String("message_id", m.ID),
				logx.String("source", string(m.Source)),
				logx.Err(m.Err),
			)
			h.relay.Observe(tracking.OutcomeFailed)
			sum.Add(tracking.OutcomeFailed)
			continue
		}
		sum.Add(h.relay.Handle(ctx, m.Body))
	}
	return sum
}
