// Package tracking turns lifecycle event messages into tracking tokens.
package tracking

import (
	"context"
	"errors"
	"strings"
	"time"

	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/logx"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrRecordFailed is returned by Sink when the message could not be relayed.
var ErrRecordFailed = errors.New("tracking record failed")

// Processor stores one tracking token per lifecycle event message.
// Tokens are not deduplicated.
type Processor struct {
	tokens           TokenWriter
	outcomes         *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newToken         func() string
}

// NewProcessor creates a Processor. outcomes may be nil; when set it must carry the label outcome.
func NewProcessor(tokens TokenWriter, outcomes *prometheus.CounterVec, timeout time.Duration, logger logx.Logger) *Processor {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{
		tokens:           tokens,
		outcomes:         outcomes,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newToken:         uuid.NewString,
	}
}

// Handle relays one message. It never returns an error: failures are logged and reported as OutcomeFailed.
func (p *Processor) Handle(ctx context.Context, message string) Outcome {
	o := p.handle(ctx, message)
	p.Observe(o)
	return o
}

// Observe records an outcome decided outside Handle, such as an undecodable envelope.
func (p *Processor) Observe(o Outcome) {
	if p.outcomes != nil {
		p.outcomes.WithLabelValues(string(o)).Inc()
	}
}

// Sink adapts Handle to an error-returning consumer.
func (p *Processor) Sink(ctx context.Context, message string) error {
	if p.Handle(ctx, message) == OutcomeFailed {
		return ErrRecordFailed
	}
	return nil
}

func (p *Processor) handle(ctx context.Context, message string) Outcome {
	ev, err := decodeEvent(message)
	if err != nil {
		p.logger.Error("tracking message decode failed", logx.Err(err))
		return OutcomeFailed
	}
	if strings.TrimSpace(ev.OrderID) == "" {
		p.logger.Warn("tracking message without order id, skipping",
			logx.String("acao", ev.Action),
		)
		return OutcomeSkipped
	}

	tok := p.token(ev)
	if err := p.put(ctx, tok); err != nil {
		p.logger.Error("tracking token store failed",
			logx.String("order_id", tok.OrderID),
			logx.String("tracking_token", tok.Token),
			logx.Err(err),
		)
		return OutcomeFailed
	}

	p.logger.Info("tracking token stored",
		logx.String("order_id", tok.OrderID),
		logx.String("tracking_token", tok.Token),
		logx.String("acao", tok.Action),
	)
	return OutcomeStored
}

func (p *Processor) token(ev domain.LifecycleEvent) domain.TrackingToken {
	now := p.now()

	customer := ev.Customer
	if customer == "" {
		customer = domain.DefaultCustomer
	}
	deliveredAt := ev.DeliveredAt
	if deliveredAt == "" {
		deliveredAt = domain.FormatTime(now)
	}

	return domain.TrackingToken{
		Token:            p.newToken(),
		OrderID:          ev.OrderID,
		Status:           ev.Status,
		Action:           ev.Action,
		Customer:         customer,
		DeliveredAt:      deliveredAt,
		CreatedAt:        now,
		NotificationSent: true,
	}
}

func (p *Processor) put(ctx context.Context, t domain.TrackingToken) error {
	ctx, cancel := context.WithTimeout(ctx, p.operationTimeout)
	defer cancel()
	return p.tokens.Put(ctx, t)
}
