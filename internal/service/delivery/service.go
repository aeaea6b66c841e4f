package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/logx"
)

// Service marks orders as delivered.
type Service struct {
	repo             OrderStore
	publisher        EventPublisher
	delivered        Counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

type nopCounter struct{}

func (nopCounter) Inc() {}

// NewService creates a new delivery Service. delivered may be nil.
func NewService(repo OrderStore, pub EventPublisher, delivered Counter, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if delivered == nil {
		delivered = nopCounter{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		publisher:        pub,
		delivered:        delivered,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// MarkDelivered sets the order DELIVERED and publishes the delivered event.
// Calling it again for the same order re-stamps and re-publishes.
func (s *Service) MarkDelivered(ctx context.Context, rawID string) (domain.DeliveryResult, error) {
	orderID, err := validateOrderID(rawID)
	if err != nil {
		return domain.DeliveryResult{}, err
	}

	order, err := s.get(ctx, orderID)
	if err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("load order %s: %w", orderID, err)
	}
	if order == nil {
		s.logger.Warn("order not found", logx.String("order_id", orderID))
		return domain.DeliveryResult{}, apperr.ErrNotFound
	}

	now := s.now()
	if err := s.markDelivered(ctx, orderID, now); err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("update order %s: %w", orderID, err)
	}
	s.delivered.Inc()
	s.logger.Info("order delivered",
		logx.String("event", "order_delivered"),
		logx.String("order_id", orderID),
		logx.String("previous_status", string(order.Status)),
	)

	if err := s.publish(ctx, domain.OrderDelivered(*order, now)); err != nil {
		return domain.DeliveryResult{}, fmt.Errorf("notify order %s delivered: %w", orderID, err)
	}

	return domain.DeliveryResult{
		OrderID:     orderID,
		Status:      domain.StatusDelivered,
		DeliveredAt: now,
	}, nil
}

func (s *Service) get(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Get(ctx, id)
}

func (s *Service) markDelivered(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.MarkDelivered(ctx, id, at)
}

func (s *Service) publish(ctx context.Context, ev domain.LifecycleEvent) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.publisher.Publish(ctx, ev)
}

func validateOrderID(raw string) (string, error) {
	orderID := strings.TrimSpace(raw)
	if orderID == "" {
		return "", apperr.ErrMissingOrderID
	}
	return orderID, nil
}
