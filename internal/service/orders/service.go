package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/logx"

	"github.com/google/uuid"
)

// Service creates orders.
type Service struct {
	repo             OrderWriter
	publisher        EventPublisher
	created          Counter
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

type nopCounter struct{}

func (nopCounter) Inc() {}

// NewService creates a new orders Service. created may be nil.
func NewService(repo OrderWriter, pub EventPublisher, created Counter, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if created == nil {
		created = nopCounter{}
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		publisher:        pub,
		created:          created,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create validates in, stores a PENDING order and publishes the created event.
// The order stays stored when publishing fails.
func (s *Service) Create(ctx context.Context, in domain.NewOrder) (domain.CreateResult, error) {
	if err := validate(in); err != nil {
		s.logger.Warn("order validation failed", logx.Err(err))
		return domain.CreateResult{}, err
	}

	now := s.now()
	o := &domain.Order{
		ID:                    s.newID(),
		CustomerName:          in.CustomerName,
		CustomerEmail:         in.CustomerEmail,
		DeliveryAddress:       in.DeliveryAddress,
		Items:                 in.Items,
		Status:                domain.StatusPending,
		CreatedAt:             now,
		UpdatedAt:             now,
		SpecialInstructions:   in.SpecialInstructions,
		EstimatedDeliveryTime: in.EstimatedDeliveryTime,
	}

	if err := s.put(ctx, o); err != nil {
		return domain.CreateResult{}, fmt.Errorf("store order %s: %w", o.ID, err)
	}
	s.created.Inc()
	s.logger.Info("order created",
		logx.String("event", "order_created"),
		logx.String("order_id", o.ID),
		logx.Int("items", len(o.Items)),
	)

	if err := s.publish(ctx, domain.OrderCreated(*o)); err != nil {
		return domain.CreateResult{}, fmt.Errorf("notify order %s created: %w", o.ID, err)
	}

	return domain.CreateResult{OrderID: o.ID, Status: o.Status}, nil
}

func (s *Service) put(ctx context.Context, o *domain.Order) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Put(ctx, o)
}

func (s *Service) publish(ctx context.Context, ev domain.LifecycleEvent) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.publisher.Publish(ctx, ev)
}

func validate(in domain.NewOrder) error {
	switch {
	case blank(in.CustomerName):
		return apperr.MissingField("customer_name")
	case blank(in.CustomerEmail):
		return apperr.MissingField("customer_email")
	case blank(in.DeliveryAddress):
		return apperr.MissingField("delivery_address")
	case len(in.Items) == 0:
		return apperr.MissingField("items")
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
