package notify

import (
	"context"

	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/logx"

	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented counts and logs every publish attempt of the wrapped Publisher.
type Instrumented struct {
	next    Publisher
	backend string
	results *prometheus.CounterVec
	logger  logx.Logger
}

// NewInstrumented wraps next. results must carry the labels backend and result.
func NewInstrumented(next Publisher, backend string, results *prometheus.CounterVec, logger logx.Logger) *Instrumented {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Instrumented{next: next, backend: backend, results: results, logger: logger}
}

// Publish implements Publisher.
func (p *Instrumented) Publish(ctx context.Context, ev domain.LifecycleEvent) error {
	err := p.next.Publish(ctx, ev)
	if err != nil {
		p.results.WithLabelValues(p.backend, "error").Inc()
		p.logger.Error("event publish failed",
			logx.String("backend", p.backend),
			logx.String("order_id", ev.OrderID),
			logx.String("acao", ev.Action),
			logx.Err(err),
		)
		return err
	}

	p.results.WithLabelValues(p.backend, "ok").Inc()
	p.logger.Info("event published",
		logx.String("backend", p.backend),
		logx.String("order_id", ev.OrderID),
		logx.String("acao", ev.Action),
	)
	return nil
}
