package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// NewOrdersCreatedTotal returns a counter of orders persisted by intake
func NewOrdersCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders persisted by intake",
	})
}

// NewOrdersDeliveredTotal returns a counter of successful delivery markings, repeats included
func NewOrdersDeliveredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_delivered_total",
		Help: "Total number of delivery markings, repeated markings included",
	})
}

// NewRelayRecordsTotal returns a counter of relay records by outcome (stored, skipped, failed)
func NewRelayRecordsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_records_total",
		Help: "Total number of notification records handled by the relay, by outcome",
	}, []string{"outcome"})
}

// NewNotificationsPublishedTotal returns a counter of publish attempts by backend and result
func NewNotificationsPublishedTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_published_total",
		Help: "Total number of lifecycle event publish attempts, by backend and result",
	}, []string{"backend", "result"})
}

// Register registers c with reg. If an equal collector is already registered the existing one is returned,
// so warm Lambda containers and tests can rebuild the container without panicking.
func Register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

// NewHTTPRequestsTotal returns a counter of local HTTP requests by method, route pattern and status
func NewHTTPRequestsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
}

// NewHTTPRequestDuration returns a histogram of local HTTP request latency
func NewHTTPRequestDuration() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
}
