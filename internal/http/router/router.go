package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fast-delivery-orders/internal/http/handlers"
)

// Option customizes the router.
type Option func(chi.Router)

// WithMiddleware appends middlewares after the base stack.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(r chi.Router) { r.Use(mw...) }
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(r chi.Router) { r.Method(http.MethodGet, "/metrics", h) }
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, opts ...Option) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	for _, opt := range opts {
		opt(r)
	}

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Post("/orders", h.CreateOrder)
	r.Post("/orders/{"+handlers.OrderIDParam+"}/delivered", h.MarkDelivered)
	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
