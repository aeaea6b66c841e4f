package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"fast-delivery-orders/internal/http/payload"
	"fast-delivery-orders/internal/logx"
)

// OrderIDParam is the URL parameter carrying the order id.
const OrderIDParam = "order_id"

// Handlers holds HTTP handlers and their dependencies.
type Handlers struct {
	Logger   logx.Logger
	orders   ordersUsecase
	delivery deliveryUsecase
}

// New creates a Handlers instance. A nil logger is replaced by a no-op logger.
func New(logger logx.Logger, orders ordersUsecase, delivery deliveryUsecase) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{Logger: logger, orders: orders, delivery: delivery}
}

// Ping handles GET /ping and returns 200 with {"message":"pong"}.
func (h *Handlers) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, map[string]string{"message": "pong"})
}

// HealthcheckHead handles HEAD /healthcheck and returns 204 No Content.
func (h *Handlers) HealthcheckHead(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// NotFound returns a JSON 404 error for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusNotFound, payload.Error{Error: "rota não encontrada"})
}

// CreateOrder handles POST /orders.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	in, err := payload.DecodeCreateOrder(http.MaxBytesReader(w, r.Body, bodyLimit))
	if err != nil {
		writeError(h.Logger, w, r, err)
		return
	}

	res, err := h.orders.Create(r.Context(), in)
	if err != nil {
		writeError(h.Logger, w, r, err)
		return
	}
	writeJSON(h.Logger, w, r, http.StatusCreated, payload.NewCreated(res))
}

// MarkDelivered handles POST /orders/{order_id}/delivered.
func (h *Handlers) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	res, err := h.delivery.MarkDelivered(r.Context(), chi.URLParam(r, OrderIDParam))
	if err != nil {
		writeError(h.Logger, w, r, err)
		return
	}
	writeJSON(h.Logger, w, r, http.StatusOK, payload.NewDelivered(res))
}
