package payload_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/http/payload"
	"fast-delivery-orders/internal/service/tracking"
)

func TestDecodeCreateOrder(t *testing.T) {
	t.Parallel()

	got, err := payload.DecodeCreateOrder(strings.NewReader(
		`{"customer_name":"Ana","customer_email":"a@x.com","delivery_address":"Rua 1","items":["pizza"],"special_instructions":"no onions","coupon":"X"}`))
	require.NoError(t, err)
	require.Equal(t, "Ana", got.CustomerName)
	require.Equal(t, []any{"pizza"}, got.Items)
	require.Equal(t, "no onions", got.SpecialInstructions)
	require.Nil(t, got.EstimatedDeliveryTime)
}

func TestDecodeCreateOrder_KeepsStructuredValues(t *testing.T) {
	t.Parallel()

	got, err := payload.DecodeCreateOrder(strings.NewReader(
		`{"customer_name":"Ana","customer_email":"a@x.com","delivery_address":"Rua 1",` +
			`"items":[{"name":"pizza","qty":2},"soda"],"estimated_delivery_time":45,"special_instructions":{"gate":"B"}}`))
	require.NoError(t, err)
	require.Equal(t, []any{map[string]any{"name": "pizza", "qty": float64(2)}, "soda"}, got.Items)
	require.Equal(t, float64(45), got.EstimatedDeliveryTime)
	require.Equal(t, map[string]any{"gate": "B"}, got.SpecialInstructions)
}

func TestDecodeCreateOrder_EmptyBody(t *testing.T) {
	t.Parallel()

	got, err := payload.DecodeCreateOrder(strings.NewReader("  "))
	require.NoError(t, err)
	require.Equal(t, domain.NewOrder{}, got)
}

func TestDecodeCreateOrder_Malformed(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{`, `[]`, `{"items":"pizza"}`, `{} {}`} {
		_, err := payload.DecodeCreateOrder(strings.NewReader(body))
		require.ErrorIs(t, err, apperr.ErrMalformedBody, body)
	}
}

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing field", fmt.Errorf("wrap: %w", apperr.MissingField("customer_email")), http.StatusBadRequest, "Campo obrigatório ausente: customer_email"},
		{"missing order id", apperr.ErrMissingOrderID, http.StatusBadRequest, "order_id é obrigatório"},
		{"malformed", apperr.ErrMalformedBody, http.StatusBadRequest, "Corpo da requisição inválido"},
		{"not found", apperr.ErrNotFound, http.StatusNotFound, "Pedido não encontrado"},
		{"other", errors.New("db down"), http.StatusInternalServerError, "Erro interno na função Lambda."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status, body := payload.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestBodies_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(payload.NewCreated(domain.CreateResult{OrderID: "o-1", Status: domain.StatusPending}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mensagem":"Pedido criado com sucesso","order_id":"o-1","status":"PENDING"}`, string(b))

	b, err = json.Marshal(payload.NewDelivered(domain.DeliveryResult{
		OrderID:     "o-1",
		Status:      domain.StatusDelivered,
		DeliveredAt: time.Date(2025, 1, 2, 3, 4, 5, 6000, time.UTC),
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mensagem":"Pedido marcado como entregue e notificação enviada","order_id":"o-1","status":"DELIVERED","delivered_at":"2025-01-02T03:04:05.000006"}`, string(b))

	b, err = json.Marshal(payload.NewRelayed(tracking.Summary{Received: 3, Stored: 2, Skipped: 1}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"mensagem":"Notificações processadas com sucesso","processed_records":3,"stored":2,"skipped":1,"failed":0}`, string(b))

	b, err = json.Marshal(payload.Internal())
	require.NoError(t, err)
	assert.JSONEq(t, `{"erro":"Erro interno na função Lambda."}`, string(b))
}

func TestProxy(t *testing.T) {
	t.Parallel()

	resp := payload.Proxy(http.StatusCreated, payload.NewCreated(domain.CreateResult{OrderID: "o-1", Status: domain.StatusPending}))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"mensagem":"Pedido criado com sucesso","order_id":"o-1","status":"PENDING"}`, resp.Body)

	resp = payload.Proxy(http.StatusOK, func() {})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"erro":"Erro interno na função Lambda."}`, resp.Body)

	resp = payload.ProxyError(apperr.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"erro":"Pedido não encontrado"}`, resp.Body)
}
