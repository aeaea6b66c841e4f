package payload

import (
	"errors"
	"fmt"
	"net/http"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/service/tracking"
)

// Response messages.
const (
	MsgOrderCreated    = "Pedido criado com sucesso"
	MsgOrderDelivered  = "Pedido marcado como entregue e notificação enviada"
	MsgRelayProcessed  = "Notificações processadas com sucesso"
	MsgMissingField    = "Campo obrigatório ausente: %s"
	MsgOrderIDRequired = "order_id é obrigatório"
	MsgMalformedBody   = "Corpo da requisição inválido"
	MsgOrderNotFound   = "Pedido não encontrado"
	MsgInternal        = "Erro interno na função Lambda."
)

// Created is the 201 body of order intake.
type Created struct {
	Message string `json:"mensagem"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// NewCreated builds the intake success body.
func NewCreated(res domain.CreateResult) Created {
	return Created{Message: MsgOrderCreated, OrderID: res.OrderID, Status: string(res.Status)}
}

// Delivered is the 200 body of delivery marking.
type Delivered struct {
	Message     string `json:"mensagem"`
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	DeliveredAt string `json:"delivered_at"`
}

// NewDelivered builds the delivery success body.
func NewDelivered(res domain.DeliveryResult) Delivered {
	return Delivered{
		Message:     MsgOrderDelivered,
		OrderID:     res.OrderID,
		Status:      string(res.Status),
		DeliveredAt: domain.FormatTime(res.DeliveredAt),
	}
}

// Relayed is the 200 body of the notification relay.
// ProcessedRecords is the number of records received, whatever their outcome.
type Relayed struct {
	Message          string `json:"mensagem"`
	ProcessedRecords int    `json:"processed_records"`
	Stored           int    `json:"stored"`
	Skipped          int    `json:"skipped"`
	Failed           int    `json:"failed"`
}

// NewRelayed builds the relay body from a batch summary.
func NewRelayed(sum tracking.Summary) Relayed {
	return Relayed{
		Message:          MsgRelayProcessed,
		ProcessedRecords: sum.Received,
		Stored:           sum.Stored,
		Skipped:          sum.Skipped,
		Failed:           sum.Failed,
	}
}

// Error is the body of every failure response.
type Error struct {
	Error string `json:"erro"`
}

// Internal is the generic 500 body.
func Internal() Error {
	return Error{Error: MsgInternal}
}

// FromError maps err to a status code and error body.
func FromError(err error) (int, Error) {
	var missing *apperr.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, Error{Error: fmt.Sprintf(MsgMissingField, missing.Field)}
	case errors.Is(err, apperr.ErrMissingOrderID):
		return http.StatusBadRequest, Error{Error: MsgOrderIDRequired}
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest, Error{Error: MsgMalformedBody}
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, Error{Error: MsgOrderNotFound}
	default:
		return http.StatusInternalServerError, Internal()
	}
}
