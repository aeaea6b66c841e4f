// Package payload holds the JSON request and response bodies shared by the HTTP service and the Lambda handlers.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
)

// CreateOrderRequest is the order intake body. Unknown fields are ignored.
// items must be an array but its elements may be any JSON value; the optional
// fields accept any JSON value too.
type CreateOrderRequest struct {
	CustomerName          string `json:"customer_name"`
	CustomerEmail         string `json:"customer_email"`
	DeliveryAddress       string `json:"delivery_address"`
	Items                 []any  `json:"items"`
	SpecialInstructions   any    `json:"special_instructions,omitempty"`
	EstimatedDeliveryTime any    `json:"estimated_delivery_time,omitempty"`
}

// ToDomain converts the request into domain.NewOrder.
func (r CreateOrderRequest) ToDomain() domain.NewOrder {
	return domain.NewOrder{
		CustomerName:          r.CustomerName,
		CustomerEmail:         r.CustomerEmail,
		DeliveryAddress:       r.DeliveryAddress,
		Items:                 r.Items,
		SpecialInstructions:   r.SpecialInstructions,
		EstimatedDeliveryTime: r.EstimatedDeliveryTime,
	}
}

// DecodeCreateOrder reads a single JSON object from r. An empty body decodes as {}.
func DecodeCreateOrder(r io.Reader) (domain.NewOrder, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.NewOrder{}, fmt.Errorf("%w: %v", apperr.ErrMalformedBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.NewOrder{}, nil
	}

	var req CreateOrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		return domain.NewOrder{}, fmt.Errorf("%w: %v", apperr.ErrMalformedBody, err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return domain.NewOrder{}, fmt.Errorf("%w: trailing data", apperr.ErrMalformedBody)
	}
	return req.ToDomain(), nil
}
