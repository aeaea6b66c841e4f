// Package apigw adapts the order services to API Gateway proxy Lambda events.
package apigw

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"fast-delivery-orders/internal/apperr"
	"fast-delivery-orders/internal/domain"
	"fast-delivery-orders/internal/http/payload"
	"fast-delivery-orders/internal/logx"

	"github.com/aws/aws-lambda-go/events"
)

// OrderIDParam is the path parameter carrying the order id.
const OrderIDParam = "order_id"

type ordersUsecase interface {
	Create(ctx context.Context, in domain.NewOrder) (domain.CreateResult, error)
}

type deliveryUsecase interface {
	MarkDelivered(ctx context.Context, orderID string) (domain.DeliveryResult, error)
}

// Handlers holds the Lambda handlers of order intake and delivery marking.
type Handlers struct {
	orders   ordersUsecase
	delivery deliveryUsecase
	logger   logx.Logger
}

// New creates Handlers. A nil usecase is allowed when its handler is not served.
func New(orders ordersUsecase, delivery deliveryUsecase, logger logx.Logger) *Handlers {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Handlers{orders: orders, delivery: delivery, logger: logger}
}

// CreateOrder handles POST /orders.
func (h *Handlers) CreateOrder(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("intake event received",
		logx.String("request_id", req.RequestContext.RequestID),
		logx.String("path", req.Path),
	)

	body, err := requestBody(req)
	if err != nil {
		return h.fail("intake", err), nil
	}
	in, err := payload.DecodeCreateOrder(strings.NewReader(body))
	if err != nil {
		return h.fail("intake", err), nil
	}

	res, err := h.orders.Create(ctx, in)
	if err != nil {
		return h.fail("intake", err), nil
	}
	return payload.Proxy(http.StatusCreated, payload.NewCreated(res)), nil
}

// MarkDelivered handles POST /orders/{order_id}/delivered.
func (h *Handlers) MarkDelivered(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	orderID := req.PathParameters[OrderIDParam]
	h.logger.Info("delivery event received",
		logx.String("request_id", req.RequestContext.RequestID),
		logx.String("order_id", orderID),
	)

	res, err := h.delivery.MarkDelivered(ctx, orderID)
	if err != nil {
		return h.fail("delivery", err), nil
	}
	return payload.Proxy(http.StatusOK, payload.NewDelivered(res)), nil
}

func (h *Handlers) fail(op string, err error) events.APIGatewayProxyResponse {
	resp := payload.ProxyError(err)
	if resp.StatusCode >= http.StatusInternalServerError {
		h.logger.Error(op+" failed", logx.Err(err))
	} else {
		h.logger.Warn(op+" rejected", logx.Int("status", resp.StatusCode), logx.Err(err))
	}
	return resp
}

func requestBody(req events.APIGatewayProxyRequest) (string, error) {
	if !req.IsBase64Encoded {
		return req.Body, nil
	}
	b, err := base64.StdEncoding.DecodeString(req.Body)
	if err != nil {
		return "", apperr.ErrMalformedBody
	}
	return string(b), nil
}
