package api

import (
	"context"
	"net/http"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

// CreateOrder places an order; the backend assigns the id.
func (l *Live) CreateOrder(ctx context.Context, req types.CreateOrderRequest) (*types.Envelope[types.OrderAck], error) {
	return call[types.OrderAck](ctx, l, request{key: config.CreateOrder, method: http.MethodPost, body: req})
}

func (l *Live) GetOrderDetail(ctx context.Context, orderID string) (*types.Envelope[types.OrderDetail], error) {
	return call[types.OrderDetail](ctx, l, request{key: config.GetOrderDetail, method: http.MethodGet, suffix: idSuffix(orderID)})
}

// CancelOrder posts an empty object to the order's cancel path.
func (l *Live) CancelOrder(ctx context.Context, orderID string) (*types.Envelope[types.ActionAck], error) {
	return call[types.ActionAck](ctx, l, request{key: config.CancelOrder, method: http.MethodPost, suffix: idSuffix(orderID)})
}
