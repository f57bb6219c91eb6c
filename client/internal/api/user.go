package api

import (
	"context"
	"net/http"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

func (l *Live) GetUserInfo(ctx context.Context) (*types.Envelope[types.UserInfo], error) {
	return call[types.UserInfo](ctx, l, request{key: config.GetUserInfo, method: http.MethodGet})
}

func (l *Live) GetUserOrders(ctx context.Context) (*types.Envelope[types.OrderCounts], error) {
	return call[types.OrderCounts](ctx, l, request{key: config.GetUserOrders, method: http.MethodGet})
}

func (l *Live) GetUserPoints(ctx context.Context) (*types.Envelope[types.UserPoints], error) {
	return call[types.UserPoints](ctx, l, request{key: config.GetUserPoints, method: http.MethodGet})
}
