package api

import (
	"context"
	"net/http"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

func (l *Live) GetCartList(ctx context.Context) (*types.Envelope[[]types.CartShop], error) {
	return call[[]types.CartShop](ctx, l, request{key: config.GetCartList, method: http.MethodGet})
}

func (l *Live) AddToCart(ctx context.Context, req types.AddToCartRequest) (*types.Envelope[types.ActionAck], error) {
	return call[types.ActionAck](ctx, l, request{key: config.AddToCart, method: http.MethodPost, body: req})
}

func (l *Live) UpdateCartQuantity(ctx context.Context, req types.UpdateCartRequest) (*types.Envelope[types.ActionAck], error) {
	return call[types.ActionAck](ctx, l, request{key: config.UpdateCartQuantity, method: http.MethodPut, body: req})
}

// DeleteCartItem removes a cart line. The id travels in the path.
func (l *Live) DeleteCartItem(ctx context.Context, cartItemID int) (*types.Envelope[types.ActionAck], error) {
	return call[types.ActionAck](ctx, l, request{key: config.DeleteCartItem, method: http.MethodDelete, suffix: intSuffix(cartItemID)})
}
