package api

import (
	"context"
	"net/http"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

// GetBannerList fetches the home carousel.
func (l *Live) GetBannerList(ctx context.Context) (*types.Envelope[[]types.Banner], error) {
	return call[[]types.Banner](ctx, l, request{key: config.GetBannerList, method: http.MethodGet})
}

// GetQuickActions fetches the home shortcut tiles.
func (l *Live) GetQuickActions(ctx context.Context) (*types.Envelope[[]types.QuickAction], error) {
	return call[[]types.QuickAction](ctx, l, request{key: config.GetQuickActions, method: http.MethodGet})
}

// GetCategories fetches the flat home categories.
func (l *Live) GetCategories(ctx context.Context) (*types.Envelope[[]types.Category], error) {
	return call[[]types.Category](ctx, l, request{key: config.GetCategories, method: http.MethodGet})
}

// GetHotProducts fetches one page of best sellers.
func (l *Live) GetHotProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error) {
	return call[types.ProductPage](ctx, l, request{key: config.GetHotProducts, method: http.MethodGet, query: p.Query()})
}

// GetNewProducts fetches one page of new arrivals.
func (l *Live) GetNewProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error) {
	return call[types.ProductPage](ctx, l, request{key: config.GetNewProducts, method: http.MethodGet, query: p.Query()})
}
