package api

import (
	"context"
	"net/http"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

// GetCategoryList fetches category groups with their subcategories.
func (l *Live) GetCategoryList(ctx context.Context) (*types.Envelope[[]types.CategoryGroup], error) {
	return call[[]types.CategoryGroup](ctx, l, request{key: config.GetCategoryList, method: http.MethodGet})
}

// GetCategoryProducts fetches the products of one category.
func (l *Live) GetCategoryProducts(ctx context.Context, p types.CategoryProductsParams) (*types.Envelope[types.CategoryProductPage], error) {
	return call[types.CategoryProductPage](ctx, l, request{key: config.GetCategoryProducts, method: http.MethodGet, query: p.Query()})
}

// GetSeckillInfo fetches the current flash-sale session.
func (l *Live) GetSeckillInfo(ctx context.Context) (*types.Envelope[types.SeckillInfo], error) {
	return call[types.SeckillInfo](ctx, l, request{key: config.GetSeckillInfo, method: http.MethodGet})
}

// GetSeckillProducts fetches the products of a flash-sale session.
func (l *Live) GetSeckillProducts(ctx context.Context, p types.SeckillProductsParams) (*types.Envelope[types.SeckillProductPage], error) {
	return call[types.SeckillProductPage](ctx, l, request{key: config.GetSeckillProducts, method: http.MethodGet, query: p.Query()})
}

// SearchProducts runs a keyword search on the backend.
func (l *Live) SearchProducts(ctx context.Context, p types.SearchParams) (*types.Envelope[types.SearchResult], error) {
	return call[types.SearchResult](ctx, l, request{key: config.SearchProducts, method: http.MethodGet, query: p.Query()})
}

// GetHotKeywords fetches the trending search terms.
func (l *Live) GetHotKeywords(ctx context.Context) (*types.Envelope[[]string], error) {
	return call[[]string](ctx, l, request{key: config.GetHotKeywords, method: http.MethodGet})
}
