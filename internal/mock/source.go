// Package mock serves every points-mall operation from static fixtures after
// a simulated network delay. Its method set mirrors the live source so the two
// are interchangeable behind the client facade.
package mock

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/xinfuli/points-mall/internal/types"
)

// DelayFunc simulates network latency. It returns ctx.Err() if ctx ends first.
type DelayFunc func(ctx context.Context) error

// RandomDelay waits a uniformly random 300-800ms.
func RandomDelay(ctx context.Context) error {
	return Sleep(ctx, 300*time.Millisecond+rand.N(500*time.Millisecond))
}

// NoDelay returns immediately.
func NoDelay(ctx context.Context) error { return ctx.Err() }

// Sleep waits d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Source answers operations from fixtures. It is safe for concurrent use.
type Source struct {
	delay DelayFunc
	now   func() time.Time

	lastOrderMillis atomic.Int64
}

// NewSource returns a Source using delay, or RandomDelay when delay is nil.
func NewSource(delay DelayFunc) *Source {
	if delay == nil {
		delay = RandomDelay
	}
	return &Source{delay: delay, now: time.Now}
}

// reply waits out the delay and wraps data in a success envelope.
func reply[T any](ctx context.Context, s *Source, data T) (*types.Envelope[T], error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	return types.Success(data), nil
}

// ------------------------------
// Home
// ------------------------------

func (s *Source) GetBannerList(ctx context.Context) (*types.Envelope[[]types.Banner], error) {
	return reply(ctx, s, cloneSlice(bannerList))
}

func (s *Source) GetQuickActions(ctx context.Context) (*types.Envelope[[]types.QuickAction], error) {
	return reply(ctx, s, cloneSlice(quickActions))
}

func (s *Source) GetUserPoints(ctx context.Context) (*types.Envelope[types.UserPoints], error) {
	return reply(ctx, s, userPoints)
}

func (s *Source) GetCategories(ctx context.Context) (*types.Envelope[[]types.Category], error) {
	return reply(ctx, s, cloneSlice(categories))
}

// GetHotProducts returns the whole product fixture; the pagination is echoed
// but not applied.
func (s *Source) GetHotProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error) {
	return reply(ctx, s, types.ProductPage{
		List:  cloneSlice(products),
		Total: len(products),
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// GetNewProducts returns the products from the sixth on. Total still counts
// the whole fixture.
func (s *Source) GetNewProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error) {
	return reply(ctx, s, types.ProductPage{
		List:  cloneSlice(products[5:]),
		Total: len(products),
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// ------------------------------
// Category
// ------------------------------

func (s *Source) GetCategoryList(ctx context.Context) (*types.Envelope[[]types.CategoryGroup], error) {
	return reply(ctx, s, cloneCategoryList())
}

func (s *Source) GetCategoryProducts(ctx context.Context, p types.CategoryProductsParams) (*types.Envelope[types.CategoryProductPage], error) {
	return reply(ctx, s, types.CategoryProductPage{
		List:       cloneSlice(products),
		Total:      len(products),
		CategoryID: p.CategoryID,
		Page:       p.Page,
		Limit:      p.Limit,
	})
}

// ------------------------------
// Seckill
// ------------------------------

func (s *Source) GetSeckillInfo(ctx context.Context) (*types.Envelope[types.SeckillInfo], error) {
	return reply(ctx, s, seckillInfo)
}

func (s *Source) GetSeckillProducts(ctx context.Context, p types.SeckillProductsParams) (*types.Envelope[types.SeckillProductPage], error) {
	return reply(ctx, s, types.SeckillProductPage{
		List:      cloneSlice(seckillProducts),
		Total:     len(seckillProducts),
		SessionID: p.SessionID,
		Page:      p.Page,
		Limit:     p.Limit,
	})
}

// ------------------------------
// Cart
// ------------------------------

func (s *Source) GetCartList(ctx context.Context) (*types.Envelope[[]types.CartShop], error) {
	return reply(ctx, s, cloneCartList())
}

func (s *Source) AddToCart(ctx context.Context, _ types.AddToCartRequest) (*types.Envelope[types.ActionAck], error) {
	return reply(ctx, s, types.ActionAck{Message: msgAdded})
}

func (s *Source) UpdateCartQuantity(ctx context.Context, _ types.UpdateCartRequest) (*types.Envelope[types.ActionAck], error) {
	return reply(ctx, s, types.ActionAck{Message: msgUpdated})
}

func (s *Source) DeleteCartItem(ctx context.Context, _ int) (*types.Envelope[types.ActionAck], error) {
	return reply(ctx, s, types.ActionAck{Message: msgDeleted})
}

// ------------------------------
// User
// ------------------------------

func (s *Source) GetUserInfo(ctx context.Context) (*types.Envelope[types.UserInfo], error) {
	return reply(ctx, s, userInfo)
}

func (s *Source) GetUserOrders(ctx context.Context) (*types.Envelope[types.OrderCounts], error) {
	return reply(ctx, s, userOrders)
}

// ------------------------------
// Search
// ------------------------------

// SearchProducts keeps the products whose name contains the keyword.
func (s *Source) SearchProducts(ctx context.Context, p types.SearchParams) (*types.Envelope[types.SearchResult], error) {
	filtered := make([]types.Product, 0, len(products))
	for _, prod := range products {
		if strings.Contains(prod.Name, p.Keyword) {
			filtered = append(filtered, prod)
		}
	}
	return reply(ctx, s, types.SearchResult{
		List:    filtered,
		Total:   len(filtered),
		Keyword: p.Keyword,
	})
}

func (s *Source) GetHotKeywords(ctx context.Context) (*types.Envelope[[]string], error) {
	return reply(ctx, s, cloneSlice(hotKeywords))
}

// ------------------------------
// Order
// ------------------------------

// CreateOrder issues "ORD" + a millisecond timestamp. Timestamps are forced to
// strictly increase so two calls in the same millisecond get distinct ids.
func (s *Source) CreateOrder(ctx context.Context, _ types.CreateOrderRequest) (*types.Envelope[types.OrderAck], error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	id := "ORD" + strconv.FormatInt(s.nextOrderMillis(), 10)
	return types.Success(types.OrderAck{OrderID: id, Message: msgOrdered}), nil
}

func (s *Source) GetOrderDetail(ctx context.Context, orderID string) (*types.Envelope[types.OrderDetail], error) {
	return reply(ctx, s, types.OrderDetail{
		OrderID:     orderID,
		Status:      types.OrderStatusPending,
		Products:    cloneSlice(cartList[0].Products),
		TotalPoints: orderDetailTotalPoints,
	})
}

func (s *Source) CancelOrder(ctx context.Context, _ string) (*types.Envelope[types.ActionAck], error) {
	return reply(ctx, s, types.ActionAck{Message: msgCancelled})
}

func (s *Source) nextOrderMillis() int64 {
	for {
		last := s.lastOrderMillis.Load()
		next := s.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if s.lastOrderMillis.CompareAndSwap(last, next) {
			return next
		}
	}
}
