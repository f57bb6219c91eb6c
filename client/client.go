// Package client is the points-mall SDK facade. A Client is bound to one
// config and serves every operation from either the in-process mock fixtures
// or the live backend, chosen once at construction.
package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xinfuli/points-mall/client/internal/api"
	"github.com/xinfuli/points-mall/client/internal/transport"
	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/mock"
	"github.com/xinfuli/points-mall/internal/types"
	"github.com/xinfuli/points-mall/tokenstore"
)

const (
	ModeMock = "mock"
	ModeLive = "live"
)

// source is satisfied by both the fixture source and the live source.
type source interface {
	GetBannerList(ctx context.Context) (*types.Envelope[[]types.Banner], error)
	GetQuickActions(ctx context.Context) (*types.Envelope[[]types.QuickAction], error)
	GetUserPoints(ctx context.Context) (*types.Envelope[types.UserPoints], error)
	GetCategories(ctx context.Context) (*types.Envelope[[]types.Category], error)
	GetHotProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error)
	GetNewProducts(ctx context.Context, p types.PageParams) (*types.Envelope[types.ProductPage], error)
	GetCategoryList(ctx context.Context) (*types.Envelope[[]types.CategoryGroup], error)
	GetCategoryProducts(ctx context.Context, p types.CategoryProductsParams) (*types.Envelope[types.CategoryProductPage], error)
	GetSeckillInfo(ctx context.Context) (*types.Envelope[types.SeckillInfo], error)
	GetSeckillProducts(ctx context.Context, p types.SeckillProductsParams) (*types.Envelope[types.SeckillProductPage], error)
	GetCartList(ctx context.Context) (*types.Envelope[[]types.CartShop], error)
	AddToCart(ctx context.Context, req types.AddToCartRequest) (*types.Envelope[types.ActionAck], error)
	UpdateCartQuantity(ctx context.Context, req types.UpdateCartRequest) (*types.Envelope[types.ActionAck], error)
	DeleteCartItem(ctx context.Context, cartItemID int) (*types.Envelope[types.ActionAck], error)
	GetUserInfo(ctx context.Context) (*types.Envelope[types.UserInfo], error)
	GetUserOrders(ctx context.Context) (*types.Envelope[types.OrderCounts], error)
	SearchProducts(ctx context.Context, p types.SearchParams) (*types.Envelope[types.SearchResult], error)
	GetHotKeywords(ctx context.Context) (*types.Envelope[[]string], error)
	CreateOrder(ctx context.Context, req types.CreateOrderRequest) (*types.Envelope[types.OrderAck], error)
	GetOrderDetail(ctx context.Context, orderID string) (*types.Envelope[types.OrderDetail], error)
	CancelOrder(ctx context.Context, orderID string) (*types.Envelope[types.ActionAck], error)
}

var (
	_ source = (*mock.Source)(nil)
	_ source = (*api.Live)(nil)
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	cfg  *config.Config
	http *http.Client
	src  source
	mode string
	log  zerolog.Logger

	// populated by options before the source is built
	retry     transport.RetryPolicy
	store     tokenstore.Store
	mockDelay mock.DelayFunc
	debug     bool

	closedOnce uint32 // ensures Close is idempotent
}

// New validates cfg and returns a Client bound to a private copy of it.
// Later changes to cfg do not affect the returned Client.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	c := &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log.Logger,
		retry:     transport.RetryPolicy{MaxAttempts: 1},
		mockDelay: mock.RandomDelay,
	}

	// Auto-enable debug via env variable without changing code.
	c.debug = debugLoggingRequested()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()

	if cfg.IsMock() {
		c.mode = ModeMock
		c.src = mock.NewSource(c.mockDelay)
	} else {
		c.mode = ModeLive
		c.src = api.NewLive(cfg, transport.New(c.http, c.retry))
	}
	c.log.Debug().Str("mode", c.mode).Str("environment", string(cfg.Environment)).Msg("points-mall client ready")
	return c, nil
}

// wrapTransport installs the debug, request-id and auth wrappers above
// whatever transport the options left in place. Each is installed once.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if c.debug {
		base = &debugTransport{base: base, log: &c.log}
	}
	var rt http.RoundTripper = &requestIDTransport{base: base}
	if c.store != nil {
		rt = &authTransport{base: rt, store: c.store}
	}
	c.http.Transport = rt
}

// Mode reports "mock" or "live".
func (c *Client) Mode() string { return c.mode }

// Close releases idle connections. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// run executes one operation, unwraps its envelope and records metrics.
func run[T any](ctx context.Context, c *Client, op config.PathKey, fn func(context.Context) (*types.Envelope[T], error)) (T, error) {
	start := time.Now()
	var zero T

	env, err := fn(ctx)
	var out T
	if err == nil {
		out, err = env.Result()
	}
	c.observe(op, start, err)
	if err != nil {
		c.log.Debug().Err(err).Str("operation", string(op)).Str("mode", c.mode).Msg("operation failed")
		return zero, err
	}
	return out, nil
}

// --------------------------------------------------------------------
// Home
// --------------------------------------------------------------------

func (c *Client) GetBannerList(ctx context.Context) ([]Banner, error) {
	return run(ctx, c, config.GetBannerList, c.src.GetBannerList)
}

func (c *Client) GetQuickActions(ctx context.Context) ([]QuickAction, error) {
	return run(ctx, c, config.GetQuickActions, c.src.GetQuickActions)
}

func (c *Client) GetUserPoints(ctx context.Context) (UserPoints, error) {
	return run(ctx, c, config.GetUserPoints, c.src.GetUserPoints)
}

func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	return run(ctx, c, config.GetCategories, c.src.GetCategories)
}

// GetHotProducts lists recommended products. A zero PageParams means page 1, limit 10.
func (c *Client) GetHotProducts(ctx context.Context, p PageParams) (ProductPage, error) {
	p = p.OrDefault()
	return run(ctx, c, config.GetHotProducts, func(ctx context.Context) (*types.Envelope[types.ProductPage], error) {
		return c.src.GetHotProducts(ctx, p)
	})
}

// GetNewProducts lists new arrivals. A zero PageParams means page 1, limit 10.
func (c *Client) GetNewProducts(ctx context.Context, p PageParams) (ProductPage, error) {
	p = p.OrDefault()
	return run(ctx, c, config.GetNewProducts, func(ctx context.Context) (*types.Envelope[types.ProductPage], error) {
		return c.src.GetNewProducts(ctx, p)
	})
}

// --------------------------------------------------------------------
// Category & seckill
// --------------------------------------------------------------------

func (c *Client) GetCategoryList(ctx context.Context) ([]CategoryGroup, error) {
	return run(ctx, c, config.GetCategoryList, c.src.GetCategoryList)
}

func (c *Client) GetCategoryProducts(ctx context.Context, p CategoryProductsParams) (CategoryProductPage, error) {
	return run(ctx, c, config.GetCategoryProducts, func(ctx context.Context) (*types.Envelope[types.CategoryProductPage], error) {
		return c.src.GetCategoryProducts(ctx, p)
	})
}

func (c *Client) GetSeckillInfo(ctx context.Context) (SeckillInfo, error) {
	return run(ctx, c, config.GetSeckillInfo, c.src.GetSeckillInfo)
}

func (c *Client) GetSeckillProducts(ctx context.Context, p SeckillProductsParams) (SeckillProductPage, error) {
	return run(ctx, c, config.GetSeckillProducts, func(ctx context.Context) (*types.Envelope[types.SeckillProductPage], error) {
		return c.src.GetSeckillProducts(ctx, p)
	})
}

// --------------------------------------------------------------------
// Cart
// --------------------------------------------------------------------

func (c *Client) GetCartList(ctx context.Context) ([]CartShop, error) {
	return run(ctx, c, config.GetCartList, c.src.GetCartList)
}

func (c *Client) AddToCart(ctx context.Context, req AddToCartRequest) (ActionAck, error) {
	return run(ctx, c, config.AddToCart, func(ctx context.Context) (*types.Envelope[types.ActionAck], error) {
		return c.src.AddToCart(ctx, req)
	})
}

func (c *Client) UpdateCartQuantity(ctx context.Context, req UpdateCartRequest) (ActionAck, error) {
	return run(ctx, c, config.UpdateCartQuantity, func(ctx context.Context) (*types.Envelope[types.ActionAck], error) {
		return c.src.UpdateCartQuantity(ctx, req)
	})
}

// DeleteCartItem removes one cart line. cartItemID must be positive.
func (c *Client) DeleteCartItem(ctx context.Context, cartItemID int) (ActionAck, error) {
	if err := types.ValidatePositive(cartItemID, "cartItemID"); err != nil {
		return ActionAck{}, err
	}
	return run(ctx, c, config.DeleteCartItem, func(ctx context.Context) (*types.Envelope[types.ActionAck], error) {
		return c.src.DeleteCartItem(ctx, cartItemID)
	})
}

// --------------------------------------------------------------------
// User & search
// --------------------------------------------------------------------

func (c *Client) GetUserInfo(ctx context.Context) (UserInfo, error) {
	return run(ctx, c, config.GetUserInfo, c.src.GetUserInfo)
}

func (c *Client) GetUserOrders(ctx context.Context) (OrderCounts, error) {
	return run(ctx, c, config.GetUserOrders, c.src.GetUserOrders)
}

func (c *Client) SearchProducts(ctx context.Context, p SearchParams) (SearchResult, error) {
	return run(ctx, c, config.SearchProducts, func(ctx context.Context) (*types.Envelope[types.SearchResult], error) {
		return c.src.SearchProducts(ctx, p)
	})
}

func (c *Client) GetHotKeywords(ctx context.Context) ([]string, error) {
	return run(ctx, c, config.GetHotKeywords, c.src.GetHotKeywords)
}

// --------------------------------------------------------------------
// Orders
// --------------------------------------------------------------------

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderAck, error) {
	return run(ctx, c, config.CreateOrder, func(ctx context.Context) (*types.Envelope[types.OrderAck], error) {
		return c.src.CreateOrder(ctx, req)
	})
}

func (c *Client) GetOrderDetail(ctx context.Context, orderID string) (OrderDetail, error) {
	if err := types.ValidateIDPresent(orderID, "orderID"); err != nil {
		return OrderDetail{}, err
	}
	return run(ctx, c, config.GetOrderDetail, func(ctx context.Context) (*types.Envelope[types.OrderDetail], error) {
		return c.src.GetOrderDetail(ctx, orderID)
	})
}

func (c *Client) CancelOrder(ctx context.Context, orderID string) (ActionAck, error) {
	if err := types.ValidateIDPresent(orderID, "orderID"); err != nil {
		return ActionAck{}, err
	}
	return run(ctx, c, config.CancelOrder, func(ctx context.Context) (*types.Envelope[types.ActionAck], error) {
		return c.src.CancelOrder(ctx, orderID)
	})
}
