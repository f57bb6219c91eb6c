package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xinfuli/points-mall/client/internal/transport"
	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/types"
)

type seen struct {
	Method string
	Path   string
	Query  map[string]string
	Body   string
}

// recorder answers every request with a fixed envelope and records it.
type recorder struct {
	mu    sync.Mutex
	calls []seen
	reply string
}

func (rc *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	q := map[string]string{}
	for k := range r.URL.Query() {
		q[k] = r.URL.Query().Get(k)
	}
	rc.mu.Lock()
	rc.calls = append(rc.calls, seen{Method: r.Method, Path: r.URL.Path, Query: q, Body: string(b)})
	rc.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(rc.reply))
}

func (rc *recorder) last() seen {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.calls[len(rc.calls)-1]
}

func newLive(t *testing.T, reply string) (*Live, *recorder) {
	t.Helper()
	rec := &recorder{reply: reply}
	srv := httptest.NewServer(rec)
	t.Cleanup(srv.Close)

	cfg := config.NewForTesting(false)
	cfg.BaseURLs[config.EnvDevelopment] = srv.URL + "/api"
	return NewLive(cfg, transport.New(srv.Client(), transport.RetryPolicy{})), rec
}

const liveEnvelope = `{"code":200,"message":"live","data":null,"timestamp":1}`

func TestLive_RoutesEveryOperation(t *testing.T) {
	t.Parallel()
	l, rec := newLive(t, liveEnvelope)
	ctx := context.Background()

	cases := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"banners", func() error { _, err := l.GetBannerList(ctx); return err }, http.MethodGet, "/api/home/banner"},
		{"quick actions", func() error { _, err := l.GetQuickActions(ctx); return err }, http.MethodGet, "/api/home/quickActions"},
		{"user points", func() error { _, err := l.GetUserPoints(ctx); return err }, http.MethodGet, "/api/user/points"},
		{"categories", func() error { _, err := l.GetCategories(ctx); return err }, http.MethodGet, "/api/home/categories"},
		{"hot products", func() error { _, err := l.GetHotProducts(ctx, types.PageParams{Page: 1, Limit: 10}); return err }, http.MethodGet, "/api/home/hotProducts"},
		{"new products", func() error { _, err := l.GetNewProducts(ctx, types.PageParams{Page: 2, Limit: 5}); return err }, http.MethodGet, "/api/home/newProducts"},
		{"category list", func() error { _, err := l.GetCategoryList(ctx); return err }, http.MethodGet, "/api/category/list"},
		{"category products", func() error {
			_, err := l.GetCategoryProducts(ctx, types.CategoryProductsParams{CategoryID: "card"})
			return err
		}, http.MethodGet, "/api/category/products"},
		{"seckill info", func() error { _, err := l.GetSeckillInfo(ctx); return err }, http.MethodGet, "/api/seckill/info"},
		{"seckill products", func() error {
			_, err := l.GetSeckillProducts(ctx, types.SeckillProductsParams{SessionID: 3})
			return err
		}, http.MethodGet, "/api/seckill/products"},
		{"cart list", func() error { _, err := l.GetCartList(ctx); return err }, http.MethodGet, "/api/cart/list"},
		{"add to cart", func() error {
			_, err := l.AddToCart(ctx, types.AddToCartRequest{ProductID: 1, Quantity: 2})
			return err
		}, http.MethodPost, "/api/cart/add"},
		{"update cart", func() error {
			_, err := l.UpdateCartQuantity(ctx, types.UpdateCartRequest{CartItemID: 7, Quantity: 3})
			return err
		}, http.MethodPut, "/api/cart/update"},
		{"delete cart item", func() error { _, err := l.DeleteCartItem(ctx, 7); return err }, http.MethodDelete, "/api/cart/delete/7"},
		{"user info", func() error { _, err := l.GetUserInfo(ctx); return err }, http.MethodGet, "/api/user/info"},
		{"user orders", func() error { _, err := l.GetUserOrders(ctx); return err }, http.MethodGet, "/api/user/orders"},
		{"search", func() error { _, err := l.SearchProducts(ctx, types.SearchParams{Keyword: "卡"}); return err }, http.MethodGet, "/api/search/products"},
		{"hot keywords", func() error { _, err := l.GetHotKeywords(ctx); return err }, http.MethodGet, "/api/search/hotKeywords"},
		{"create order", func() error { _, err := l.CreateOrder(ctx, types.CreateOrderRequest{}); return err }, http.MethodPost, "/api/order/create"},
		{"order detail", func() error { _, err := l.GetOrderDetail(ctx, "ORD9"); return err }, http.MethodGet, "/api/order/detail/ORD9"},
		{"cancel order", func() error { _, err := l.CancelOrder(ctx, "ORD9"); return err }, http.MethodPost, "/api/order/cancel/ORD9"},
	}
	require.Len(t, cases, len(config.DefaultPaths()))

	for _, tc := range cases {
		require.NoError(t, tc.call(), tc.name)
		got := rec.last()
		assert.Equal(t, tc.method, got.Method, tc.name)
		assert.Equal(t, tc.path, got.Path, tc.name)
	}
}

func TestLive_SendsParameters(t *testing.T) {
	t.Parallel()
	l, rec := newLive(t, liveEnvelope)
	ctx := context.Background()

	_, err := l.GetNewProducts(ctx, types.PageParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"page": "2", "limit": "5"}, rec.last().Query)

	_, err = l.SearchProducts(ctx, types.SearchParams{Keyword: "星巴克"})
	require.NoError(t, err)
	assert.Equal(t, "星巴克", rec.last().Query["keyword"])

	_, err = l.UpdateCartQuantity(ctx, types.UpdateCartRequest{CartItemID: 7, Quantity: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"cartItemId":7,"quantity":3}`, rec.last().Body)

	_, err = l.CancelOrder(ctx, "ORD9")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, rec.last().Body)
}

func TestLive_OrderIDStaysInOnePathSegment(t *testing.T) {
	t.Parallel()
	l, rec := newLive(t, liveEnvelope)
	ctx := context.Background()

	for _, id := range []string{"ORD1#frag", "ORD1?status=paid", "ORD 1%2F"} {
		_, err := l.GetOrderDetail(ctx, id)
		require.NoError(t, err, id)
		got := rec.last()
		assert.Equal(t, "/api/order/detail/"+id, got.Path, id)
		assert.Empty(t, got.Query, id)

		_, err = l.CancelOrder(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, "/api/order/cancel/"+id, rec.last().Path, id)
	}
}

func TestLive_ReturnsBackendData(t *testing.T) {
	t.Parallel()
	reply, _ := json.Marshal(types.Envelope[[]string]{Code: 200, Message: "ok", Data: []string{"only-live"}, Timestamp: 5})
	l, _ := newLive(t, string(reply))

	env, err := l.GetHotKeywords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"only-live"}, env.Data)
	assert.Equal(t, int64(5), env.Timestamp)
}

func TestLive_BusinessFailurePassesThrough(t *testing.T) {
	t.Parallel()
	l, _ := newLive(t, `{"code":401,"message":"请先登录","data":null,"timestamp":1}`)
	env, err := l.GetCartList(context.Background())
	require.NoError(t, err)
	assert.False(t, env.OK())
	_, err = env.Result()
	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 401, apiErr.Code)
}

func TestLive_MalformedEnvelope(t *testing.T) {
	t.Parallel()
	l, _ := newLive(t, `{"banners":[]}`)
	_, err := l.GetBannerList(context.Background())
	assert.ErrorIs(t, err, types.ErrMalformedEnvelope)
}

func TestLive_UnknownPathKey(t *testing.T) {
	t.Parallel()
	l, rec := newLive(t, liveEnvelope)
	delete(l.cfg.Paths, config.GetBannerList)
	_, err := l.GetBannerList(context.Background())
	assert.ErrorIs(t, err, config.ErrUnknownPathKey)
	assert.Empty(t, rec.calls)
}

func TestLive_HTTPStatusError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	cfg := config.NewForTesting(false)
	cfg.BaseURLs[config.EnvDevelopment] = srv.URL
	l := NewLive(cfg, transport.New(srv.Client(), transport.RetryPolicy{}))

	_, err := l.GetSeckillInfo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprint(http.StatusBadGateway))
}

func TestLive_CtxCanceled(t *testing.T) {
	t.Parallel()
	l, rec := newLive(t, liveEnvelope)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := l.GetUserInfo(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.calls)
}
