package mock

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xinfuli/points-mall/internal/types"
)

func newTestSource() *Source { return NewSource(NoDelay) }

func TestCategoryList_ThreeGroupsOfSix(t *testing.T) {
	t.Parallel()
	env, err := newTestSource().GetCategoryList(context.Background())
	require.NoError(t, err)
	require.Equal(t, types.CodeSuccess, env.Code)
	require.Len(t, env.Data, 3)

	ids := []string{env.Data[0].ID, env.Data[1].ID, env.Data[2].ID}
	assert.Equal(t, []string{"holiday", "card", "food"}, ids)
	for _, g := range env.Data {
		assert.Len(t, g.Subcategories, 6, g.ID)
	}
}

func TestListsEchoPaginationWithoutApplying(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	ctx := context.Background()

	hot, err := s.GetHotProducts(ctx, types.PageParams{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, hot.Data.List, 10)
	assert.Equal(t, 10, hot.Data.Total)
	assert.Equal(t, 3, hot.Data.Page)
	assert.Equal(t, 2, hot.Data.Limit)

	fresh, err := s.GetNewProducts(ctx, types.PageParams{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, fresh.Data.List, 5)
	assert.Equal(t, 6, fresh.Data.List[0].ID)
	assert.Equal(t, 10, fresh.Data.Total)
	assert.Equal(t, 1, fresh.Data.Limit)

	cat, err := s.GetCategoryProducts(ctx, types.CategoryProductsParams{CategoryID: "card", Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Len(t, cat.Data.List, 10)
	assert.Equal(t, "card", cat.Data.CategoryID)
	assert.Equal(t, 2, cat.Data.Page)
	assert.Equal(t, 4, cat.Data.Limit)

	sk, err := s.GetSeckillProducts(ctx, types.SeckillProductsParams{SessionID: 3, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, sk.Data.List, 6)
	assert.Equal(t, 6, sk.Data.Total)
	assert.Equal(t, 3, sk.Data.SessionID)
	assert.Equal(t, 1, sk.Data.Limit)
}

func TestSearchProducts_Substring(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	cases := map[string]int{
		"会员":   3,
		"京东E卡": 1,
		"星巴克":  1,
		"不存在":  0,
		"":     10,
	}
	for kw, want := range cases {
		env, err := s.SearchProducts(context.Background(), types.SearchParams{Keyword: kw})
		require.NoError(t, err)
		assert.Equal(t, want, env.Data.Total, kw)
		assert.Len(t, env.Data.List, want, kw)
		assert.Equal(t, kw, env.Data.Keyword)
		for _, p := range env.Data.List {
			assert.True(t, strings.Contains(p.Name, kw), p.Name)
		}
	}
}

func TestCreateOrder_UniqueIDs(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	fixed := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return fixed }

	const n = 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, err := s.CreateOrder(context.Background(), types.CreateOrderRequest{})
			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, strings.HasPrefix(env.Data.OrderID, "ORD"))
			mu.Lock()
			seen[env.Data.OrderID] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Len(t, seen, n)
}

func TestCreateOrder_TimestampDerived(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	s.now = func() time.Time { return time.UnixMilli(1_700_000_000_123) }
	env, err := s.CreateOrder(context.Background(), types.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ORD1700000000123", env.Data.OrderID)
	assert.Equal(t, "下单成功", env.Data.Message)
}

func TestOrderDetail(t *testing.T) {
	t.Parallel()
	env, err := newTestSource().GetOrderDetail(context.Background(), "ORD42")
	require.NoError(t, err)
	assert.Equal(t, "ORD42", env.Data.OrderID)
	assert.Equal(t, types.OrderStatusPending, env.Data.Status)
	assert.Len(t, env.Data.Products, 2)
	assert.Equal(t, 4900, env.Data.TotalPoints)
}

func TestFixturesAreCopies(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	ctx := context.Background()

	first, err := s.GetCartList(ctx)
	require.NoError(t, err)
	first.Data[0].Products[0].Quantity = 99
	first.Data[0].ShopName = "changed"

	second, err := s.GetCartList(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Data[0].Products[0].Quantity)
	assert.Equal(t, "京东自营", second.Data[0].ShopName)

	groups, err := s.GetCategoryList(ctx)
	require.NoError(t, err)
	groups.Data[0].Subcategories[0].Name = "changed"
	again, err := s.GetCategoryList(ctx)
	require.NoError(t, err)
	assert.Equal(t, "春节礼品", again.Data[0].Subcategories[0].Name)
}

func TestMutationsAcknowledge(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	ctx := context.Background()

	add, err := s.AddToCart(ctx, types.AddToCartRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "添加成功", add.Data.Message)

	upd, err := s.UpdateCartQuantity(ctx, types.UpdateCartRequest{CartItemID: 1, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, "更新成功", upd.Data.Message)

	del, err := s.DeleteCartItem(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "删除成功", del.Data.Message)

	cancel, err := s.CancelOrder(ctx, "ORD1")
	require.NoError(t, err)
	assert.Equal(t, "订单已取消", cancel.Data.Message)
}

func TestDelayHonorsContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSource(RandomDelay).GetBannerList(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomDelayBounds(t *testing.T) {
	t.Parallel()
	start := time.Now()
	require.NoError(t, RandomDelay(context.Background()))
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, 300*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestSimpleFixtures(t *testing.T) {
	t.Parallel()
	s := newTestSource()
	ctx := context.Background()

	banners, err := s.GetBannerList(ctx)
	require.NoError(t, err)
	assert.Len(t, banners.Data, 3)

	qa, err := s.GetQuickActions(ctx)
	require.NoError(t, err)
	assert.Len(t, qa.Data, 6)

	pts, err := s.GetUserPoints(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12580, pts.Data.Available)

	cats, err := s.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats.Data, 6)

	info, err := s.GetSeckillInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.SeckillActive, info.Data.Status)

	user, err := s.GetUserInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10001, user.Data.UserID)

	orders, err := s.GetUserOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, orders.Data.Unreview)

	kw, err := s.GetHotKeywords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"京东E卡", "话费充值", "加油卡", "爱奇艺会员", "星巴克"}, kw.Data)
}
