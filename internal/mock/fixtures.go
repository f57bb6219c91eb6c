package mock

import "github.com/xinfuli/points-mall/internal/types"

// Fixtures are package-private and only ever handed out as copies.

var bannerList = []types.Banner{
	{
		ID:       1,
		Title:    "新春福利季",
		Subtitle: "积分翻倍兑",
		Desc:     "精选好礼，福利加倍！全场商品积分兑换享受双倍优惠，限时3天！",
		Link:     "/seckill",
		BgColor:  "linear-gradient(135deg, #E60012 0%, #B5000E 100%)",
	},
	{
		ID:       2,
		Title:    "会员专享日",
		Subtitle: "折上折",
		Desc:     "会员尊享专属优惠，积分兑换更划算",
		Link:     "/category",
		BgColor:  "linear-gradient(135deg, #1E88E5 0%, #1565C0 100%)",
	},
	{
		ID:       3,
		Title:    "品牌狂欢",
		Subtitle: "大牌特惠",
		Desc:     "知名品牌齐聚，品质保证，价格优惠",
		Link:     "/products",
		BgColor:  "linear-gradient(135deg, #f39c12 0%, #e67e22 100%)",
	},
}

var quickActions = []types.QuickAction{
	{ID: 1, Title: "签到", Desc: "每日+10积分", Icon: "📅", Color: "red", Link: "/checkin"},
	{ID: 2, Title: "抽奖", Desc: "赢好礼", Icon: "🎁", Color: "blue", Link: "/lottery"},
	{ID: 3, Title: "兑换", Desc: "超值换购", Icon: "🎫", Color: "orange", Link: "/exchange"},
	{ID: 4, Title: "特惠", Desc: "限时秒杀", Icon: "⚡", Color: "green", Link: "/seckill"},
	{ID: 5, Title: "新手", Desc: "专享福利", Icon: "🎊", Color: "purple", Link: "/newbie"},
	{ID: 6, Title: "推荐", Desc: "精品推荐", Icon: "⭐", Color: "pink", Link: "/recommend"},
}

var userPoints = types.UserPoints{
	Available:   12580,
	Total:       50000,
	TodayEarned: 50,
	Expiring:    580,
}

var categories = []types.Category{
	{ID: 1, Name: "电子卡券", Icon: "🎫", ProductCount: 156},
	{ID: 2, Name: "话费充值", Icon: "📱", ProductCount: 89},
	{ID: 3, Name: "加油卡", Icon: "⛽", ProductCount: 45},
	{ID: 4, Name: "影音会员", Icon: "🎬", ProductCount: 67},
	{ID: 5, Name: "美食餐饮", Icon: "🍔", ProductCount: 123},
	{ID: 6, Name: "生活服务", Icon: "🏠", ProductCount: 234},
}

var products = []types.Product{
	{ID: 1, Name: "京东E卡 100元面值 全场通用 即充即到", Image: "🎫", Price: 980, OriginalPrice: 100, Tag: "热销", TagType: "hot", Sales: 5234},
	{ID: 2, Name: "中石化加油卡 200元 全国通用", Image: "⛽", Price: 1960, OriginalPrice: 200, Tag: "特惠", TagType: "new", Sales: 3421},
	{ID: 3, Name: "全国移动 50元话费充值", Image: "📱", Price: 490, OriginalPrice: 50, Tag: "新品", TagType: "new", Sales: 8932},
	{ID: 4, Name: "爱奇艺VIP会员年卡 观影无广告", Image: "🎬", Price: 1580, OriginalPrice: 198, Tag: "爆款", TagType: "hot", Sales: 12543},
	{ID: 5, Name: "星巴克中杯饮品券", Image: "☕", Price: 280, OriginalPrice: 35, Tag: "热销", TagType: "hot", Sales: 6789},
	{ID: 6, Name: "QQ音乐豪华绿钻年卡 听歌无忧", Image: "🎧", Price: 1080, OriginalPrice: 158, Sales: 4521},
	{ID: 7, Name: "肯德基 50元电子代金券", Image: "🍔", Price: 450, OriginalPrice: 50, Tag: "特惠", TagType: "new", Sales: 7823},
	{ID: 8, Name: "美团外卖红包 20元", Image: "🥡", Price: 180, OriginalPrice: 20, Sales: 15234},
	{ID: 9, Name: "腾讯视频VIP会员季卡", Image: "📺", Price: 480, OriginalPrice: 58, Tag: "热销", TagType: "hot", Sales: 9654},
	{ID: 10, Name: "网易云音乐黑胶会员年卡", Image: "🎵", Price: 1180, OriginalPrice: 168, Sales: 5632},
}

var categoryList = []types.CategoryGroup{
	{
		ID:   "holiday",
		Name: "节日福利",
		Icon: "🎁",
		Subcategories: []types.Subcategory{
			{ID: 1, Name: "春节礼品", Icon: "🧧"},
			{ID: 2, Name: "中秋礼盒", Icon: "🥮"},
			{ID: 3, Name: "圣诞专区", Icon: "🎄"},
			{ID: 4, Name: "生日礼品", Icon: "🎂"},
			{ID: 5, Name: "情人节", Icon: "💝"},
			{ID: 6, Name: "商务礼品", Icon: "🎁"},
		},
	},
	{
		ID:   "card",
		Name: "电子卡券",
		Icon: "💳",
		Subcategories: []types.Subcategory{
			{ID: 1, Name: "京东E卡", Icon: "🎫"},
			{ID: 2, Name: "加油卡", Icon: "⛽"},
			{ID: 3, Name: "话费充值", Icon: "📱"},
			{ID: 4, Name: "游戏点卡", Icon: "🎮"},
			{ID: 5, Name: "视频会员", Icon: "🎬"},
			{ID: 6, Name: "音乐会员", Icon: "🎵"},
		},
	},
	{
		ID:   "food",
		Name: "生鲜水果",
		Icon: "🍎",
		Subcategories: []types.Subcategory{
			{ID: 1, Name: "新鲜水果", Icon: "🍎"},
			{ID: 2, Name: "蔬菜生鲜", Icon: "🥬"},
			{ID: 3, Name: "海鲜水产", Icon: "🦐"},
			{ID: 4, Name: "肉类禽蛋", Icon: "🥩"},
			{ID: 5, Name: "乳品烘焙", Icon: "🥛"},
			{ID: 6, Name: "方便速食", Icon: "🍜"},
		},
	},
}

var seckillInfo = types.SeckillInfo{
	SessionID: 3,
	Status:    types.SeckillActive,
	StartTime: "14:00",
	EndTime:   "16:00",
	Countdown: types.Countdown{Hours: 2, Minutes: 45, Seconds: 30},
}

var seckillProducts = []types.SeckillProduct{
	{ID: 1, Name: "京东E卡 100元面值 全场通用 即充即到", Image: "🎫", SeckillPrice: 880, OriginalPrice: 100, Progress: 85, Stock: 15, TotalStock: 100},
	{ID: 2, Name: "中石化加油卡 200元 全国通用", Image: "⛽", SeckillPrice: 1760, OriginalPrice: 200, Progress: 92, Stock: 8, TotalStock: 100},
	{ID: 3, Name: "星巴克中杯饮品券", Image: "☕", SeckillPrice: 250, OriginalPrice: 35, Progress: 65, Stock: 35, TotalStock: 100},
	{ID: 4, Name: "爱奇艺VIP会员年卡 观影无广告", Image: "🎬", SeckillPrice: 1380, OriginalPrice: 198, Progress: 78, Stock: 22, TotalStock: 100},
	{ID: 5, Name: "麦当劳 50元电子代金券", Image: "🍔", SeckillPrice: 400, OriginalPrice: 50, Progress: 55, Stock: 45, TotalStock: 100},
	{ID: 6, Name: "QQ音乐豪华绿钻年卡 听歌无忧", Image: "🎧", SeckillPrice: 980, OriginalPrice: 158, Progress: 70, Stock: 30, TotalStock: 100},
}

var cartList = []types.CartShop{
	{
		ShopID:   1,
		ShopName: "京东自营",
		Products: []types.CartProduct{
			{ID: 1, Name: "京东E卡 100元面值 全场通用", Image: "🎫", Spec: "面值：100元", Price: 980, Quantity: 1, Checked: true},
			{ID: 2, Name: "中石化加油卡 200元面值", Image: "⛽", Spec: "面值：200元", Price: 1960, Quantity: 2, Checked: true},
		},
	},
	{
		ShopID:   2,
		ShopName: "星巴克官方旗舰店",
		Products: []types.CartProduct{
			{ID: 3, Name: "星巴克中杯饮品券", Image: "☕", Spec: "规格：中杯", Price: 280, Quantity: 1, Checked: false},
		},
	},
}

var userInfo = types.UserInfo{
	UserID:    10001,
	Username:  "鑫福利用户",
	Avatar:    "👤",
	Level:     "黄金会员",
	LevelIcon: "🏅",
	Points:    types.PointsBalance{Available: 12580, Frozen: 0, Total: 50000, Expiring: 580},
	Coupons:   3,
}

var userOrders = types.OrderCounts{
	Unpaid:    1,
	Unshipped: 2,
	Shipped:   0,
	Unreview:  5,
}

var hotKeywords = []string{
	"京东E卡",
	"话费充值",
	"加油卡",
	"爱奇艺会员",
	"星巴克",
}

// orderDetailTotalPoints is the fixed total reported by mock order details.
const orderDetailTotalPoints = 4900

// Acknowledgement messages returned by mock mutations.
const (
	msgAdded     = "添加成功"
	msgUpdated   = "更新成功"
	msgDeleted   = "删除成功"
	msgOrdered   = "下单成功"
	msgCancelled = "订单已取消"
)

func cloneCategoryList() []types.CategoryGroup {
	out := make([]types.CategoryGroup, len(categoryList))
	for i, g := range categoryList {
		g.Subcategories = append([]types.Subcategory(nil), g.Subcategories...)
		out[i] = g
	}
	return out
}

func cloneCartList() []types.CartShop {
	out := make([]types.CartShop, len(cartList))
	for i, s := range cartList {
		s.Products = append([]types.CartProduct(nil), s.Products...)
		out[i] = s
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	return append([]T(nil), in...)
}
