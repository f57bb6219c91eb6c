package config

// PathKey is the symbolic name of one backend operation.
type PathKey string

const (
	// home
	GetBannerList   PathKey = "GET_BANNER_LIST"
	GetQuickActions PathKey = "GET_QUICK_ACTIONS"
	GetCategories   PathKey = "GET_CATEGORIES"
	GetHotProducts  PathKey = "GET_HOT_PRODUCTS"
	GetNewProducts  PathKey = "GET_NEW_PRODUCTS"

	// category
	GetCategoryList     PathKey = "GET_CATEGORY_LIST"
	GetCategoryProducts PathKey = "GET_CATEGORY_PRODUCTS"

	// seckill
	GetSeckillInfo     PathKey = "GET_SECKILL_INFO"
	GetSeckillProducts PathKey = "GET_SECKILL_PRODUCTS"

	// cart
	GetCartList        PathKey = "GET_CART_LIST"
	AddToCart          PathKey = "ADD_TO_CART"
	UpdateCartQuantity PathKey = "UPDATE_CART_QUANTITY"
	DeleteCartItem     PathKey = "DELETE_CART_ITEM"

	// user
	GetUserInfo   PathKey = "GET_USER_INFO"
	GetUserOrders PathKey = "GET_USER_ORDERS"
	GetUserPoints PathKey = "GET_USER_POINTS"

	// search
	SearchProducts PathKey = "SEARCH_PRODUCTS"
	GetHotKeywords PathKey = "GET_HOT_KEYWORDS"

	// order
	CreateOrder    PathKey = "CREATE_ORDER"
	GetOrderDetail PathKey = "GET_ORDER_DETAIL"
	CancelOrder    PathKey = "CANCEL_ORDER"
)

// DefaultPaths returns a fresh copy of the standard path table.
func DefaultPaths() map[PathKey]string {
	return map[PathKey]string{
		GetBannerList:   "/home/banner",
		GetQuickActions: "/home/quickActions",
		GetCategories:   "/home/categories",
		GetHotProducts:  "/home/hotProducts",
		GetNewProducts:  "/home/newProducts",

		GetCategoryList:     "/category/list",
		GetCategoryProducts: "/category/products",

		GetSeckillInfo:     "/seckill/info",
		GetSeckillProducts: "/seckill/products",

		GetCartList:        "/cart/list",
		AddToCart:          "/cart/add",
		UpdateCartQuantity: "/cart/update",
		DeleteCartItem:     "/cart/delete",

		GetUserInfo:   "/user/info",
		GetUserOrders: "/user/orders",
		GetUserPoints: "/user/points",

		SearchProducts: "/search/products",
		GetHotKeywords: "/search/hotKeywords",

		CreateOrder:    "/order/create",
		GetOrderDetail: "/order/detail",
		CancelOrder:    "/order/cancel",
	}
}
