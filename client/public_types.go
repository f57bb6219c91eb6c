package client

import "github.com/xinfuli/points-mall/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	PageParams             = types.PageParams
	CategoryProductsParams = types.CategoryProductsParams
	SeckillProductsParams  = types.SeckillProductsParams
	SearchParams           = types.SearchParams
	AddToCartRequest       = types.AddToCartRequest
	UpdateCartRequest      = types.UpdateCartRequest
	OrderLine              = types.OrderLine
	CreateOrderRequest     = types.CreateOrderRequest

	// Domain entities
	Banner         = types.Banner
	QuickAction    = types.QuickAction
	UserPoints     = types.UserPoints
	Category       = types.Category
	Product        = types.Product
	CategoryGroup  = types.CategoryGroup
	Subcategory    = types.Subcategory
	Countdown      = types.Countdown
	SeckillInfo    = types.SeckillInfo
	SeckillProduct = types.SeckillProduct
	CartShop       = types.CartShop
	CartProduct    = types.CartProduct
	PointsBalance  = types.PointsBalance
	UserInfo       = types.UserInfo
	OrderCounts    = types.OrderCounts
	OrderDetail    = types.OrderDetail

	// Responses
	ProductPage         = types.ProductPage
	CategoryProductPage = types.CategoryProductPage
	SeckillProductPage  = types.SeckillProductPage
	SearchResult        = types.SearchResult
	ActionAck           = types.ActionAck
	OrderAck            = types.OrderAck
)

// DefaultPage is applied when a zero PageParams is passed.
var DefaultPage = types.DefaultPage

// Errors re-exported in errors.go
