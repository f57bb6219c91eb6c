package types

// ------------------------------
// Home
// ------------------------------

// Banner is one slide of the home carousel.
type Banner struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Desc     string `json:"desc"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	BgColor  string `json:"bgColor"`
}

// QuickAction is a shortcut tile on the home page.
type QuickAction struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Link  string `json:"link"`
}

// UserPoints summarises the points balance shown on the home page.
type UserPoints struct {
	Available   int `json:"available"`
	Total       int `json:"total"`
	TodayEarned int `json:"todayEarned"`
	Expiring    int `json:"expiring"`
}

// Category is a flat home-page category.
type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ProductCount int    `json:"productCount"`
}

// Product is a redeemable item. Price is in points; OriginalPrice in yuan.
type Product struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         int    `json:"price"`
	OriginalPrice int    `json:"originalPrice"`
	Tag           string `json:"tag"`
	TagType       string `json:"tagType"`
	Sales         int    `json:"sales"`
}

// ------------------------------
// Category page
// ------------------------------

// CategoryGroup is a top-level entry of the category page sidebar.
type CategoryGroup struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// ------------------------------
// Seckill
// ------------------------------

// Seckill session statuses.
const (
	SeckillUpcoming = "upcoming"
	SeckillActive   = "active"
	SeckillEnded    = "ended"
)

type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// SeckillInfo describes the current flash-sale session.
type SeckillInfo struct {
	SessionID int       `json:"sessionId"`
	Status    string    `json:"status"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Countdown Countdown `json:"countdown"`
}

// SeckillProduct is a product in a flash-sale session. Progress is the sold
// percentage.
type SeckillProduct struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	SeckillPrice  int    `json:"seckillPrice"`
	OriginalPrice int    `json:"originalPrice"`
	Progress      int    `json:"progress"`
	Stock         int    `json:"stock"`
	TotalStock    int    `json:"totalStock"`
}

// ------------------------------
// Cart
// ------------------------------

// CartShop groups cart lines by seller.
type CartShop struct {
	ShopID   int           `json:"shopId"`
	ShopName string        `json:"shopName"`
	Products []CartProduct `json:"products"`
}

type CartProduct struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Spec     string `json:"spec"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Checked  bool   `json:"checked"`
}

// ------------------------------
// User
// ------------------------------

type PointsBalance struct {
	Available int `json:"available"`
	Frozen    int `json:"frozen"`
	Total     int `json:"total"`
	Expiring  int `json:"expiring"`
}

type UserInfo struct {
	UserID    int           `json:"userId"`
	Username  string        `json:"username"`
	Avatar    string        `json:"avatar"`
	Level     string        `json:"level"`
	LevelIcon string        `json:"levelIcon"`
	Points    PointsBalance `json:"points"`
	Coupons   int           `json:"coupons"`
}

// OrderCounts holds the per-state order badges of the user page.
type OrderCounts struct {
	Unpaid    int `json:"unpaid"`
	Unshipped int `json:"unshipped"`
	Shipped   int `json:"shipped"`
	Unreview  int `json:"unreview"`
}

// ------------------------------
// Order
// ------------------------------

// OrderStatusPending is the status of a freshly created order.
const OrderStatusPending = "pending"

type OrderDetail struct {
	OrderID     string        `json:"orderId"`
	Status      string        `json:"status"`
	Products    []CartProduct `json:"products"`
	TotalPoints int           `json:"totalPoints"`
}
