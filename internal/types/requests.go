package types

import "strconv"

// ------------------------------
// Request Types
// ------------------------------

// PageParams holds pagination for list endpoints.
type PageParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultPage is used when a caller passes a zero PageParams.
var DefaultPage = PageParams{Page: 1, Limit: 10}

// OrDefault returns DefaultPage when p is the zero value.
func (p PageParams) OrDefault() PageParams {
	if p == (PageParams{}) {
		return DefaultPage
	}
	return p
}

// Query renders p as query parameters.
func (p PageParams) Query() map[string]string {
	return map[string]string{
		"page":  strconv.Itoa(p.Page),
		"limit": strconv.Itoa(p.Limit),
	}
}

// CategoryProductsParams selects products of one category.
type CategoryProductsParams struct {
	CategoryID string `json:"categoryId,omitempty"`
	Page       int    `json:"page,omitempty"`
	Limit      int    `json:"limit,omitempty"`
}

func (p CategoryProductsParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	if p.CategoryID != "" {
		q["categoryId"] = p.CategoryID
	}
	return q
}

// SeckillProductsParams selects products of one flash-sale session.
type SeckillProductsParams struct {
	SessionID int `json:"sessionId,omitempty"`
	Page      int `json:"page,omitempty"`
	Limit     int `json:"limit,omitempty"`
}

func (p SeckillProductsParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	if p.SessionID != 0 {
		q["sessionId"] = strconv.Itoa(p.SessionID)
	}
	return q
}

// SearchParams holds a product search.
type SearchParams struct {
	Keyword string `json:"keyword"`
	Page    int    `json:"page,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (p SearchParams) Query() map[string]string {
	q := pageQuery(p.Page, p.Limit)
	q["keyword"] = p.Keyword
	return q
}

// AddToCartRequest adds a product to the cart.
type AddToCartRequest struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Spec      string `json:"spec,omitempty"`
}

// UpdateCartRequest changes the quantity of a cart line.
type UpdateCartRequest struct {
	CartItemID int `json:"cartItemId"`
	Quantity   int `json:"quantity"`
}

// OrderLine is one product of an order being created.
type OrderLine struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Spec      string `json:"spec,omitempty"`
}

// CreateOrderRequest places an order for the given lines.
type CreateOrderRequest struct {
	Products    []OrderLine `json:"products"`
	AddressID   int         `json:"addressId,omitempty"`
	TotalPoints int         `json:"totalPoints,omitempty"`
	Remark      string      `json:"remark,omitempty"`
}

// pageQuery only includes values that were set.
func pageQuery(page, limit int) map[string]string {
	q := make(map[string]string, 3)
	if page != 0 {
		q["page"] = strconv.Itoa(page)
	}
	if limit != 0 {
		q["limit"] = strconv.Itoa(limit)
	}
	return q
}
