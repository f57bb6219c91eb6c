package types

import (
	"fmt"
	"time"
)

// ------------------------------
// Envelope
// ------------------------------

// CodeSuccess is the envelope code that signals success.
const CodeSuccess = 200

// Envelope wraps the payload of every API call.
type Envelope[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// OK reports whether the envelope carries a success code.
func (e *Envelope[T]) OK() bool { return e.Code == CodeSuccess }

// Result unwraps the envelope. A non-success code becomes an *APIError so the
// caller cannot read Data without handling the failure.
func (e *Envelope[T]) Result() (T, error) {
	if !e.OK() {
		var zero T
		return zero, &APIError{Code: e.Code, Message: e.Message}
	}
	return e.Data, nil
}

// Success wraps data in a success envelope stamped with the current time.
func Success[T any](data T) *Envelope[T] {
	return &Envelope[T]{
		Code:      CodeSuccess,
		Message:   "success",
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}
}

// Failure builds an error envelope with no data.
func Failure(code int, message string) *Envelope[any] {
	return &Envelope[any]{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}
}

// APIError is a business-level failure reported in-band by the envelope code.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// ------------------------------
// Response Types
// ------------------------------

// ProductPage is a product list with the pagination the caller asked for.
type ProductPage struct {
	List  []Product `json:"list"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// CategoryProductPage is a product list echoing the category query.
type CategoryProductPage struct {
	List       []Product `json:"list"`
	Total      int       `json:"total"`
	CategoryID string    `json:"categoryId,omitempty"`
	Page       int       `json:"page,omitempty"`
	Limit      int       `json:"limit,omitempty"`
}

// SeckillProductPage is a flash-sale product list echoing the session query.
type SeckillProductPage struct {
	List      []SeckillProduct `json:"list"`
	Total     int              `json:"total"`
	SessionID int              `json:"sessionId,omitempty"`
	Page      int              `json:"page,omitempty"`
	Limit     int              `json:"limit,omitempty"`
}

// SearchResult is the outcome of a keyword search.
type SearchResult struct {
	List    []Product `json:"list"`
	Total   int       `json:"total"`
	Keyword string    `json:"keyword"`
}

// ActionAck acknowledges a cart or order mutation.
type ActionAck struct {
	Message string `json:"message"`
}

// OrderAck acknowledges order creation.
type OrderAck struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}
