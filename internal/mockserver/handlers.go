package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/xinfuli/points-mall/internal/mock"
	"github.com/xinfuli/points-mall/internal/mockserver/respond"
	"github.com/xinfuli/points-mall/internal/types"
)

// Handler serves every operation from the fixture source.
type Handler struct {
	src *mock.Source
}

func NewHandler(src *mock.Source) *Handler { return &Handler{src: src} }

// reply writes the source result, mapping its error to a 5xx.
func reply[T any](w http.ResponseWriter, env *types.Envelope[T], err error) {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respond.WriteError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteEnvelope(w, env)
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func pageParams(r *http.Request) (types.PageParams, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return types.PageParams{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return types.PageParams{}, err
	}
	return types.PageParams{Page: page, Limit: limit}, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

// GetBannerList GET /home/banner
func (h *Handler) GetBannerList(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetBannerList(r.Context())
	reply(w, env, err)
}

// GetQuickActions GET /home/quickActions
func (h *Handler) GetQuickActions(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetQuickActions(r.Context())
	reply(w, env, err)
}

// GetUserPoints GET /user/points
func (h *Handler) GetUserPoints(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetUserPoints(r.Context())
	reply(w, env, err)
}

// GetCategories GET /home/categories
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetCategories(r.Context())
	reply(w, env, err)
}

// GetHotProducts GET /home/hotProducts?page=&limit=
func (h *Handler) GetHotProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pageParams(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.GetHotProducts(r.Context(), p.OrDefault())
	reply(w, env, err)
}

// GetNewProducts GET /home/newProducts?page=&limit=
func (h *Handler) GetNewProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pageParams(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.GetNewProducts(r.Context(), p.OrDefault())
	reply(w, env, err)
}

// GetCategoryList GET /category/list
func (h *Handler) GetCategoryList(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetCategoryList(r.Context())
	reply(w, env, err)
}

// GetCategoryProducts GET /category/products?categoryId=&page=&limit=
func (h *Handler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pageParams(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.GetCategoryProducts(r.Context(), types.CategoryProductsParams{
		CategoryID: r.URL.Query().Get("categoryId"),
		Page:       p.Page,
		Limit:      p.Limit,
	})
	reply(w, env, err)
}

// GetSeckillInfo GET /seckill/info
func (h *Handler) GetSeckillInfo(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetSeckillInfo(r.Context())
	reply(w, env, err)
}

// GetSeckillProducts GET /seckill/products?sessionId=&page=&limit=
func (h *Handler) GetSeckillProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pageParams(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	session, err := queryInt(r, "sessionId")
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.GetSeckillProducts(r.Context(), types.SeckillProductsParams{
		SessionID: session,
		Page:      p.Page,
		Limit:     p.Limit,
	})
	reply(w, env, err)
}

// GetCartList GET /cart/list
func (h *Handler) GetCartList(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetCartList(r.Context())
	reply(w, env, err)
}

// AddToCart POST /cart/add
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req types.AddToCartRequest
	if err := decode(r, &req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := types.ValidatePositive(req.ProductID, "productId"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := types.ValidatePositive(req.Quantity, "quantity"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.AddToCart(r.Context(), req)
	reply(w, env, err)
}

// UpdateCartQuantity PUT /cart/update
func (h *Handler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateCartRequest
	if err := decode(r, &req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := types.ValidatePositive(req.CartItemID, "cartItemId"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := types.ValidatePositive(req.Quantity, "quantity"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.UpdateCartQuantity(r.Context(), req)
	reply(w, env, err)
}

// DeleteCartItem DELETE /cart/delete/{id}
func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respond.WriteBadRequest(w, "cartItemId must be an integer")
		return
	}
	if err := types.ValidatePositive(id, "cartItemId"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.DeleteCartItem(r.Context(), id)
	reply(w, env, err)
}

// GetUserInfo GET /user/info
func (h *Handler) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetUserInfo(r.Context())
	reply(w, env, err)
}

// GetUserOrders GET /user/orders
func (h *Handler) GetUserOrders(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetUserOrders(r.Context())
	reply(w, env, err)
}

// SearchProducts GET /search/products?keyword=&page=&limit=
func (h *Handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	p, err := pageParams(r)
	if err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.SearchProducts(r.Context(), types.SearchParams{
		Keyword: r.URL.Query().Get("keyword"),
		Page:    p.Page,
		Limit:   p.Limit,
	})
	reply(w, env, err)
}

// GetHotKeywords GET /search/hotKeywords
func (h *Handler) GetHotKeywords(w http.ResponseWriter, r *http.Request) {
	env, err := h.src.GetHotKeywords(r.Context())
	reply(w, env, err)
}

// CreateOrder POST /order/create
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req types.CreateOrderRequest
	if err := decode(r, &req); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if len(req.Products) == 0 {
		respond.WriteBadRequest(w, "products must not be empty")
		return
	}
	env, err := h.src.CreateOrder(r.Context(), req)
	reply(w, env, err)
}

// GetOrderDetail GET /order/detail/{id}
func (h *Handler) GetOrderDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := types.ValidateIDPresent(id, "orderId"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.GetOrderDetail(r.Context(), id)
	reply(w, env, err)
}

// CancelOrder POST /order/cancel/{id}
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := types.ValidateIDPresent(id, "orderId"); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	env, err := h.src.CancelOrder(r.Context(), id)
	reply(w, env, err)
}
