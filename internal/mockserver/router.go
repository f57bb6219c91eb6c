package mockserver

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xinfuli/points-mall/config"
	"github.com/xinfuli/points-mall/internal/mockserver/respond"
)

// route binds one path key to its verb and handler. Keys with withID take a
// trailing /{id} segment.
type route struct {
	key     config.PathKey
	method  string
	withID  bool
	handler func(*Handler) http.HandlerFunc
}

var routes = []route{
	{config.GetBannerList, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetBannerList }},
	{config.GetQuickActions, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetQuickActions }},
	{config.GetUserPoints, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetUserPoints }},
	{config.GetCategories, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetCategories }},
	{config.GetHotProducts, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetHotProducts }},
	{config.GetNewProducts, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetNewProducts }},
	{config.GetCategoryList, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetCategoryList }},
	{config.GetCategoryProducts, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetCategoryProducts }},
	{config.GetSeckillInfo, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetSeckillInfo }},
	{config.GetSeckillProducts, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetSeckillProducts }},
	{config.GetCartList, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetCartList }},
	{config.AddToCart, http.MethodPost, false, func(h *Handler) http.HandlerFunc { return h.AddToCart }},
	{config.UpdateCartQuantity, http.MethodPut, false, func(h *Handler) http.HandlerFunc { return h.UpdateCartQuantity }},
	{config.DeleteCartItem, http.MethodDelete, true, func(h *Handler) http.HandlerFunc { return h.DeleteCartItem }},
	{config.GetUserInfo, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetUserInfo }},
	{config.GetUserOrders, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetUserOrders }},
	{config.SearchProducts, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.SearchProducts }},
	{config.GetHotKeywords, http.MethodGet, false, func(h *Handler) http.HandlerFunc { return h.GetHotKeywords }},
	{config.CreateOrder, http.MethodPost, false, func(h *Handler) http.HandlerFunc { return h.CreateOrder }},
	{config.GetOrderDetail, http.MethodGet, true, func(h *Handler) http.HandlerFunc { return h.GetOrderDetail }},
	{config.CancelOrder, http.MethodPost, true, func(h *Handler) http.HandlerFunc { return h.CancelOrder }},
}

// buildRouter mounts every operation of paths under prefix, plus /healthz and
// /metrics at the root. Each route is counted in reg.
func buildRouter(h *Handler, prefix string, paths map[config.PathKey]string, reg *prometheus.Registry) (*mux.Router, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mall_mock_server",
			Name:      "requests_total",
			Help:      "Requests served by the dev backend.",
		},
		[]string{"route", "code", "method"},
	)
	if err := reg.Register(requests); err != nil {
		return nil, err
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteNotFound(w, "no route for "+r.URL.Path)
	})
	notAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	root := mux.NewRouter()
	root.Use(Recover, requestLogger)
	root.NotFoundHandler = notFound
	root.MethodNotAllowedHandler = notAllowed

	root.HandleFunc("/healthz", CheckHealth).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})).Methods(http.MethodGet)

	// Registered on root: a prefix subrouter answers verb mismatches with 404.
	for _, rt := range routes {
		p, ok := paths[rt.key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", config.ErrUnknownPathKey, rt.key)
		}
		if rt.withID {
			p += "/{id}"
		}
		counted := promhttp.InstrumentHandlerCounter(
			requests.MustCurryWith(prometheus.Labels{"route": string(rt.key)}),
			rt.handler(h),
		)
		root.Handle(prefix+p, counted).Methods(rt.method).Name(string(rt.key))
	}

	return root, nil
}
