package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tirona-thrift/internal/auth"
	"tirona-thrift/internal/cache"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/middleware"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
)

// ProductStore is the slice of product.Repository the handlers need.
type ProductStore interface {
	List(ctx context.Context) ([]product.Product, error)
	Update(ctx context.Context, p product.Product) (product.Product, error)
}

type OrderStore interface {
	List(ctx context.Context) ([]order.Order, error)
	Create(ctx context.Context, params order.CreateOrderParams) (order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) error
}

// Authenticator turns the admin passphrase into a token.
type Authenticator interface {
	Login(password string) (string, error)
}

type Handler struct {
	products ProductStore
	orders   OrderStore
	cache    cache.ProductCache
	admin    Authenticator
	tokens   middleware.TokenParser

	loginLimiter *middleware.Limiter
	orderLimiter *middleware.Limiter
}

type Deps struct {
	Products     ProductStore
	Orders       OrderStore
	Cache        cache.ProductCache
	Admin        Authenticator
	Tokens       middleware.TokenParser
	LoginLimiter *middleware.Limiter
	OrderLimiter *middleware.Limiter
}

func NewHandler(deps Deps) *Handler {
	c := deps.Cache
	if c == nil {
		c = cache.Nop{}
	}
	login := deps.LoginLimiter
	if login == nil {
		login = middleware.NewLimiter(middleware.LimitStrict, middleware.BurstStrict)
	}
	orders := deps.OrderLimiter
	if orders == nil {
		orders = middleware.NewLimiter(middleware.LimitGeneral, middleware.BurstGeneral)
	}
	return &Handler{
		products:     deps.Products,
		orders:       deps.Orders,
		cache:        c,
		admin:        deps.Admin,
		tokens:       deps.Tokens,
		loginLimiter: login,
		orderLimiter: orders,
	}
}

// RegisterRoutes mounts the storefront API on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)

	r.Get("/products", h.ListProducts)
	r.Get("/orders", h.ListOrders)
	r.With(middleware.RateLimit(h.orderLimiter)).Post("/orders", h.CreateOrder)
	r.With(middleware.RateLimit(h.loginLimiter)).Post("/admin/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(h.tokens))
		r.Put("/products/{id}", h.UpdateProduct)
		r.Put("/orders/{id}", h.UpdateOrder)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if products, ok := h.cache.Products(ctx); ok {
		writeJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.products.List(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	h.cache.StoreProducts(ctx, products)
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var p product.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.ID != "" && p.ID != id {
		writeError(w, http.StatusBadRequest, "product id does not match path")
		return
	}
	p.ID = id

	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.products.Update(ctx, p)
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	h.cache.Invalidate(ctx)
	logger.FromCtx(ctx).Info("product updated", zap.String("product_id", id))
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var params order.CreateOrderParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := params.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.orders.Create(ctx, params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
	)
	writeJSON(w, http.StatusCreated, o)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.orders.UpdateStatus(r.Context(), id, status)
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.admin.Login(req.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		logger.FromCtx(r.Context()).Warn("admin login rejected", zap.String("remote_ip", r.RemoteAddr))
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
