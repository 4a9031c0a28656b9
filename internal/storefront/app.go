package storefront

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tirona-thrift/internal/admin"
	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/gateway"
	"tirona-thrift/internal/logger"
	"tirona-thrift/internal/metrics"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
	"tirona-thrift/internal/session"
	"tirona-thrift/internal/stylist"
	"tirona-thrift/internal/view"
)

// Authenticator exchanges the admin passphrase for a session token.
type Authenticator interface {
	Login(ctx context.Context, password string) (string, error)
}

// Advisor is the AI side of the shop.
type Advisor interface {
	Recommend(ctx context.Context, vibe string, inventory []product.Product) stylist.Recommendation
	Ask(ctx context.Context, p product.Product, question string) string
}

type Deps struct {
	API       gateway.API
	Auth      Authenticator
	Session   *session.Session
	Advisor   Advisor
	Metrics   *metrics.Gateway
	StartPath string
}

// App is the storefront application context. It owns every piece of
// shopper and admin state and is the only thing the UI layer talks to.
type App struct {
	router     *view.Router
	catalog    *product.Store
	orders     *order.Store
	cart       *cart.Cart
	session    *session.Session
	gateway    *gateway.Fallback
	auth       Authenticator
	advisor    Advisor
	reconciler *order.Reconciler
	editor     *admin.Editor
	metrics    *metrics.Gateway

	mu       sync.Mutex
	cartOpen bool
}

func New(deps Deps) *App {
	m := deps.Metrics
	if m == nil {
		m = &metrics.Gateway{}
	}

	catalog := product.NewStore()
	orders := order.NewStore()
	gw := gateway.NewFallback(deps.API, m)

	return &App{
		router:     view.NewRouter(deps.StartPath),
		catalog:    catalog,
		orders:     orders,
		cart:       cart.New(),
		session:    deps.Session,
		gateway:    gw,
		auth:       deps.Auth,
		advisor:    deps.Advisor,
		reconciler: order.NewReconciler(gw, orders),
		editor:     admin.NewEditor(gw, catalog, orders),
		metrics:    m,
	}
}

// Start fetches the catalog and the order list. Neither fetch can fail; an
// unreachable backend leaves the bundled dataset in place.
func (a *App) Start(ctx context.Context) {
	products, _ := a.gateway.GetProducts(ctx)
	a.catalog.Load(products)

	orders, _ := a.gateway.GetOrders(ctx)
	a.orders.Load(orders)

	logger.FromCtx(ctx).Info("storefront ready",
		zap.Int("products", a.catalog.Len()),
		zap.Int("orders", a.orders.Len()),
		zap.String("view", string(a.router.State())),
	)
}

func (a *App) Router() *view.Router      { return a.router }
func (a *App) Catalog() *product.Store   { return a.catalog }
func (a *App) Orders() *order.Store      { return a.orders }
func (a *App) Cart() *cart.Cart          { return a.cart }
func (a *App) Editor() *admin.Editor     { return a.editor }
func (a *App) Metrics() *metrics.Gateway { return a.metrics }
func (a *App) Session() *session.Session { return a.session }

// AddToCart adds p and opens the cart panel.
func (a *App) AddToCart(p product.Product) cart.Item {
	item := a.cart.Add(p)
	a.SetCartOpen(true)
	return item
}

func (a *App) CartOpen() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cartOpen
}

func (a *App) SetCartOpen(open bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = open
}

func (a *App) ToggleCart() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cartOpen = !a.cartOpen
	return a.cartOpen
}

// Checkout buys one unit of a catalog product directly.
func (a *App) Checkout(ctx context.Context, productID string, details order.CustomerDetails) (order.Order, error) {
	p, ok := a.catalog.Get(productID)
	if !ok {
		return order.Order{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return a.reconciler.Submit(ctx, p, details)
}

// CheckoutCart places one order for everything in the cart and closes the panel.
func (a *App) CheckoutCart(ctx context.Context, details order.CustomerDetails) (order.Order, error) {
	o, err := a.reconciler.SubmitCart(ctx, a.cart, details)
	if err != nil {
		return order.Order{}, err
	}
	a.SetCartOpen(false)
	return o, nil
}

// Login moves the router into the admin panel once the backend accepts the passphrase.
// Any failure, including an unreachable backend, is reported as ErrAccessDenied.
func (a *App) Login(ctx context.Context, password string) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "storefront"))

	// already signed in: no second passphrase exchange
	if a.router.State() == view.Admin && a.session.Authenticated() {
		return nil
	}

	if a.router.State() == view.Landing {
		if _, err := a.router.Fire(view.EnterAdmin); err != nil {
			return err
		}
	}

	token, err := a.auth.Login(ctx, password)
	if err != nil {
		log.Warn("admin login rejected", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}

	if err := a.session.SignIn(token); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	if a.router.State() == view.AdminLogin {
		if _, err := a.router.Fire(view.Authenticated); err != nil {
			return err
		}
	}
	log.Info("admin signed in")
	return nil
}

// CancelLogin leaves the login screen without authenticating.
func (a *App) CancelLogin() error {
	_, err := a.router.Fire(view.Cancel)
	return err
}

// Logout forgets the token and returns to the shop. It is safe to call from any view.
func (a *App) Logout() error {
	if err := a.session.SignOut(); err != nil {
		return err
	}
	a.editor.Cancel()
	if a.router.State() == view.Admin {
		if _, err := a.router.Fire(view.Logout); err != nil {
			return err
		}
	}
	return nil
}

// ResumeSession reopens the admin panel when a token survived from an earlier run.
func (a *App) ResumeSession() bool {
	if !a.session.Authenticated() {
		return false
	}
	if a.router.State() == view.Landing {
		if _, err := a.router.Fire(view.EnterAdmin); err != nil {
			return false
		}
	}
	if a.router.State() == view.AdminLogin {
		if _, err := a.router.Fire(view.Authenticated); err != nil {
			return false
		}
	}
	return true
}

// RequireAdmin returns ErrNotAdmin unless the panel is open and a token is held.
func (a *App) RequireAdmin() error {
	if a.router.State() != view.Admin || !a.session.Authenticated() {
		return ErrNotAdmin
	}
	return nil
}

// Recommend asks the stylist for pieces matching vibe and resolves them
// against the live catalog. Unknown ids are dropped.
func (a *App) Recommend(ctx context.Context, vibe string) (stylist.Recommendation, []product.Product) {
	rec := a.advisor.Recommend(ctx, vibe, a.catalog.List())
	return rec, a.catalog.FindByIDs(rec.RecommendedIDs)
}

func (a *App) Ask(ctx context.Context, productID, question string) (string, error) {
	p, ok := a.catalog.Get(productID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return a.advisor.Ask(ctx, p, question), nil
}
