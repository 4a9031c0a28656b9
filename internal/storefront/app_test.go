package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tirona-thrift/internal/cart"
	"tirona-thrift/internal/gateway"
	"tirona-thrift/internal/order"
	"tirona-thrift/internal/product"
	"tirona-thrift/internal/session"
	"tirona-thrift/internal/stylist"
	"tirona-thrift/internal/view"
)

var errOffline = &gateway.FetchError{Op: "test", Endpoint: "/", Err: errors.New("offline")}

// offlineAPI is a backend that can never be reached.
type offlineAPI struct{}

func (offlineAPI) GetProducts(context.Context) ([]product.Product, error) { return nil, errOffline }
func (offlineAPI) GetOrders(context.Context) ([]order.Order, error)       { return nil, errOffline }
func (offlineAPI) CreateOrder(context.Context, order.CreateOrderParams) (order.Order, error) {
	return order.Order{}, errOffline
}
func (offlineAPI) UpdateProduct(context.Context, product.Product) (product.Product, error) {
	return product.Product{}, errOffline
}
func (offlineAPI) UpdateOrder(context.Context, string, order.Status) error { return errOffline }

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Recommend(ctx context.Context, vibe string, inventory []product.Product) stylist.Recommendation {
	args := m.Called(ctx, vibe, inventory)
	return args.Get(0).(stylist.Recommendation)
}

func (m *MockAdvisor) Ask(ctx context.Context, p product.Product, question string) string {
	args := m.Called(ctx, p, question)
	return args.String(0)
}

var details = order.CustomerDetails{
	Name:    "Ardit",
	Address: "Rruga e Kavajes 10",
	Phone:   "+355690000000",
	Email:   "ardit@example.com",
}

func newOfflineApp(t *testing.T, path string) (*App, *MockAuthenticator, *MockAdvisor) {
	t.Helper()
	auth := new(MockAuthenticator)
	advisor := new(MockAdvisor)
	app := New(Deps{
		API:       offlineAPI{},
		Auth:      auth,
		Session:   session.New(&session.MemoryStore{}),
		Advisor:   advisor,
		StartPath: path,
	})
	app.Start(context.Background())
	return app, auth, advisor
}

func TestApp_StartOffline(t *testing.T) {
	app, _, _ := newOfflineApp(t, "/")

	assert.Equal(t, product.Fallback(), app.Catalog().List())
	assert.Equal(t, order.Fallback(), app.Orders().List())
	assert.Equal(t, view.Landing, app.Router().State())
	assert.Equal(t, uint64(2), app.Metrics().DegradedReads.Load())
}

func TestApp_StartOnAdminPath(t *testing.T) {
	app, _, _ := newOfflineApp(t, "/admin")
	assert.Equal(t, view.AdminLogin, app.Router().State())
}

func TestApp_AddToCartOpensCart(t *testing.T) {
	app, _, _ := newOfflineApp(t, "/")
	p, _ := app.Catalog().Get("1")

	assert.False(t, app.CartOpen())
	app.AddToCart(p)
	item := app.AddToCart(p)

	assert.True(t, app.CartOpen())
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 2*p.Price, app.Cart().TotalPrice())

	assert.False(t, app.ToggleCart())
	assert.True(t, app.ToggleCart())
}

func TestApp_CheckoutOffline(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newOfflineApp(t, "/")

	o, err := app.Checkout(ctx, "1", details)
	require.NoError(t, err)

	p, _ := app.Catalog().Get("1")
	assert.True(t, gateway.IsLocalOrderID(o.ID))
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, p.Price, o.Total)
	assert.Equal(t, []cart.Item{{Product: p, Quantity: 1}}, o.Items)

	orders := app.Orders().List()
	assert.Equal(t, o.ID, orders[0].ID)
	assert.Len(t, orders, 3)
	assert.Equal(t, "ORDER CONFIRMED FOR ARDIT. CHECK EMAIL.", order.Confirmation(o))

	_, err = app.Checkout(ctx, "nope", details)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestApp_CheckoutCart(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newOfflineApp(t, "/")

	_, err := app.CheckoutCart(ctx, details)
	assert.ErrorIs(t, err, cart.ErrCartEmpty)

	a, _ := app.Catalog().Get("1")
	b, _ := app.Catalog().Get("2")
	app.AddToCart(a)
	app.AddToCart(a)
	app.AddToCart(b)
	want := app.Cart().TotalPrice()

	o, err := app.CheckoutCart(ctx, details)
	require.NoError(t, err)
	assert.Equal(t, want, o.Total)
	assert.Len(t, o.Items, 2)
	assert.True(t, app.Cart().IsEmpty())
	assert.False(t, app.CartOpen())
}

func TestApp_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app, auth, _ := newOfflineApp(t, "/")
		auth.On("Login", ctx, "letmein").Return("tok", nil)

		require.NoError(t, app.Login(ctx, "letmein"))
		assert.Equal(t, view.Admin, app.Router().State())
		assert.NoError(t, app.RequireAdmin())

		token, _ := app.Session().Token()
		assert.Equal(t, "tok", token)
	})

	t.Run("Rejected", func(t *testing.T) {
		app, auth, _ := newOfflineApp(t, "/admin")
		auth.On("Login", ctx, "wrong").Return("", gateway.ErrInvalidCredentials)

		err := app.Login(ctx, "wrong")
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, view.AdminLogin, app.Router().State())
		assert.False(t, app.Session().Authenticated())
		assert.ErrorIs(t, app.RequireAdmin(), ErrNotAdmin)

		require.NoError(t, app.CancelLogin())
		assert.Equal(t, view.Landing, app.Router().State())
	})

	t.Run("AlreadyAdmin", func(t *testing.T) {
		app, auth, _ := newOfflineApp(t, "/")
		auth.On("Login", ctx, "letmein").Return("tok", nil).Once()
		require.NoError(t, app.Login(ctx, "letmein"))

		require.NoError(t, app.Login(ctx, "letmein"))
		assert.Equal(t, view.Admin, app.Router().State())
		auth.AssertNumberOfCalls(t, "Login", 1)
	})

	t.Run("AfterResumedSession", func(t *testing.T) {
		store := &session.MemoryStore{}
		require.NoError(t, store.Save("stored"))
		auth := new(MockAuthenticator)
		app := New(Deps{API: offlineAPI{}, Auth: auth, Session: session.New(store), StartPath: "/"})
		require.True(t, app.ResumeSession())

		require.NoError(t, app.Login(ctx, "letmein"))
		auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
		token, _ := app.Session().Token()
		assert.Equal(t, "stored", token)
	})

	t.Run("Logout", func(t *testing.T) {
		app, auth, _ := newOfflineApp(t, "/")
		auth.On("Login", ctx, "letmein").Return("tok", nil)
		require.NoError(t, app.Login(ctx, "letmein"))

		require.NoError(t, app.Logout())
		assert.Equal(t, view.Landing, app.Router().State())
		assert.False(t, app.Session().Authenticated())
	})
}

func TestApp_ResumeSession(t *testing.T) {
	store := &session.MemoryStore{}
	require.NoError(t, store.Save("tok"))

	app := New(Deps{API: offlineAPI{}, Session: session.New(store), StartPath: "/"})
	assert.True(t, app.ResumeSession())
	assert.Equal(t, view.Admin, app.Router().State())

	empty := New(Deps{API: offlineAPI{}, Session: session.New(&session.MemoryStore{}), StartPath: "/"})
	assert.False(t, empty.ResumeSession())
	assert.Equal(t, view.Landing, empty.Router().State())
}

func TestApp_AdminSaveOfflineKeepsDraft(t *testing.T) {
	ctx := context.Background()
	app, _, _ := newOfflineApp(t, "/")
	before, _ := app.Catalog().Get("2")

	app.Editor().BeginEdit(before)
	require.NoError(t, app.Editor().SetField("price", 1))

	_, err := app.Editor().Save(ctx)
	require.Error(t, err)

	after, _ := app.Catalog().Get("2")
	assert.Equal(t, before, after)
	assert.True(t, app.Editor().Editing())
	assert.Equal(t, uint64(1), app.Metrics().FailedAdminWrites.Load())
}

func TestApp_Recommend(t *testing.T) {
	ctx := context.Background()
	app, _, advisor := newOfflineApp(t, "/")

	rec := stylist.Recommendation{RecommendedIDs: []string{"3", "999", "1"}, Commentary: "hard"}
	advisor.On("Recommend", ctx, "matrix", app.Catalog().List()).Return(rec)

	got, products := app.Recommend(ctx, "matrix")
	assert.Equal(t, rec, got)
	require.Len(t, products, 2)
	assert.Equal(t, "3", products[0].ID)
	assert.Equal(t, "1", products[1].ID)
}

func TestApp_Ask(t *testing.T) {
	ctx := context.Background()
	app, _, advisor := newOfflineApp(t, "/")
	p, _ := app.Catalog().Get("1")
	advisor.On("Ask", ctx, p, "still there?").Return("yea, grab it")

	answer, err := app.Ask(ctx, "1", "still there?")
	require.NoError(t, err)
	assert.Equal(t, "yea, grab it", answer)

	_, err = app.Ask(ctx, "404", "hello")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
