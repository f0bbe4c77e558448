package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

var errStubUnused = errors.New("stub method not configured")

// fakeCarts is an in-memory CartService keyed by client id.
type fakeCarts struct {
	carts    map[string]*domain.Cart
	clearErr error
	cleared  []string
}

func newFakeCarts() *fakeCarts {
	return &fakeCarts{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCarts) cart(clientID string) *domain.Cart {
	cart, ok := f.carts[clientID]
	if !ok {
		cart = &domain.Cart{}
		f.carts[clientID] = cart
	}
	return cart
}

func (f *fakeCarts) Get(ctx context.Context, clientID string) (*domain.Cart, error) {
	return f.cart(clientID), nil
}

func (f *fakeCarts) Add(ctx context.Context, clientID string, item domain.LineItem) (*domain.Cart, error) {
	cart := f.cart(clientID)
	cart.Add(item)
	return cart, nil
}

func (f *fakeCarts) SetQuantity(ctx context.Context, clientID string, bookID int64, quantity int) (*domain.Cart, error) {
	cart := f.cart(clientID)
	cart.SetQuantity(bookID, quantity)
	return cart, nil
}

func (f *fakeCarts) Remove(ctx context.Context, clientID string, bookID int64) (*domain.Cart, error) {
	cart := f.cart(clientID)
	cart.Remove(bookID)
	return cart, nil
}

func (f *fakeCarts) Clear(ctx context.Context, clientID string) error {
	f.cleared = append(f.cleared, clientID)
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cart(clientID).Clear()
	return nil
}

// fakeGateway implements BookstoreGateway with per-method function fields;
// unconfigured methods fail the call.
type fakeGateway struct {
	loginFn      func(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error)
	getBookFn    func(ctx context.Context, id int64) (*domain.Book, error)
	placeOrderFn func(ctx context.Context, token string, input ports.PlaceOrderInput) (*domain.Order, error)
	listOrdersFn func(ctx context.Context, token string) ([]domain.Order, error)
}

func (f *fakeGateway) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	if f.loginFn == nil {
		return nil, errStubUnused
	}
	return f.loginFn(ctx, input)
}

func (f *fakeGateway) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) ListBooks(ctx context.Context, query ports.BookQuery) ([]domain.Book, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	if f.getBookFn == nil {
		return nil, errStubUnused
	}
	return f.getBookFn(ctx, id)
}

func (f *fakeGateway) ListGenres(ctx context.Context) ([]string, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) CreateBook(ctx context.Context, token string, input ports.BookInput) (*domain.Book, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) UpdateBook(ctx context.Context, token string, id int64, input ports.BookInput) (*domain.Book, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) DeleteBook(ctx context.Context, token string, id int64) error {
	return errStubUnused
}

func (f *fakeGateway) ListBookReviews(ctx context.Context, bookID int64) ([]domain.Review, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) CreateReview(ctx context.Context, token string, input ports.ReviewInput) (*domain.Review, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) UpdateReview(ctx context.Context, token string, id int64, input ports.ReviewInput) (*domain.Review, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) DeleteReview(ctx context.Context, token string, id int64) error {
	return errStubUnused
}

func (f *fakeGateway) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	if f.listOrdersFn == nil {
		return nil, errStubUnused
	}
	return f.listOrdersFn(ctx, token)
}

func (f *fakeGateway) ListAllOrders(ctx context.Context, token string) ([]domain.Order, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) PlaceOrder(ctx context.Context, token string, input ports.PlaceOrderInput) (*domain.Order, error) {
	if f.placeOrderFn == nil {
		return nil, errStubUnused
	}
	return f.placeOrderFn(ctx, token, input)
}

func (f *fakeGateway) UpdateOrderStatus(ctx context.Context, token string, id int64, status string) (*domain.Order, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) AdminStats(ctx context.Context, token string) (*domain.AdminStats, error) {
	return nil, errStubUnused
}

func (f *fakeGateway) RevenueReport(ctx context.Context, token string, days int) (*domain.RevenueReport, error) {
	return nil, errStubUnused
}

// fakeSessions implements SessionService with fixed results.
type fakeSessions struct {
	session   *domain.Session
	loginFn   func(ctx context.Context, clientID string, input ports.LoginInput) (*domain.Session, error)
	loggedOut []string
}

func (f *fakeSessions) Current(ctx context.Context, clientID string) (*domain.Session, error) {
	return f.session, nil
}

func (f *fakeSessions) Login(ctx context.Context, clientID string, input ports.LoginInput) (*domain.Session, error) {
	if f.loginFn == nil {
		return nil, errStubUnused
	}
	return f.loginFn(ctx, clientID, input)
}

func (f *fakeSessions) Register(ctx context.Context, clientID string, input ports.RegisterInput) (*domain.Session, error) {
	return nil, errStubUnused
}

func (f *fakeSessions) Logout(ctx context.Context, clientID string) error {
	f.loggedOut = append(f.loggedOut, clientID)
	f.session = nil
	return nil
}

// newRequestContext builds an echo context with the validator installed and
// the client identity already resolved, as the middleware chain would leave it.
func newRequestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("client_id", "client-1")
	return c, rec
}
