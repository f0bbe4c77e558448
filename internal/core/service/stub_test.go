package service

import (
	"context"
	"errors"
	"sync"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// stubStore is a map-backed ClientStore with optional fault injection.
type stubStore struct {
	mu     sync.Mutex
	values map[string]string
	setErr error
}

func newStubStore() *stubStore {
	return &stubStore{values: make(map[string]string)}
}

func (s *stubStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *stubStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *stubStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var errStubUnused = errors.New("stub method not configured")

// stubGateway implements ports.BookstoreGateway through overridable
// function fields; unconfigured methods fail the call.
type stubGateway struct {
	loginFn    func(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error)
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
}

func (g *stubGateway) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	if g.loginFn == nil {
		return nil, errStubUnused
	}
	return g.loginFn(ctx, input)
}

func (g *stubGateway) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if g.registerFn == nil {
		return nil, errStubUnused
	}
	return g.registerFn(ctx, input)
}

func (g *stubGateway) ListBooks(context.Context, ports.BookQuery) ([]domain.Book, error) {
	return nil, errStubUnused
}
func (g *stubGateway) GetBook(context.Context, int64) (*domain.Book, error) {
	return nil, errStubUnused
}
func (g *stubGateway) ListGenres(context.Context) ([]string, error) { return nil, errStubUnused }
func (g *stubGateway) CreateBook(context.Context, string, ports.BookInput) (*domain.Book, error) {
	return nil, errStubUnused
}
func (g *stubGateway) UpdateBook(context.Context, string, int64, ports.BookInput) (*domain.Book, error) {
	return nil, errStubUnused
}
func (g *stubGateway) DeleteBook(context.Context, string, int64) error { return errStubUnused }
func (g *stubGateway) ListBookReviews(context.Context, int64) ([]domain.Review, error) {
	return nil, errStubUnused
}
func (g *stubGateway) CreateReview(context.Context, string, ports.ReviewInput) (*domain.Review, error) {
	return nil, errStubUnused
}
func (g *stubGateway) UpdateReview(context.Context, string, int64, ports.ReviewInput) (*domain.Review, error) {
	return nil, errStubUnused
}
func (g *stubGateway) DeleteReview(context.Context, string, int64) error { return errStubUnused }
func (g *stubGateway) ListOrders(context.Context, string) ([]domain.Order, error) {
	return nil, errStubUnused
}
func (g *stubGateway) ListAllOrders(context.Context, string) ([]domain.Order, error) {
	return nil, errStubUnused
}
func (g *stubGateway) PlaceOrder(context.Context, string, ports.PlaceOrderInput) (*domain.Order, error) {
	return nil, errStubUnused
}
func (g *stubGateway) UpdateOrderStatus(context.Context, string, int64, string) (*domain.Order, error) {
	return nil, errStubUnused
}
func (g *stubGateway) AdminStats(context.Context, string) (*domain.AdminStats, error) {
	return nil, errStubUnused
}
func (g *stubGateway) RevenueReport(context.Context, string, int) (*domain.RevenueReport, error) {
	return nil, errStubUnused
}
