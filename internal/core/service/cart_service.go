package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bookhaven/storefront/internal/api/metrics"
	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// CartService implements the per-client cart ledger. Each operation loads
// the cart from the durable client store, applies the mutation, and
// persists the result before returning, so the stored cart always reflects
// the last completed operation.
type CartService struct {
	store ports.ClientStore
	log   zerolog.Logger
}

func NewCartService(store ports.ClientStore, log zerolog.Logger) *CartService {
	return &CartService{store: store, log: log}
}

// Get returns the client's cart, empty when none has been stored yet.
func (s *CartService) Get(ctx context.Context, clientID string) (*domain.Cart, error) {
	return s.load(ctx, clientID)
}

// Add merges one copy of the item into the cart and persists it.
func (s *CartService) Add(ctx context.Context, clientID string, item domain.LineItem) (*domain.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	cart.Add(item)
	if err := s.save(ctx, clientID, cart); err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return cart, nil
}

// SetQuantity replaces the quantity of the matching line and persists the
// cart. Quantity <= 0 removes the line instead.
func (s *CartService) SetQuantity(ctx context.Context, clientID string, bookID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	cart.SetQuantity(bookID, quantity)
	if err := s.save(ctx, clientID, cart); err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("set_quantity").Inc()
	return cart, nil
}

// Remove deletes the matching line, if present, and persists the cart.
func (s *CartService) Remove(ctx context.Context, clientID string, bookID int64) (*domain.Cart, error) {
	cart, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	cart.Remove(bookID)
	if err := s.save(ctx, clientID, cart); err != nil {
		return nil, err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return cart, nil
}

// Clear empties the cart by removing its storage key.
func (s *CartService) Clear(ctx context.Context, clientID string) error {
	if err := s.store.Remove(ctx, cartKey(clientID)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	metrics.CartMutationsTotal.WithLabelValues("clear").Inc()
	return nil
}

func (s *CartService) load(ctx context.Context, clientID string) (*domain.Cart, error) {
	raw, found, err := s.store.Get(ctx, cartKey(clientID))
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if !found {
		return &domain.Cart{}, nil
	}

	var items []domain.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn().Err(err).Str("client_id", clientID).Msg("discarding corrupt cart")
		return &domain.Cart{}, nil
	}
	return &domain.Cart{Items: items}, nil
}

func (s *CartService) save(ctx context.Context, clientID string, cart *domain.Cart) error {
	raw, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.store.Set(ctx, cartKey(clientID), string(raw)); err != nil {
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
