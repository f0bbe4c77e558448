package ports

import (
	"context"

	"github.com/bookhaven/storefront/internal/core/domain"
)

// CartService owns the per-client cart and keeps it synchronized with the
// durable client store. Every mutation persists the new cart before
// returning it. Operations on absent line items are no-ops, not errors.
type CartService interface {
	Get(ctx context.Context, clientID string) (*domain.Cart, error)
	Add(ctx context.Context, clientID string, item domain.LineItem) (*domain.Cart, error)
	SetQuantity(ctx context.Context, clientID string, bookID int64, quantity int) (*domain.Cart, error)
	Remove(ctx context.Context, clientID string, bookID int64) (*domain.Cart, error)
	Clear(ctx context.Context, clientID string) error
}
