package ports

import (
	"context"

	"github.com/bookhaven/storefront/internal/core/domain"
)

// SessionService owns authentication state for storefront clients and keeps
// it synchronized with the durable client store.
//
// Current restores the session for a client from the store without
// revalidating the token against the bookstore API (trust-on-read); an
// expired token surfaces later as a failed upstream request. It returns
// (nil, nil) when the client is logged out.
//
// Login and Register commit no state on failure. Logout is local-only and
// leaves future requests unauthenticated.
type SessionService interface {
	Current(ctx context.Context, clientID string) (*domain.Session, error)
	Login(ctx context.Context, clientID string, input LoginInput) (*domain.Session, error)
	Register(ctx context.Context, clientID string, input RegisterInput) (*domain.Session, error)
	Logout(ctx context.Context, clientID string) error
}
