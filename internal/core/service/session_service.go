package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// SessionService implements session restore, login, registration and logout
// against the bookstore API, mirroring the resulting session into the
// durable client store.
type SessionService struct {
	gateway ports.BookstoreGateway
	store   ports.ClientStore
	log     zerolog.Logger
}

func NewSessionService(gateway ports.BookstoreGateway, store ports.ClientStore, log zerolog.Logger) *SessionService {
	return &SessionService{gateway: gateway, store: store, log: log}
}

// Current restores the client's session from the store. The token is not
// revalidated against the bookstore API: trust is purely local, and an
// expired token shows up as a failed upstream request later. A client with
// either key missing is logged out and yields (nil, nil).
func (s *SessionService) Current(ctx context.Context, clientID string) (*domain.Session, error) {
	token, found, err := s.store.Get(ctx, tokenKey(clientID))
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}
	if !found || token == "" {
		return nil, nil
	}

	raw, found, err := s.store.Get(ctx, userKey(clientID))
	if err != nil {
		return nil, fmt.Errorf("read user: %w", err)
	}
	if !found {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		// A corrupt snapshot violates the token+user invariant; treat the
		// client as logged out rather than serving half a session.
		s.log.Warn().Err(err).Str("client_id", clientID).Msg("discarding corrupt user snapshot")
		return nil, nil
	}

	return &domain.Session{Token: token, User: user}, nil
}

// Login authenticates against the bookstore API and, on success, persists
// token and user snapshot before returning the new session. On failure no
// state changes and the upstream error is returned as-is.
func (s *SessionService) Login(ctx context.Context, clientID string, input ports.LoginInput) (*domain.Session, error) {
	result, err := s.gateway.Login(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, clientID, result)
}

// Register creates an account via the bookstore API and establishes the
// returned session, with the same commit semantics as Login.
func (s *SessionService) Register(ctx context.Context, clientID string, input ports.RegisterInput) (*domain.Session, error) {
	result, err := s.gateway.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, clientID, result)
}

// Logout clears the persisted token and user snapshot. It is local-only:
// no upstream call is made, and both removals are attempted even if the
// first fails.
func (s *SessionService) Logout(ctx context.Context, clientID string) error {
	tokenErr := s.store.Remove(ctx, tokenKey(clientID))
	userErr := s.store.Remove(ctx, userKey(clientID))
	return errors.Join(tokenErr, userErr)
}

// commit persists token and user snapshot together. The token is written
// last so a failure cannot leave a token without its user record.
func (s *SessionService) commit(ctx context.Context, clientID string, result *ports.AuthResult) (*domain.Session, error) {
	raw, err := json.Marshal(result.User)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}
	if err := s.store.Set(ctx, userKey(clientID), string(raw)); err != nil {
		return nil, fmt.Errorf("persist user: %w", err)
	}
	if err := s.store.Set(ctx, tokenKey(clientID), result.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	s.log.Info().
		Str("client_id", clientID).
		Str("username", result.User.Username).
		Str("role", result.User.Role).
		Msg("session established")

	return &domain.Session{Token: result.Token, User: result.User}, nil
}
