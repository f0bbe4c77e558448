package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

var errBadCredentials = errors.New("invalid credentials")

func authResult(role string) *ports.AuthResult {
	return &ports.AuthResult{
		Token: "jwt-token",
		User:  domain.User{ID: 7, Username: "alice", Email: "alice@example.com", Role: role},
	}
}

func TestSessionService_Login_PersistsSession(t *testing.T) {
	store := newStubStore()
	gw := &stubGateway{loginFn: func(_ context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
		if input.Username != "alice" || input.Password != "s3cret" {
			return nil, errBadCredentials
		}
		return authResult(domain.RoleCustomer), nil
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())

	session, err := svc.Login(context.Background(), "client-1", ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token != "jwt-token" || session.User.Username != "alice" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.IsAdmin() {
		t.Fatalf("customer session must not be admin")
	}

	if _, found, _ := store.Get(context.Background(), "client:client-1:token"); !found {
		t.Fatalf("token not persisted")
	}
	if _, found, _ := store.Get(context.Background(), "client:client-1:user"); !found {
		t.Fatalf("user snapshot not persisted")
	}
}

func TestSessionService_Login_FailureCommitsNothing(t *testing.T) {
	store := newStubStore()
	gw := &stubGateway{loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
		return nil, errBadCredentials
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "client-1", ports.LoginInput{Username: "alice", Password: "wrong"}); !errors.Is(err, errBadCredentials) {
		t.Fatalf("expected credentials error, got %v", err)
	}

	if len(store.values) != 0 {
		t.Fatalf("failed login must not persist state, stored: %v", store.values)
	}
	if session, _ := svc.Current(context.Background(), "client-1"); session != nil {
		t.Fatalf("expected empty session after failed login, got %+v", session)
	}
}

func TestSessionService_Login_StoreFailureCommitsNoToken(t *testing.T) {
	store := newStubStore()
	store.setErr = errors.New("disk full")
	gw := &stubGateway{loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
		return authResult(domain.RoleCustomer), nil
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "client-1", ports.LoginInput{Username: "alice", Password: "s3cret"}); err == nil {
		t.Fatalf("expected persistence error")
	}
	if _, found, _ := store.Get(context.Background(), "client:client-1:token"); found {
		t.Fatalf("token must not exist without its user snapshot")
	}
}

func TestSessionService_Current_RoundTrip(t *testing.T) {
	store := newStubStore()
	gw := &stubGateway{loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
		return authResult(domain.RoleAdmin), nil
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())

	logged, err := svc.Login(context.Background(), "client-1", ports.LoginInput{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh service over the same store simulates a process restart.
	restored, err := NewSessionService(gw, store, zerolog.Nop()).Current(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored == nil {
		t.Fatalf("expected restored session")
	}
	if *restored != *logged {
		t.Fatalf("restored session differs: %+v vs %+v", restored, logged)
	}
	if !restored.IsAdmin() {
		t.Fatalf("restored admin session lost its role")
	}
}

func TestSessionService_Current_EmptyWithoutBothKeys(t *testing.T) {
	store := newStubStore()
	svc := NewSessionService(&stubGateway{}, store, zerolog.Nop())
	ctx := context.Background()

	if session, _ := svc.Current(ctx, "client-1"); session != nil {
		t.Fatalf("expected empty session for unknown client")
	}

	// Token without user snapshot means logged out, not half a session.
	_ = store.Set(ctx, "client:client-1:token", "orphan")
	if session, _ := svc.Current(ctx, "client-1"); session != nil {
		t.Fatalf("token without user snapshot must read as logged out")
	}
}

func TestSessionService_Logout_ClearsBothKeys(t *testing.T) {
	store := newStubStore()
	gw := &stubGateway{loginFn: func(context.Context, ports.LoginInput) (*ports.AuthResult, error) {
		return authResult(domain.RoleCustomer), nil
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "client-1", ports.LoginInput{Username: "alice", Password: "s3cret"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := svc.Logout(ctx, "client-1"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if session, _ := svc.Current(ctx, "client-1"); session != nil {
		t.Fatalf("expected empty session after logout, got %+v", session)
	}
	if len(store.values) != 0 {
		t.Fatalf("logout left keys behind: %v", store.values)
	}
}

func TestSessionService_Register_EstablishesSession(t *testing.T) {
	store := newStubStore()
	gw := &stubGateway{registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
		if input.Username == "" || input.Email == "" {
			return nil, errors.New("missing fields")
		}
		return authResult(domain.RoleCustomer), nil
	}}
	svc := NewSessionService(gw, store, zerolog.Nop())

	session, err := svc.Register(context.Background(), "client-1", ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "s3cret",
		FirstName: "Alice", LastName: "Smith",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if session.User.Role != domain.RoleCustomer {
		t.Fatalf("unexpected role: %s", session.User.Role)
	}
}
