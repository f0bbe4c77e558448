package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

func TestAuthHandler_LoginSuccess(t *testing.T) {
	sessions := &fakeSessions{
		loginFn: func(ctx context.Context, clientID string, input ports.LoginInput) (*domain.Session, error) {
			if clientID != "client-1" {
				t.Fatalf("unexpected client id %q", clientID)
			}
			if input.Username != "alice" || input.Password != "secret123" {
				t.Fatalf("credentials not forwarded: %+v", input)
			}
			return &domain.Session{
				Token: "jwt-token",
				User:  domain.User{ID: 7, Username: "alice", Role: domain.RoleCustomer},
			}, nil
		},
	}
	h := NewAuthHandler(sessions)

	c, rec := newRequestContext(t, http.MethodPost, "/storefront/login",
		`{"username":"alice","password":"secret123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.LoggedIn || resp.IsAdmin {
		t.Fatalf("unexpected session flags: %+v", resp)
	}
	if resp.User == nil || resp.User.Username != "alice" {
		t.Fatalf("profile missing from response: %+v", resp.User)
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	h := NewAuthHandler(&fakeSessions{})

	c, _ := newRequestContext(t, http.MethodPost, "/storefront/login",
		`{"username":"alice"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestAuthHandler_LoginUpstreamRejection(t *testing.T) {
	wantErr := domain.ErrUpstreamUnavailable
	sessions := &fakeSessions{
		loginFn: func(ctx context.Context, clientID string, input ports.LoginInput) (*domain.Session, error) {
			return nil, wantErr
		},
	}
	h := NewAuthHandler(sessions)

	c, _ := newRequestContext(t, http.MethodPost, "/storefront/login",
		`{"username":"alice","password":"wrong-password"}`)
	if err := h.Login(c); err != wantErr {
		t.Fatalf("expected upstream error to surface, got %v", err)
	}
}

func TestAuthHandler_SessionForAdmin(t *testing.T) {
	sessions := &fakeSessions{
		session: &domain.Session{
			Token: "jwt-token",
			User:  domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin},
		},
	}
	h := NewAuthHandler(sessions)

	c, rec := newRequestContext(t, http.MethodGet, "/storefront/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("session: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.LoggedIn || !resp.IsAdmin {
		t.Fatalf("admin session not reported: %+v", resp)
	}
}

func TestAuthHandler_SessionLoggedOut(t *testing.T) {
	h := NewAuthHandler(&fakeSessions{})

	c, rec := newRequestContext(t, http.MethodGet, "/storefront/session", "")
	if err := h.Session(c); err != nil {
		t.Fatalf("session: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.LoggedIn || resp.IsAdmin || resp.User != nil {
		t.Fatalf("logged-out snapshot should be empty: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := &fakeSessions{
		session: &domain.Session{Token: "jwt-token", User: domain.User{ID: 7}},
	}
	h := NewAuthHandler(sessions)

	c, rec := newRequestContext(t, http.MethodPost, "/storefront/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(sessions.loggedOut) != 1 || sessions.loggedOut[0] != "client-1" {
		t.Fatalf("logout not forwarded to the session service: %v", sessions.loggedOut)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.LoggedIn {
		t.Fatalf("logout response must report logged out")
	}
}
