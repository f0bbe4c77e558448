package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
)

// clientID extracts the client identity injected by the ClientIdentity
// middleware. Its absence means the middleware did not run, which is a
// wiring defect, not a client error — but it still must not reach a
// service call, so fail with 500.
func clientID(c echo.Context) (string, error) {
	id, _ := c.Get("client_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "missing client identity")
	}
	return id, nil
}

// currentSession extracts the session injected by the RequireSession
// middleware. Routes calling this are always behind the gate, so a nil
// session is again a wiring defect.
func currentSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get("session").(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return session, nil
}
