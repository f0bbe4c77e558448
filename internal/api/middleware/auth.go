package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// SessionFromContext returns the session injected by RequireSession, or
// nil when the route is not behind the gate or the client is logged out.
func SessionFromContext(c echo.Context) *domain.Session {
	session, _ := c.Get("session").(*domain.Session)
	return session
}

// RequireSession restores the client's session from the store and injects
// it into context under "session". Requests from logged-out clients are
// rejected with 401; screens behind this gate (checkout, profile, admin)
// are invisible to anonymous clients.
func RequireSession(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID, _ := c.Get("client_id").(string)
			if clientID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing client identity")
			}

			session, err := sessions.Current(c.Request().Context(), clientID)
			if err != nil {
				return err
			}
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			c.Set("session", session)
			return next(c)
		}
	}
}

// RequireAdmin enforces the ADMIN role on routes already behind
// RequireSession.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFromContext(c).IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
