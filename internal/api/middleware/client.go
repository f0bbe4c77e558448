package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	clientCookieName = "storefront_client"
	clientCookieAge  = 365 * 24 * time.Hour
)

// ClientIdentity assigns every browser client a stable identity used to
// namespace its state in the durable client store. The identity is a UUID
// carried in an HS256-signed cookie so one client cannot address another
// client's stored session or cart. A missing or invalid cookie mints a
// fresh identity rather than failing the request.
func ClientIdentity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := clientIDFromCookie(c, secret); ok {
				c.Set("client_id", id)
				return next(c)
			}

			id := uuid.NewString()
			signed, err := signClientID(id, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue client identity")
			}

			c.SetCookie(&http.Cookie{
				Name:     clientCookieName,
				Value:    signed,
				Path:     "/",
				MaxAge:   int(clientCookieAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			c.Set("client_id", id)
			return next(c)
		}
	}
}

func clientIDFromCookie(c echo.Context, secret string) (string, bool) {
	cookie, err := c.Cookie(clientCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", false
	}

	id, _ := claims["cid"].(string)
	return id, id != ""
}

func signClientID(id, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"cid": id})
	return t.SignedString([]byte(secret))
}
