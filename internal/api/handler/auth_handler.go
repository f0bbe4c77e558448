package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/api/metrics"
	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// AuthHandler serves the login, registration and session screens.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the bookstore API and establishes the
// client's session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /storefront/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := clientID(c)
	if err != nil {
		return err
	}

	session, err := h.sessions.Login(c.Request().Context(), id, ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, newSessionResponse(session))
}

// Register creates an account via the bookstore API and logs the client in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Profile fields"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /storefront/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := clientID(c)
	if err != nil {
		return err
	}

	session, err := h.sessions.Register(c.Request().Context(), id, ports.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newSessionResponse(session))
}

// Logout clears the client's persisted session. Local-only: the token is
// discarded, not revoked upstream.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /storefront/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}
	if err := h.sessions.Logout(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionResponse(nil))
}

// Session returns the current session snapshot, restored from the durable
// client store without upstream revalidation.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /storefront/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}
	session, err := h.sessions.Current(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSessionResponse(session))
}

func newSessionResponse(session *domain.Session) sessionResponse {
	if session == nil {
		return sessionResponse{}
	}
	user := session.User
	return sessionResponse{
		LoggedIn: true,
		IsAdmin:  session.IsAdmin(),
		User:     &user,
	}
}
