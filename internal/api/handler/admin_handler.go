package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// AdminHandler serves the admin dashboard: catalog management, the full
// order list, order status updates and sales statistics. All routes sit
// behind RequireSession and RequireAdmin; the bookstore API additionally
// enforces the role on its side.
type AdminHandler struct {
	gateway ports.BookstoreGateway
}

func NewAdminHandler(gateway ports.BookstoreGateway) *AdminHandler {
	return &AdminHandler{gateway: gateway}
}

// Stats handles GET /storefront/admin/stats.
//
// @Summary      Dashboard statistics
// @Tags         admin
// @Produce      json
// @Security     ClientCookie
// @Success      200  {object}  domain.AdminStats
// @Failure      403  {object}  errorResponse
// @Router       /storefront/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	stats, err := h.gateway.AdminStats(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Revenue handles GET /storefront/admin/revenue?days=.
//
// @Summary      Revenue over a period
// @Tags         admin
// @Produce      json
// @Security     ClientCookie
// @Param        days  query     int  false  "Period in days (default 30)"
// @Success      200   {object}  domain.RevenueReport
// @Failure      403   {object}  errorResponse
// @Router       /storefront/admin/revenue [get]
func (h *AdminHandler) Revenue(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = parsed
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	report, err := h.gateway.RevenueReport(c.Request().Context(), session.Token, days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Orders handles GET /storefront/admin/orders — every user's orders.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     ClientCookie
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  errorResponse
// @Router       /storefront/admin/orders [get]
func (h *AdminHandler) Orders(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	orders, err := h.gateway.ListAllOrders(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /storefront/admin/orders/:id/status.
//
// @Summary      Update an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        id    path      int                 true  "Order id"
// @Param        body  body      orderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /storefront/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req orderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	order, err := h.gateway.UpdateOrderStatus(c.Request().Context(), session.Token, id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// CreateBook handles POST /storefront/admin/books.
//
// @Summary      Add a catalog book
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        body  body      bookRequest  true  "Book fields"
// @Success      201   {object}  domain.Book
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /storefront/admin/books [post]
func (h *AdminHandler) CreateBook(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	book, err := h.gateway.CreateBook(c.Request().Context(), session.Token, bookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, book)
}

// UpdateBook handles PUT /storefront/admin/books/:id.
//
// @Summary      Update a catalog book
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        id    path      int          true  "Book id"
// @Param        body  body      bookRequest  true  "Book fields"
// @Success      200   {object}  domain.Book
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /storefront/admin/books/{id} [put]
func (h *AdminHandler) UpdateBook(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	book, err := h.gateway.UpdateBook(c.Request().Context(), session.Token, id, bookInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /storefront/admin/books/:id.
//
// @Summary      Remove a catalog book
// @Tags         admin
// @Security     ClientCookie
// @Param        id  path  int  true  "Book id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Router       /storefront/admin/books/{id} [delete]
func (h *AdminHandler) DeleteBook(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	if err := h.gateway.DeleteBook(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bookInput(req bookRequest) ports.BookInput {
	return ports.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Description: req.Description,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	}
}
