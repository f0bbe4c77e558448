package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/api/metrics"
	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// OrderHandler serves the checkout and order-history screens. Both routes
// sit behind RequireSession.
type OrderHandler struct {
	carts   ports.CartService
	gateway ports.BookstoreGateway
}

func NewOrderHandler(carts ports.CartService, gateway ports.BookstoreGateway) *OrderHandler {
	return &OrderHandler{carts: carts, gateway: gateway}
}

// Checkout handles POST /storefront/checkout: places an upstream order
// from the cart lines and clears the cart on success. An empty cart is
// rejected before any upstream call. The bookstore API performs the
// authoritative stock check at placement.
//
// @Summary      Place an order from the cart
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        body  body      checkoutRequest  true  "Shipping and payment details"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /storefront/checkout [post]
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}
	id, err := clientID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	cart, err := h.carts.Get(ctx, id)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		metrics.CheckoutsTotal.WithLabelValues("rejected").Inc()
		return domain.ErrEmptyCart
	}

	lines := make([]ports.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, ports.OrderLine{BookID: item.BookID, Quantity: item.Quantity})
	}

	order, err := h.gateway.PlaceOrder(ctx, session.Token, ports.PlaceOrderInput{
		Items:           lines,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("failed").Inc()
		return err
	}

	// The order is placed; a failed cart clear must not fail the checkout.
	if err := h.carts.Clear(ctx, id); err != nil {
		c.Logger().Warnf("cart clear after checkout: %v", err)
	}
	metrics.CheckoutsTotal.WithLabelValues("placed").Inc()

	return c.JSON(http.StatusCreated, order)
}

// List handles GET /storefront/orders — the current user's order history.
//
// @Summary      List my orders
// @Tags         orders
// @Produce      json
// @Security     ClientCookie
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /storefront/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	session, err := currentSession(c)
	if err != nil {
		return err
	}
	orders, err := h.gateway.ListOrders(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
