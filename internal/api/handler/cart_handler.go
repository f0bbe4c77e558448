package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// CartHandler serves the cart screen. The cart itself is a pure local
// ledger; this handler is where stock is checked against the catalog when
// items are added, since stock is an external fact the cart cannot know.
type CartHandler struct {
	carts   ports.CartService
	gateway ports.BookstoreGateway
}

func NewCartHandler(carts ports.CartService, gateway ports.BookstoreGateway) *CartHandler {
	return &CartHandler{carts: carts, gateway: gateway}
}

// Get handles GET /storefront/cart.
//
// @Summary      Current cart with totals
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /storefront/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// AddItem handles POST /storefront/cart/items. The book is fetched from
// the catalog so the line item carries current title, author, price and
// image, and so the requested quantity can be checked against stock.
// The authoritative stock check still happens upstream at order placement.
//
// @Summary      Add a book to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Book and quantity"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /storefront/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	id, err := clientID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	book, err := h.gateway.GetBook(ctx, req.BookID)
	if err != nil {
		return err
	}
	if book.Stock < quantity {
		return domain.ErrInsufficientStock
	}

	item := domain.LineItem{
		BookID:   book.ID,
		Title:    book.Title,
		Author:   book.Author,
		Price:    book.Price,
		ImageURL: book.ImageURL,
	}

	// Add merges one copy per call, so repeat it for the requested count.
	cart := (*domain.Cart)(nil)
	for i := 0; i < quantity; i++ {
		cart, err = h.carts.Add(ctx, id, item)
		if err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// SetQuantity handles PUT /storefront/cart/items/:bookId. A quantity <= 0
// removes the line item.
//
// @Summary      Change a line item's quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        bookId  path      int                 true  "Book id"
// @Param        body    body      setQuantityRequest  true  "New quantity"
// @Success      200     {object}  cartResponse
// @Failure      400     {object}  errorResponse
// @Router       /storefront/cart/items/{bookId} [put]
func (h *CartHandler) SetQuantity(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := clientID(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.SetQuantity(c.Request().Context(), id, bookID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// RemoveItem handles DELETE /storefront/cart/items/:bookId. Removing an
// absent line item succeeds with the unchanged cart.
//
// @Summary      Remove a line item
// @Tags         cart
// @Produce      json
// @Param        bookId  path      int  true  "Book id"
// @Success      200     {object}  cartResponse
// @Failure      400     {object}  errorResponse
// @Router       /storefront/cart/items/{bookId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	id, err := clientID(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.Remove(c.Request().Context(), id, bookID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(cart))
}

// Clear handles DELETE /storefront/cart.
//
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartResponse
// @Router       /storefront/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}
	if err := h.carts.Clear(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newCartResponse(&domain.Cart{}))
}
