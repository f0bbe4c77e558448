package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/ports"
)

// ReviewHandler serves review submission and editing. All routes sit
// behind RequireSession; ownership checks are the bookstore API's concern.
type ReviewHandler struct {
	gateway ports.BookstoreGateway
}

func NewReviewHandler(gateway ports.BookstoreGateway) *ReviewHandler {
	return &ReviewHandler{gateway: gateway}
}

// Create handles POST /storefront/books/:id/reviews.
//
// @Summary      Review a book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        id    path      int            true  "Book id"
// @Param        body  body      reviewRequest  true  "Rating and comment"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /storefront/books/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	var req reviewRequest
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

	review, err := h.gateway.CreateReview(c.Request().Context(), session.Token, ports.ReviewInput{
		BookID:  bookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}

// Update handles PUT /storefront/reviews/:id.
//
// @Summary      Edit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     ClientCookie
// @Param        id    path      int            true  "Review id"
// @Param        body  body      reviewRequest  true  "Rating and comment"
// @Success      200   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /storefront/reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	var req reviewRequest
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

	review, err := h.gateway.UpdateReview(c.Request().Context(), session.Token, id, ports.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, review)
}

// Delete handles DELETE /storefront/reviews/:id.
//
// @Summary      Delete a review
// @Tags         reviews
// @Security     ClientCookie
// @Param        id  path  int  true  "Review id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /storefront/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	session, err := currentSession(c)
	if err != nil {
		return err
	}

	if err := h.gateway.DeleteReview(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
