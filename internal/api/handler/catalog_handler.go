package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// CatalogHandler serves the browse and book-details screens by proxying
// the bookstore catalog. These routes need no session; the response passes
// through the upstream representation unchanged.
type CatalogHandler struct {
	gateway ports.BookstoreGateway
}

func NewCatalogHandler(gateway ports.BookstoreGateway) *CatalogHandler {
	return &CatalogHandler{gateway: gateway}
}

// List handles GET /storefront/books.
//
// @Summary      Browse the catalog
// @Tags         catalog
// @Produce      json
// @Param        search  query     string  false  "Title/author search term"
// @Param        genre   query     string  false  "Genre filter"
// @Success      200     {array}   domain.Book
// @Failure      502     {object}  errorResponse
// @Router       /storefront/books [get]
func (h *CatalogHandler) List(c echo.Context) error {
	books, err := h.gateway.ListBooks(c.Request().Context(), ports.BookQuery{
		Search: c.QueryParam("search"),
		Genre:  c.QueryParam("genre"),
	})
	if err != nil {
		return err
	}
	if books == nil {
		books = []domain.Book{}
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /storefront/books/:id — the book plus its reviews.
//
// @Summary      Book details with reviews
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Book id"
// @Success      200  {object}  bookDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /storefront/books/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	ctx := c.Request().Context()
	book, err := h.gateway.GetBook(ctx, id)
	if err != nil {
		return err
	}
	reviews, err := h.gateway.ListBookReviews(ctx, id)
	if err != nil {
		return err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	return c.JSON(http.StatusOK, bookDetailResponse{Book: *book, Reviews: reviews})
}

// Genres handles GET /storefront/genres.
//
// @Summary      List catalog genres
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /storefront/genres [get]
func (h *CatalogHandler) Genres(c echo.Context) error {
	genres, err := h.gateway.ListGenres(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genres)
}
