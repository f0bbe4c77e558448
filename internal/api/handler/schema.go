package handler

import "github.com/bookhaven/storefront/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username  string `json:"username"   validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// sessionResponse is the session snapshot the navigation shell renders
// from: who is logged in and whether admin links are visible.
type sessionResponse struct {
	LoggedIn bool         `json:"logged_in"`
	IsAdmin  bool         `json:"is_admin"`
	User     *domain.User `json:"user,omitempty"`
}

// --- Cart ---

type addCartItemRequest struct {
	BookID   int64 `json:"book_id"  validate:"required"`
	Quantity int   `json:"quantity" validate:"omitempty,min=1"`
}

type setQuantityRequest struct {
	// Quantity <= 0 removes the line item.
	Quantity int `json:"quantity"`
}

// cartResponse carries the cart lines plus the derived totals, recomputed
// on every read rather than stored.
type cartResponse struct {
	Items      []domain.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

func newCartResponse(cart *domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}

// --- Checkout ---

type checkoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PaymentMethod   string `json:"payment_method"   validate:"required"`
}

// --- Reviews ---

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// --- Admin ---

type bookRequest struct {
	Title       string  `json:"title"  validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Genre       string  `json:"genre"`
	ISBN        string  `json:"isbn"`
	Price       float64 `json:"price"  validate:"required,gt=0"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"  validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

// --- Book detail ---

// bookDetailResponse is the book-details screen payload: the book plus its
// reviews, fetched together.
type bookDetailResponse struct {
	Book    domain.Book     `json:"book"`
	Reviews []domain.Review `json:"reviews"`
}
