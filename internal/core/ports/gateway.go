package ports

import (
	"context"

	"github.com/bookhaven/storefront/internal/core/domain"
)

// LoginInput carries the credentials sent to the bookstore login endpoint.
type LoginInput struct {
	Username string
	Password string
}

// RegisterInput carries the fields sent to the bookstore register endpoint.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// AuthResult is the token-plus-profile payload the bookstore API returns
// from both login and registration.
type AuthResult struct {
	Token string
	User  domain.User
}

// BookQuery narrows a catalog listing. Zero values mean "no filter".
type BookQuery struct {
	Search string
	Genre  string
}

// BookInput carries the fields for creating or updating a catalog book.
type BookInput struct {
	Title       string
	Author      string
	Genre       string
	ISBN        string
	Price       float64
	Description string
	Stock       int
	ImageURL    string
}

// ReviewInput carries the fields for creating or updating a review.
type ReviewInput struct {
	BookID  int64
	Rating  int
	Comment string
}

// OrderLine is one {book, quantity} pair of an order placement request.
type OrderLine struct {
	BookID   int64
	Quantity int
}

// PlaceOrderInput carries the fields for placing an order.
type PlaceOrderInput struct {
	Items           []OrderLine
	ShippingAddress string
	PaymentMethod   string
}

// BookstoreGateway is the request-issuing facade over the remote bookstore
// API. It is stateless: the credential token is an explicit parameter on
// every authenticated call, never ambient client state. Methods taking a
// token send the request unauthenticated when it is empty.
//
// No retry or backoff is attempted; an error response from the remote
// service surfaces with its own status and message unchanged.
type BookstoreGateway interface {
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	ListBooks(ctx context.Context, query BookQuery) ([]domain.Book, error)
	GetBook(ctx context.Context, id int64) (*domain.Book, error)
	ListGenres(ctx context.Context) ([]string, error)
	CreateBook(ctx context.Context, token string, input BookInput) (*domain.Book, error)
	UpdateBook(ctx context.Context, token string, id int64, input BookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, token string, id int64) error

	ListBookReviews(ctx context.Context, bookID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, token string, input ReviewInput) (*domain.Review, error)
	UpdateReview(ctx context.Context, token string, id int64, input ReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, token string, id int64) error

	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context, token string) ([]domain.Order, error)
	PlaceOrder(ctx context.Context, token string, input PlaceOrderInput) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, id int64, status string) (*domain.Order, error)

	AdminStats(ctx context.Context, token string) (*domain.AdminStats, error)
	RevenueReport(ctx context.Context, token string, days int) (*domain.RevenueReport, error)
}
