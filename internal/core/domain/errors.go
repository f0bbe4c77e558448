package domain

import "errors"

var (
	// ErrNotLoggedIn is returned when an operation requires an
	// authenticated session and none exists.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrForbidden is returned when the session's role does not permit
	// the requested operation.
	ErrForbidden = errors.New("access forbidden")
	// ErrEmptyCart rejects checkout of a cart with no line items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock rejects adding more copies of a book than the
	// catalog reports available.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrUpstreamUnavailable wraps transport failures reaching the
	// bookstore API, as opposed to error responses it returned.
	ErrUpstreamUnavailable = errors.New("bookstore api unavailable")
)
