package domain

import "time"

// Book mirrors the bookstore API's book representation. The JSON tags
// match the upstream wire format so proxied responses pass through intact.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Genre         string    `json:"genre,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	Price         float64   `json:"price"`
	Description   string    `json:"description,omitempty"`
	Stock         int       `json:"stock"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	AverageRating float64   `json:"averageRating,omitempty"`
	TotalReviews  int       `json:"totalReviews,omitempty"`
}

// Review mirrors the bookstore API's review representation.
type Review struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	BookID    int64     `json:"bookId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// OrderItem is one line of a placed order as reported by the bookstore API.
type OrderItem struct {
	ID       int64   `json:"id"`
	Book     Book    `json:"book"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

// Order mirrors the bookstore API's order representation.
type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"userId"`
	Username        string      `json:"username"`
	OrderItems      []OrderItem `json:"orderItems"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"paymentStatus,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
	UpdatedAt       time.Time   `json:"updatedAt,omitempty"`
}

// AdminStats is the bookstore API's dashboard statistics payload.
type AdminStats struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int64   `json:"totalOrders"`
	RecentOrders int64   `json:"recentOrders"`
}

// RevenueReport is the bookstore API's revenue-over-period payload.
type RevenueReport struct {
	Revenue float64 `json:"revenue"`
	Period  string  `json:"period"`
}
