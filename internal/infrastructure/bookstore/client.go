// Package bookstore implements the HTTP client for the remote bookstore
// REST API. The client is stateless: the credential token is an explicit
// parameter on every authenticated request, never ambient state, and no
// retry or backoff is attempted.
package bookstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/storefront/internal/api/metrics"
	"github.com/bookhaven/storefront/internal/core/domain"
	"github.com/bookhaven/storefront/internal/core/ports"
)

const defaultRequestTimeout = 15 * time.Second

// APIError is a non-2xx response from the bookstore API. Status code and
// message surface to the caller unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bookstore api: %d %s", e.StatusCode, e.Message)
}

// Client issues requests against a fixed bookstore API base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
		log:     log,
	}
}

// ── Auth ──────────────────────────────────────────────────────────────────────

// authResponse is the token-plus-profile payload of /api/login and
// /api/register.
type authResponse struct {
	Token string `json:"token"`
	Type  string `json:"type,omitempty"`
	domain.User
}

func (c *Client) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	body := map[string]string{"username": input.Username, "password": input.Password}
	var resp authResponse
	if err := c.do(ctx, "auth", http.MethodPost, "/api/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: resp.Token, User: resp.User}, nil
}

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	body := map[string]string{
		"username":  input.Username,
		"email":     input.Email,
		"password":  input.Password,
		"firstName": input.FirstName,
		"lastName":  input.LastName,
	}
	if input.Address != "" {
		body["address"] = input.Address
	}
	if input.Phone != "" {
		body["phone"] = input.Phone
	}
	var resp authResponse
	if err := c.do(ctx, "auth", http.MethodPost, "/api/register", "", body, &resp); err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: resp.Token, User: resp.User}, nil
}

// ── Books ─────────────────────────────────────────────────────────────────────

func (c *Client) ListBooks(ctx context.Context, query ports.BookQuery) ([]domain.Book, error) {
	q := url.Values{}
	if query.Search != "" {
		q.Set("search", query.Search)
	}
	if query.Genre != "" {
		q.Set("genre", query.Genre)
	}
	path := "/api/books"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var books []domain.Book
	if err := c.do(ctx, "books", http.MethodGet, path, "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	var book domain.Book
	if err := c.do(ctx, "books", http.MethodGet, "/api/books/"+strconv.FormatInt(id, 10), "", nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) ListGenres(ctx context.Context) ([]string, error) {
	var genres []string
	if err := c.do(ctx, "books", http.MethodGet, "/api/books/genres", "", nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func bookBody(input ports.BookInput) map[string]any {
	return map[string]any{
		"title":       input.Title,
		"author":      input.Author,
		"genre":       input.Genre,
		"isbn":        input.ISBN,
		"price":       input.Price,
		"description": input.Description,
		"stock":       input.Stock,
		"imageUrl":    input.ImageURL,
	}
}

func (c *Client) CreateBook(ctx context.Context, token string, input ports.BookInput) (*domain.Book, error) {
	var book domain.Book
	if err := c.do(ctx, "books", http.MethodPost, "/api/books", token, bookBody(input), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) UpdateBook(ctx context.Context, token string, id int64, input ports.BookInput) (*domain.Book, error) {
	var book domain.Book
	if err := c.do(ctx, "books", http.MethodPut, "/api/books/"+strconv.FormatInt(id, 10), token, bookBody(input), &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (c *Client) DeleteBook(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "books", http.MethodDelete, "/api/books/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// ── Reviews ───────────────────────────────────────────────────────────────────

func (c *Client) ListBookReviews(ctx context.Context, bookID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.do(ctx, "reviews", http.MethodGet, "/api/reviews/book/"+strconv.FormatInt(bookID, 10), "", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func reviewBody(input ports.ReviewInput) map[string]any {
	return map[string]any{
		"bookId":  input.BookID,
		"rating":  input.Rating,
		"comment": input.Comment,
	}
}

func (c *Client) CreateReview(ctx context.Context, token string, input ports.ReviewInput) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, "reviews", http.MethodPost, "/api/reviews", token, reviewBody(input), &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) UpdateReview(ctx context.Context, token string, id int64, input ports.ReviewInput) (*domain.Review, error) {
	var review domain.Review
	if err := c.do(ctx, "reviews", http.MethodPut, "/api/reviews/"+strconv.FormatInt(id, 10), token, reviewBody(input), &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) DeleteReview(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "reviews", http.MethodDelete, "/api/reviews/"+strconv.FormatInt(id, 10), token, nil, nil)
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (c *Client) ListOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "orders", http.MethodGet, "/api/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListAllOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "orders", http.MethodGet, "/api/orders/all", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) PlaceOrder(ctx context.Context, token string, input ports.PlaceOrderInput) (*domain.Order, error) {
	items := make([]map[string]any, 0, len(input.Items))
	for _, line := range input.Items {
		items = append(items, map[string]any{
			"bookId":   line.BookID,
			"quantity": line.Quantity,
		})
	}
	body := map[string]any{
		"items":           items,
		"shippingAddress": input.ShippingAddress,
		"paymentMethod":   input.PaymentMethod,
	}

	var order domain.Order
	if err := c.do(ctx, "orders", http.MethodPost, "/api/orders", token, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id int64, status string) (*domain.Order, error) {
	path := fmt.Sprintf("/api/orders/%d/status?status=%s", id, url.QueryEscape(status))
	var order domain.Order
	if err := c.do(ctx, "orders", http.MethodPut, path, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ── Admin ─────────────────────────────────────────────────────────────────────

func (c *Client) AdminStats(ctx context.Context, token string) (*domain.AdminStats, error) {
	var stats domain.AdminStats
	if err := c.do(ctx, "admin", http.MethodGet, "/api/admin/stats", token, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) RevenueReport(ctx context.Context, token string, days int) (*domain.RevenueReport, error) {
	path := "/api/admin/revenue"
	if days > 0 {
		path += "?days=" + strconv.Itoa(days)
	}
	var report domain.RevenueReport
	if err := c.do(ctx, "admin", http.MethodGet, path, token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ── Transport ─────────────────────────────────────────────────────────────────

// errorBody is the error envelope the bookstore API uses for most
// failures. Some endpoints return a bare string message instead; both
// forms are handled in upstreamError.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one request. A non-empty token is attached as a bearer
// Authorization header; an empty token sends the request unauthenticated.
// out may be nil for calls whose response body is irrelevant.
func (c *Client) do(ctx context.Context, resource, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "unreachable").Inc()
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("bookstore api unreachable")
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		return upstreamError(resp)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(resource, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// upstreamError turns a non-2xx response into an APIError carrying the
// remote message, falling back to the HTTP status text when the body
// yields nothing usable.
func upstreamError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	msg := ""
	var envelope errorBody
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			msg = envelope.Error
		} else if envelope.Message != "" {
			msg = envelope.Message
		}
	}
	if msg == "" {
		if trimmed := strings.TrimSpace(string(raw)); trimmed != "" && !strings.HasPrefix(trimmed, "{") {
			msg = trimmed
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}
