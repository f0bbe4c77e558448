package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/bookhaven/storefront/internal/api/handler"
	"github.com/bookhaven/storefront/internal/api/middleware"
	"github.com/bookhaven/storefront/internal/core/ports"
)

// Deps carries everything the router needs to assemble the storefront.
type Deps struct {
	Sessions     ports.SessionService
	Carts        ports.CartService
	Gateway      ports.BookstoreGateway
	Store        ports.ClientStore
	ClientSecret string
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	catalogHandler := handler.NewCatalogHandler(deps.Gateway)
	cartHandler := handler.NewCartHandler(deps.Carts, deps.Gateway)
	orderHandler := handler.NewOrderHandler(deps.Carts, deps.Gateway)
	reviewHandler := handler.NewReviewHandler(deps.Gateway)
	adminHandler := handler.NewAdminHandler(deps.Gateway)

	requireSession := middleware.RequireSession(deps.Sessions)
	requireAdmin := middleware.RequireAdmin()

	// --- Storefront routes (all behind the client identity cookie) ---
	sf := e.Group("/storefront", middleware.ClientIdentity(deps.ClientSecret))

	sf.POST("/login", authHandler.Login)
	sf.POST("/register", authHandler.Register)
	sf.POST("/logout", authHandler.Logout)
	sf.GET("/session", authHandler.Session)

	sf.GET("/books", catalogHandler.List)
	sf.GET("/books/:id", catalogHandler.Get)
	sf.GET("/genres", catalogHandler.Genres)

	sf.GET("/cart", cartHandler.Get)
	sf.POST("/cart/items", cartHandler.AddItem)
	sf.PUT("/cart/items/:bookId", cartHandler.SetQuantity)
	sf.DELETE("/cart/items/:bookId", cartHandler.RemoveItem)
	sf.DELETE("/cart", cartHandler.Clear)

	sf.POST("/checkout", orderHandler.Checkout, requireSession)
	sf.GET("/orders", orderHandler.List, requireSession)

	sf.POST("/books/:id/reviews", reviewHandler.Create, requireSession)
	sf.PUT("/reviews/:id", reviewHandler.Update, requireSession)
	sf.DELETE("/reviews/:id", reviewHandler.Delete, requireSession)

	admin := sf.Group("/admin", requireSession, requireAdmin)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/revenue", adminHandler.Revenue)
	admin.GET("/orders", adminHandler.Orders)
	admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
	admin.POST("/books", adminHandler.CreateBook)
	admin.PUT("/books/:id", adminHandler.UpdateBook)
	admin.DELETE("/books/:id", adminHandler.DeleteBook)

	// --- Operational routes (no client cookie required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Store, deps.Gateway)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
