// Storefront gateway: fronts the remote bookstore REST API and owns each
// browser client's session and cart state.
//
// @title        Bookstore Storefront Gateway
// @version      1.0
// @description  Storefront endpoints for catalog browsing, cart, checkout and admin.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/bookhaven/storefront/docs"
	"github.com/bookhaven/storefront/internal/api"
	"github.com/bookhaven/storefront/internal/core/ports"
	"github.com/bookhaven/storefront/internal/core/service"
	"github.com/bookhaven/storefront/internal/infrastructure/bookstore"
	"github.com/bookhaven/storefront/internal/infrastructure/config"
	"github.com/bookhaven/storefront/internal/infrastructure/store"
	"github.com/bookhaven/storefront/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientStore, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open client store")
	}
	defer cleanup()

	gateway := bookstore.NewClient(cfg.BookstoreURL, log)
	sessions := service.NewSessionService(gateway, clientStore, log)
	carts := service.NewCartService(clientStore, log)

	e := api.NewRouter(api.Deps{
		Sessions:     sessions,
		Carts:        carts,
		Gateway:      gateway,
		Store:        clientStore,
		ClientSecret: cfg.ClientSecret,
		Log:          log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("bookstore_url", cfg.BookstoreURL).
		Str("store_backend", cfg.Store.Backend).
		Msg("storefront gateway started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("storefront gateway stopped")
}

// openStore selects the durable client store backend from configuration.
// The cleanup func closes any external connection the backend holds.
func openStore(ctx context.Context, cfg *config.Config) (ports.ClientStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), noop, nil

	case "file":
		s, err := store.OpenFileStore(cfg.Store.File)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case "redis":
		client, err := store.ConnectRedis(ctx, store.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisStore(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := store.ConnectMongo(ctx, store.MongoConfig{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		return store.NewMongoStore(db), cleanup, nil

	default:
		return nil, nil, errors.New("unknown store backend: " + cfg.Store.Backend)
	}
}
