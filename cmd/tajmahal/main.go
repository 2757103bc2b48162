package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericfisherdev/tajmahal/internal/adapter/driven/memory"
	sqliteadapter "github.com/ericfisherdev/tajmahal/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/tajmahal/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/tajmahal/internal/adapter/driving/web"
	"github.com/ericfisherdev/tajmahal/internal/application"
	"github.com/ericfisherdev/tajmahal/internal/config"
	"github.com/ericfisherdev/tajmahal/internal/domain/model"
	"github.com/ericfisherdev/tajmahal/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid values).
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"seed", cfg.Seed,
		"allowed_origins", cfg.AllowedOrigins,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the review store for this session.
	reviewStore, closeStore, err := openReviewStore(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			slog.Error("error closing review store", "error", closeErr)
		}
	}()

	if cfg.Seed {
		if err := application.SeedReviews(ctx, reviewStore, memory.SeedReviews()); err != nil {
			return err
		}
		slog.Info("review store seeded")
	}

	// 4. Create services.
	reviewSvc := application.NewReviewService(reviewStore, logger)
	restaurantSvc := application.NewRestaurantService(memory.NewRestaurantRepo())

	unsubscribe := reviewSvc.OnChange(func(reviews []model.Review) {
		slog.Debug("reviews changed", "count", len(reviews), "average", model.AverageRating(reviews))
	})
	defer unsubscribe()

	// 5. Register API and GUI routes.
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(reviewSvc, restaurantSvc, cfg.DefaultAvatar, logger)
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	webHandler := webhandler.NewHandler(reviewSvc, restaurantSvc, cfg.DefaultAvatar, logger)
	webhandler.RegisterRoutes(mux, webHandler)

	handler := httphandler.ApplyMiddleware(mux, logger, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 6. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// openReviewStore builds the configured ReviewStore and returns a function
// releasing its resources.
func openReviewStore(ctx context.Context, kind config.StoreKind) (driven.ReviewStore, func() error, error) {
	if kind != config.StoreSQLite {
		return memory.NewReviewRepo(), func() error { return nil }, nil
	}

	db, err := sqliteadapter.NewDB(ctx, "tajmahal")
	if err != nil {
		return nil, nil, err
	}
	version, err := sqliteadapter.RunMigrations(db.Conn)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Info("in-memory sqlite store ready", "name", db.Name(), "schema_version", version)

	return sqliteadapter.NewReviewRepo(db), db.Close, nil
}
