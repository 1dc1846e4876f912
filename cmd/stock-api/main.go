package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-admin/internal/auth"
	"stock-admin/internal/config"
	"stock-admin/internal/database"
	"stock-admin/internal/handler"
	"stock-admin/internal/repository"
	"stock-admin/internal/router"
	"stock-admin/internal/seed"
	"stock-admin/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, os.Stdout)
	logger.Info().Msg("starting stock API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	catalogRepo := repository.NewCatalogRepository(pool, logger)

	authenticator, err := auth.New(
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTLDuration(),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize authenticator: %w", err)
	}

	seedLoader := newSeedLoader(ctx, cfg.Seed, logger)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(service.NewAuthService(authenticator, logger), logger),
		Category: handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, logger), logger),
		Product:  handler.NewProductHandler(service.NewProductService(productRepo, logger), logger),
		Admin: handler.NewAdminHandler(
			service.NewAdminService(catalogRepo, seedLoader, cfg.Seed.Files, logger),
			logger,
		),
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.New(h, authenticator, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newSeedLoader reads seed files from S3 when enabled, falling back to the
// local file system per file.
func newSeedLoader(ctx context.Context, cfg config.SeedConfig, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)

	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for seed files (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
