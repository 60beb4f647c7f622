package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pratik-mahalle/recommendations/internal/api/handlers"
	"github.com/pratik-mahalle/recommendations/internal/api/router"
	"github.com/pratik-mahalle/recommendations/internal/config"
	"github.com/pratik-mahalle/recommendations/internal/pkg/logger"
	"github.com/pratik-mahalle/recommendations/internal/pkg/validator"
	"github.com/pratik-mahalle/recommendations/internal/repository/postgres"
	"github.com/pratik-mahalle/recommendations/internal/services"
	"github.com/pratik-mahalle/recommendations/migrations"
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
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	validator.Init()

	db, dialect, err := postgres.New(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	migrationsFS, err := migrations.GetFS(cfg.Database.Driver)
	if err != nil {
		return err
	}
	applied, err := postgres.RunMigrations(db, dialect, migrationsFS)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"driver":  cfg.Database.Driver,
		"applied": applied,
	}).Info("Database ready")

	// Repositories
	recommendationRepo := postgres.NewRecommendationRepository(db, dialect)

	// Services
	recommendationService := services.NewRecommendationService(recommendationRepo, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:         handlers.NewHealthHandler(db, log),
		Recommendation: handlers.NewRecommendationHandler(recommendationService, log, val),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(ctx, cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.Server.Environment,
		}).Info("Recommendation service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
