// @title HilTim Booking API
// @version 1.0
// @description Booking backend for the HilTim hotel site. Records are persisted as a CSV database blob; there is no real database by design.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "hiltim-backend/docs" // This is required for swagger
	"hiltim-backend/internal/app"
	"hiltim-backend/internal/config"
	"hiltim-backend/internal/handlers"
	"hiltim-backend/internal/middleware"
	"hiltim-backend/internal/repository"
	"hiltim-backend/internal/routes"
	"hiltim-backend/internal/services"
	"hiltim-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	bookingStore, userStore, err := buildStores(cfg)
	if err != nil {
		logger.Fatal("Failed to set up storage", zap.Error(err))
	}

	// Open the record stores; a fresh booking database is seeded with
	// sample records.
	bookingRepo := repository.NewBookingRepository(bookingStore, logger)
	if err := bookingRepo.Open(); err != nil {
		logger.Fatal("Failed to open booking database", zap.Error(err))
	}
	userRepo := repository.NewUserRepository(userStore)
	if err := userRepo.Open(); err != nil {
		logger.Fatal("Failed to open users file", zap.Error(err))
	}

	bookingService := services.NewBookingService(bookingRepo, logger)
	userService := services.NewUserService(userRepo, logger)

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	routes.SetupRoutes(
		mux,
		handlers.NewBookingsHandler(bookingService),
		handlers.NewAdminHandler(bookingService),
		handlers.NewAuthHandler(userService),
		handlers.NewCatalogHandler(),
		handlers.NewHealthHandler(bookingRepo),
	)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.RequestLogging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	// Wait for SIGINT, then shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func buildStores(cfg *config.Config) (storage.Store, storage.Store, error) {
	if cfg.Storage.Backend == "memory" {
		return storage.NewMemoryStore(), storage.NewMemoryStore(), nil
	}

	bookingStore, err := storage.NewFileStore(cfg.Storage.DataDir, cfg.Storage.BookingsFile, cfg.Storage.Backups)
	if err != nil {
		return nil, nil, err
	}
	userStore, err := storage.NewFileStore(cfg.Storage.DataDir, cfg.Storage.UsersFile, false)
	if err != nil {
		return nil, nil, err
	}
	return bookingStore, userStore, nil
}
