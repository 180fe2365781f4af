package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"hiltim-backend/internal/handlers"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	mux *http.ServeMux,
	bookingsHandler *handlers.BookingsHandler,
	adminHandler *handlers.AdminHandler,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Health check routes
	mux.HandleFunc("/healthz", healthHandler.HealthCheck)
	mux.HandleFunc("/livez", healthHandler.LivenessCheck)
	mux.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Booking routes. The fixed paths must be registered before the
	// catch-all {id} pattern.
	mux.HandleFunc("/api/bookings", bookingsHandler.Bookings)
	mux.HandleFunc("/api/bookings/stats", adminHandler.Stats)
	mux.HandleFunc("/api/bookings/export", adminHandler.Export)
	mux.HandleFunc("/api/bookings/import", adminHandler.Import)
	mux.HandleFunc("/api/bookings/", bookingsHandler.BookingByID)

	// Account stub routes
	mux.HandleFunc("/api/auth/register", authHandler.Register)
	mux.HandleFunc("/api/auth/login", authHandler.Login)

	// Catalog routes
	mux.HandleFunc("/api/rooms", catalogHandler.Rooms)
	mux.HandleFunc("/api/packages/activities", catalogHandler.ActivityPackages)
	mux.HandleFunc("/api/packages/amenities", catalogHandler.AmenityPackages)

	// Swagger UI
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("HilTim booking backend is running."))
}
