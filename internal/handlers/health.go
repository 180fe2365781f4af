package handlers

import (
	"net/http"

	"hiltim-backend/internal/dto"
	"hiltim-backend/internal/repository"
	"hiltim-backend/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	repo *repository.BookingRepository
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(repo *repository.BookingRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

// HealthCheck handles basic health check
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck reports whether the booking database is loaded
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"records": h.repo.Count()},
	})
}
