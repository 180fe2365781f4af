package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hiltim-backend/internal/dto"
	"hiltim-backend/internal/services"
	"hiltim-backend/internal/utils"
)

// AdminHandler manages the database-level endpoints used by the booking
// admin page: statistics, CSV export and CSV import.
type AdminHandler struct {
	bookings *services.BookingService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(bookings *services.BookingService) *AdminHandler {
	return &AdminHandler{bookings: bookings}
}

// Stats handles GET /api/bookings/stats
// @Summary Booking statistics
// @Description Per-status counts plus total revenue over confirmed bookings
// @Tags admin
// @Produce json
// @Success 200 {object} services.StatsResult
// @Router /api/bookings/stats [get]
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, h.bookings.Stats())
}

// Export handles GET /api/bookings/export and serves the whole database
// as a CSV attachment.
// @Summary Export the booking database
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV content"
// @Router /api/bookings/export [get]
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := h.bookings.ExportCSV()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, result.Content)
}

// Import handles POST /api/bookings/import. The body is either a JSON
// envelope with a csv field or raw CSV text; the database is replaced
// wholesale, skipping invalid rows.
// @Summary Import a replacement booking database
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body dto.ImportRequest true "CSV content"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} services.ImportResult
// @Router /api/bookings/import [post]
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	text := string(body)
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req dto.ImportRequest
		if err := json.Unmarshal(body, &req); err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		text = req.CSV
	}

	result := h.bookings.ImportCSV(text)
	if !result.Success {
		utils.WriteJSONResponse(w, http.StatusBadRequest, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}
