package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"hiltim-backend/internal/dto"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/services"
	"hiltim-backend/internal/utils"
)

const bookingsPrefix = "/api/bookings/"

// BookingsHandler manages booking-related endpoints
type BookingsHandler struct {
	bookings *services.BookingService
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(bookings *services.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Bookings dispatches by HTTP method for /api/bookings
func (h *BookingsHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateBooking(w, r)
	case http.MethodGet:
		h.ListBookings(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// BookingByID dispatches by HTTP method for /api/bookings/{id}
func (h *BookingsHandler) BookingByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, bookingsPrefix)
	if id == "" || strings.Contains(id, "/") {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Unknown booking path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.BookingDetail(w, r, id)
	case http.MethodPut, http.MethodPatch:
		h.UpdateBooking(w, r, id)
	case http.MethodDelete:
		h.DeleteBooking(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateBooking handles POST /api/bookings
// @Summary Create a new booking
// @Description Validates the stay data, assigns a BK### ID and persists the record with status confirmed
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body dto.CreateBookingRequest true "Booking payload"
// @Success 201 {object} services.BookingResult
// @Failure 400 {object} services.BookingResult
// @Router /api/bookings [post]
func (h *BookingsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.bookings.Create(req.ToModel())
	if !result.Success {
		utils.WriteJSONResponse(w, http.StatusBadRequest, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, result)
}

// ListBookings handles GET /api/bookings with optional user_id and
// status filters
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param user_id query string false "Filter by owning user"
// @Param status query string false "Filter by lifecycle status" Enums(pending, confirmed, cancelled)
// @Success 200 {object} services.BookingsResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/bookings [get]
func (h *BookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	status := r.URL.Query().Get("status")
	if userID != "" && status != "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "user_id and status filters cannot be combined")
		return
	}

	var result services.BookingsResult
	switch {
	case userID != "":
		result = h.bookings.GetByUserID(userID)
	case status != "":
		if !models.ValidStatus(models.BookingStatus(status)) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Unknown booking status: %s", status))
			return
		}
		result = h.bookings.GetByStatus(models.BookingStatus(status))
	default:
		result = h.bookings.GetAll()
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// BookingDetail handles GET /api/bookings/{id}
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (BK###)"
// @Success 200 {object} services.BookingResult
// @Failure 404 {object} services.BookingResult
// @Router /api/bookings/{id} [get]
func (h *BookingsHandler) BookingDetail(w http.ResponseWriter, r *http.Request, id string) {
	result := h.bookings.GetByID(id)
	if !result.Success {
		utils.WriteJSONResponse(w, http.StatusNotFound, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// UpdateBooking handles PUT/PATCH /api/bookings/{id}. Provided fields
// overwrite the stored record; setting status to confirmed reactivates a
// cancelled booking.
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (BK###)"
// @Param payload body services.BookingPatch true "Fields to overwrite"
// @Success 200 {object} services.BookingResult
// @Failure 400 {object} services.BookingResult
// @Failure 404 {object} services.BookingResult
// @Router /api/bookings/{id} [patch]
func (h *BookingsHandler) UpdateBooking(w http.ResponseWriter, r *http.Request, id string) {
	var patch services.BookingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := h.bookings.Update(id, patch)
	if !result.Success {
		status := http.StatusBadRequest
		if result.Error == "Booking not found" {
			status = http.StatusNotFound
		}
		utils.WriteJSONResponse(w, status, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}

// DeleteBooking handles DELETE /api/bookings/{id}. The default is the
// soft delete (cancel); ?permanent=true removes the record for good.
// @Summary Cancel or permanently delete a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID (BK###)"
// @Param permanent query bool false "Remove the record instead of cancelling it"
// @Success 200 {object} services.BookingResult
// @Failure 404 {object} services.BookingResult
// @Router /api/bookings/{id} [delete]
func (h *BookingsHandler) DeleteBooking(w http.ResponseWriter, r *http.Request, id string) {
	var result services.BookingResult
	if r.URL.Query().Get("permanent") == "true" {
		result = h.bookings.PermanentlyDelete(id)
	} else {
		result = h.bookings.Cancel(id)
	}
	if !result.Success {
		utils.WriteJSONResponse(w, http.StatusNotFound, result)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, result)
}
