package dto

import "hiltim-backend/internal/models"

// CreateBookingRequest represents the payload to create a booking.
// Nights, guests and totalPrice may be left at zero; the service derives
// them from the stay dates and the room catalog.
type CreateBookingRequest struct {
	UserID           string   `json:"userId"`
	RoomType         string   `json:"roomType"`
	CheckIn          string   `json:"checkIn"`  // YYYY-MM-DD
	CheckOut         string   `json:"checkOut"` // YYYY-MM-DD
	Adults           int      `json:"adults"`
	Children         int      `json:"children"`
	Guests           int      `json:"guests"`
	Nights           int      `json:"nights"`
	TotalPrice       float64  `json:"totalPrice"`
	FirstName        string   `json:"firstName"`
	LastName         string   `json:"lastName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	SpecialRequests  string   `json:"specialRequests"`
	ActivityPackages []string `json:"activityPackages"`
	AmenityPackages  []string `json:"amenityPackages"`
}

// ToModel converts the request into a booking record. ID, status and the
// bookkeeping dates are assigned by the service.
func (r CreateBookingRequest) ToModel() models.Booking {
	return models.Booking{
		UserID:           r.UserID,
		RoomType:         r.RoomType,
		CheckIn:          r.CheckIn,
		CheckOut:         r.CheckOut,
		Adults:           r.Adults,
		Children:         r.Children,
		Guests:           r.Guests,
		Nights:           r.Nights,
		TotalPrice:       r.TotalPrice,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		SpecialRequests:  r.SpecialRequests,
		ActivityPackages: r.ActivityPackages,
		AmenityPackages:  r.AmenityPackages,
	}
}

// ImportRequest carries a full replacement database as CSV text.
type ImportRequest struct {
	CSV string `json:"csv"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
