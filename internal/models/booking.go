package models

// BookingStatus is the lifecycle state of a booking record.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatus reports whether s is one of the three known lifecycle states.
func ValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a single hotel booking record as stored in the CSV
// database. Dates are date-only strings in YYYY-MM-DD format.
type Booking struct {
	ID               string        `json:"id"`
	UserID           string        `json:"userId"`
	RoomType         string        `json:"roomType"`
	CheckIn          string        `json:"checkIn"`
	CheckOut         string        `json:"checkOut"`
	Adults           int           `json:"adults"`
	Children         int           `json:"children"`
	Guests           int           `json:"guests"`
	Nights           int           `json:"nights"`
	TotalPrice       float64       `json:"totalPrice"`
	Status           BookingStatus `json:"status"`
	DateCreated      string        `json:"dateCreated"`
	DateModified     string        `json:"dateModified"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	SpecialRequests  string        `json:"specialRequests"`
	ActivityPackages []string      `json:"activityPackages"`
	AmenityPackages  []string      `json:"amenityPackages"`
}

// BookingStats aggregates the store in a single pass. TotalRevenue only
// counts confirmed bookings.
type BookingStats struct {
	Total        int     `json:"total"`
	Confirmed    int     `json:"confirmed"`
	Pending      int     `json:"pending"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// SampleBookings returns the records used to seed a brand-new database.
func SampleBookings() []Booking {
	return []Booking{
		{
			ID:               "BK001",
			UserID:           "user123",
			RoomType:         "Ocean View Suite",
			CheckIn:          "2025-10-15",
			CheckOut:         "2025-10-20",
			Adults:           2,
			Children:         0,
			Guests:           2,
			Nights:           5,
			TotalPrice:       1100,
			Status:           StatusConfirmed,
			DateCreated:      "2025-09-10",
			DateModified:     "2025-09-10",
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john.doe@email.com",
			Phone:            "+1-555-0123",
			SpecialRequests:  "Late checkout, champagne welcome",
			ActivityPackages: []string{"Pearl Harbor Historical Package", "Ocean Explorer Package"},
			AmenityPackages:  []string{"Spa & Wellness Package"},
		},
		{
			ID:               "BK002",
			UserID:           "user123",
			RoomType:         "Standard Room",
			CheckIn:          "2025-11-10",
			CheckOut:         "2025-11-13",
			Adults:           1,
			Children:         0,
			Guests:           1,
			Nights:           3,
			TotalPrice:       450,
			Status:           StatusPending,
			DateCreated:      "2025-09-12",
			DateModified:     "2025-09-12",
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john.doe@email.com",
			Phone:            "+1-555-0123",
			SpecialRequests:  "",
			ActivityPackages: []string{"Diamond Head Adventure Package"},
			AmenityPackages:  []string{},
		},
	}
}
