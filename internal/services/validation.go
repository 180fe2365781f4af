package services

import (
	"fmt"
	"strings"
	"time"

	"hiltim-backend/internal/models"
)

// ValidationResult lists every problem found with a record; checks do not
// short-circuit once the required fields are present.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks the fixed required-field set, the date constraints and
// the occupancy rule. Missing required fields are reported as a single
// aggregated error and stop further checks, since the remaining rules
// need those fields.
func (s *BookingService) Validate(data models.Booking) ValidationResult {
	var missing []string
	if data.CheckIn == "" {
		missing = append(missing, "checkIn")
	}
	if data.CheckOut == "" {
		missing = append(missing, "checkOut")
	}
	if data.Adults == 0 {
		missing = append(missing, "adults")
	}
	if data.RoomType == "" {
		missing = append(missing, "roomType")
	}
	if data.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if data.LastName == "" {
		missing = append(missing, "lastName")
	}
	if data.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", "))},
		}
	}

	var errors []string

	checkIn, errIn := time.Parse(dateLayout, data.CheckIn)
	checkOut, errOut := time.Parse(dateLayout, data.CheckOut)
	if errIn != nil {
		errors = append(errors, "Check-in date is not a valid date")
	}
	if errOut != nil {
		errors = append(errors, "Check-out date is not a valid date")
	}

	if errIn == nil && errOut == nil {
		today := s.todayDate()
		if checkIn.Before(today) {
			errors = append(errors, "Check-in date cannot be in the past")
		}
		if !checkOut.After(checkIn) {
			errors = append(errors, "Check-out date must be after check-in date")
		}
	}

	if data.Adults < 1 {
		errors = append(errors, "At least one adult is required")
	}

	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// todayDate is the current date with the time of day zeroed, so the
// past-check-in rule compares calendar dates only.
func (s *BookingService) todayDate() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
