package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiltim-backend/internal/models"
)

func TestValidateMissingFieldsAggregated(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Validate(models.Booking{})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	for _, field := range []string{"checkIn", "checkOut", "adults", "roomType", "firstName", "lastName", "email"} {
		assert.Contains(t, result.Errors[0], field)
	}
}

func TestValidatePastCheckIn(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckIn = "2020-01-01"
	bk.CheckOut = "2020-01-02"
	result := svc.Validate(bk)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Check-in date cannot be in the past")
}

func TestValidateCheckOutBeforeCheckIn(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckIn = "2025-12-04"
	bk.CheckOut = "2025-12-01"
	result := svc.Validate(bk)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Check-out date must be after check-in date")
}

func TestValidateChecksAccumulate(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckIn = "2020-01-02"
	bk.CheckOut = "2020-01-01"
	result := svc.Validate(bk)
	require.False(t, result.Valid)
	// Both date rules fire; neither short-circuits the other.
	assert.Len(t, result.Errors, 2)
}

func TestValidateSameDayCheckOutRejected(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckOut = bk.CheckIn
	result := svc.Validate(bk)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Check-out date must be after check-in date")
}

func TestValidateCheckInTodayAllowed(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckIn = "2025-09-20" // the fixed test clock's date
	bk.CheckOut = "2025-09-22"
	assert.True(t, svc.Validate(bk).Valid)
}

func TestValidateUnparseableDates(t *testing.T) {
	svc := newTestService(t, nil)

	bk := validBooking()
	bk.CheckIn = "not-a-date"
	result := svc.Validate(bk)
	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Check-in date is not a valid date")
}
