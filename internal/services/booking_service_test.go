package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hiltim-backend/internal/csvdb"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/repository"
	"hiltim-backend/internal/storage"
)

// testNow is the fixed clock used by service tests; the seeded sample
// stays are in the future relative to it.
var testNow = time.Date(2025, 9, 20, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, seed []models.Booking) *BookingService {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Write(csvdb.Encode(seed)))

	repo := repository.NewBookingRepository(store, zap.NewNop())
	require.NoError(t, repo.Open())

	svc := NewBookingService(repo, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc
}

func validBooking() models.Booking {
	return models.Booking{
		UserID:    "user123",
		RoomType:  "standard",
		CheckIn:   "2025-12-01",
		CheckOut:  "2025-12-04",
		Adults:    2,
		Children:  1,
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane@example.com",
	}
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	svc := newTestService(t, nil)

	for i := 1; i <= 5; i++ {
		result := svc.Create(validBooking())
		require.True(t, result.Success, "create %d failed: %s %v", i, result.Error, result.Errors)
		assert.Equal(t, fmt.Sprintf("BK%03d", i), result.Booking.ID)
	}
}

func TestCreateDefaultsAndDerivations(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Create(validBooking())
	require.True(t, result.Success)

	bk := result.Booking
	assert.Equal(t, models.StatusConfirmed, bk.Status)
	assert.Equal(t, "2025-09-20", bk.DateCreated)
	assert.Equal(t, "2025-09-20", bk.DateModified)
	assert.Equal(t, 3, bk.Nights)
	assert.Equal(t, 3, bk.Guests)
	assert.Equal(t, float64(150*3), bk.TotalPrice)
}

func TestCreateRejectsInvalidData(t *testing.T) {
	svc := newTestService(t, nil)

	bad := validBooking()
	bad.Email = ""
	bad.RoomType = ""
	result := svc.Create(bad)
	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "roomType")
	assert.Contains(t, result.Errors[0], "email")
	assert.Equal(t, 0, svc.repo.Count())
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	found := svc.GetByID("BK001")
	require.True(t, found.Success)
	assert.Equal(t, "BK001", found.Booking.ID)

	missing := svc.GetByID("BK999")
	assert.False(t, missing.Success)
	assert.Nil(t, missing.Booking)
}

func TestGetByUserIDAlwaysSucceeds(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	mine := svc.GetByUserID("user123")
	require.True(t, mine.Success)
	assert.Len(t, mine.Bookings, 2)

	nobody := svc.GetByUserID("ghost")
	require.True(t, nobody.Success)
	assert.Empty(t, nobody.Bookings)
}

func TestStatusTransitions(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	// confirmed --cancel--> cancelled
	cancelled := svc.Cancel("BK001")
	require.True(t, cancelled.Success)
	assert.Equal(t, models.StatusCancelled, cancelled.Booking.Status)
	assert.Equal(t, "2025-09-20", cancelled.Booking.DateModified)

	// cancelled --reactivate--> confirmed, via a plain status update
	status := models.StatusConfirmed
	reactivated := svc.Update("BK001", BookingPatch{Status: &status})
	require.True(t, reactivated.Success)
	assert.Equal(t, models.StatusConfirmed, reactivated.Booking.Status)

	// hard delete is terminal
	deleted := svc.PermanentlyDelete("BK001")
	require.True(t, deleted.Success)
	assert.False(t, svc.GetByID("BK001").Success)
}

func TestCancelNotFound(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())
	assert.False(t, svc.Cancel("BK999").Success)
	assert.False(t, svc.PermanentlyDelete("BK999").Success)
}

func TestUpdateMergesAndRestamps(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	requests := "Ground floor room"
	phone := "+1-555-9999"
	result := svc.Update("BK002", BookingPatch{
		SpecialRequests: &requests,
		Phone:           &phone,
	})
	require.True(t, result.Success)
	assert.Equal(t, requests, result.Booking.SpecialRequests)
	assert.Equal(t, phone, result.Booking.Phone)
	assert.Equal(t, "2025-09-20", result.Booking.DateModified)
	// Untouched fields survive the merge.
	assert.Equal(t, "Standard Room", result.Booking.RoomType)
	assert.Equal(t, models.StatusPending, result.Booking.Status)
}

func TestUpdateRevalidatesStayFields(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	past := "2020-01-01"
	result := svc.Update("BK001", BookingPatch{CheckIn: &past})
	require.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)

	// A non-stay patch on the same record is fine even though its dates
	// may already lie in the past.
	note := "anniversary"
	assert.True(t, svc.Update("BK001", BookingPatch{SpecialRequests: &note}).Success)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	bogus := models.BookingStatus("archived")
	result := svc.Update("BK001", BookingPatch{Status: &bogus})
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "archived")
}

func TestStats(t *testing.T) {
	seed := []models.Booking{
		{ID: "BK001", Status: models.StatusConfirmed, TotalPrice: 100},
		{ID: "BK002", Status: models.StatusConfirmed, TotalPrice: 200},
		{ID: "BK003", Status: models.StatusCancelled, TotalPrice: 50},
	}
	svc := newTestService(t, seed)

	result := svc.Stats()
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Confirmed)
	assert.Equal(t, 0, result.Stats.Pending)
	assert.Equal(t, 1, result.Stats.Cancelled)
	assert.Equal(t, float64(300), result.Stats.TotalRevenue)
}

func TestImportSkipsInvalidRows(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	row := func(id, email string) string {
		return fmt.Sprintf("%s,user9,Standard Room,2025-12-01,2025-12-04,2,0,2,3,450,confirmed,2025-09-01,2025-09-01,Ann,Lee,%s,,,,", id, email)
	}
	text := strings.Join(csvdb.Headers, ",") + "\n" +
		row("BK001", "a@example.com") + "\n" +
		row("BK002", "b@example.com") + "\n" +
		row("BK003", "") + "\n" + // missing email
		row("BK004", "d@example.com") + "\n"

	result := svc.ImportCSV(text)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "email")

	// The previous database is fully replaced.
	all := svc.GetAll()
	require.Len(t, all.Bookings, 3)
	for _, bk := range all.Bookings {
		assert.NotEqual(t, "BK003", bk.ID)
	}
}

func TestImportAssignsMissingIDs(t *testing.T) {
	svc := newTestService(t, nil)

	text := strings.Join(csvdb.Headers, ",") + "\n" +
		",user9,Standard Room,2025-12-01,2025-12-04,2,0,2,3,450,confirmed,2025-09-01,2025-09-01,Ann,Lee,a@example.com,,,,\n"

	result := svc.ImportCSV(text)
	require.True(t, result.Success)
	require.Equal(t, 1, result.Imported)
	assert.Equal(t, "BK001", svc.GetAll().Bookings[0].ID)
}

func TestImportFailsWithoutValidRows(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	empty := svc.ImportCSV("")
	assert.False(t, empty.Success)

	text := strings.Join(csvdb.Headers, ",") + "\n" +
		",user9,Standard Room,2025-12-01,2025-12-04,2,0,2,3,450,confirmed,2025-09-01,2025-09-01,Ann,Lee,,,,,\n"
	invalid := svc.ImportCSV(text)
	assert.False(t, invalid.Success)
	assert.NotEmpty(t, invalid.Errors)

	// Failed imports leave the database untouched.
	assert.Equal(t, 2, svc.repo.Count())
}

func TestExportRoundTrips(t *testing.T) {
	svc := newTestService(t, models.SampleBookings())

	result := svc.ExportCSV()
	require.True(t, result.Success)
	assert.Equal(t, 2, result.RecordCount)
	assert.Equal(t, "hiltim_bookings_2025-09-20.csv", result.Filename)

	decoded, warnings := csvdb.Decode(result.Content)
	assert.Empty(t, warnings)
	assert.Len(t, decoded, 2)
}
