package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"hiltim-backend/internal/csvdb"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// BookingResult is the outcome of a single-record operation. Expected
// failures (not found, invalid data) are reported here, never panicked.
type BookingResult struct {
	Success bool            `json:"success"`
	Booking *models.Booking `json:"booking,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// BookingsResult is the outcome of a list query. An empty match is still
// a success.
type BookingsResult struct {
	Success  bool             `json:"success"`
	Bookings []models.Booking `json:"bookings"`
	Error    string           `json:"error,omitempty"`
}

// StatsResult carries aggregate statistics over the whole store.
type StatsResult struct {
	Success bool                 `json:"success"`
	Stats   *models.BookingStats `json:"stats,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// ImportResult reports a bulk CSV import. The import succeeds as long as
// at least one row was valid; skipped rows are listed in Errors.
type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Imported int      `json:"imported,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// ExportResult carries the serialized database.
type ExportResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Filename    string `json:"filename,omitempty"`
	Content     string `json:"content,omitempty"`
	RecordCount int    `json:"recordCount"`
	Error       string `json:"error,omitempty"`
}

// BookingPatch is a shallow field overwrite for an existing record. Nil
// fields are left untouched.
type BookingPatch struct {
	UserID           *string               `json:"userId"`
	RoomType         *string               `json:"roomType"`
	CheckIn          *string               `json:"checkIn"`
	CheckOut         *string               `json:"checkOut"`
	Adults           *int                  `json:"adults"`
	Children         *int                  `json:"children"`
	Guests           *int                  `json:"guests"`
	Nights           *int                  `json:"nights"`
	TotalPrice       *float64              `json:"totalPrice"`
	Status           *models.BookingStatus `json:"status"`
	FirstName        *string               `json:"firstName"`
	LastName         *string               `json:"lastName"`
	Email            *string               `json:"email"`
	Phone            *string               `json:"phone"`
	SpecialRequests  *string               `json:"specialRequests"`
	ActivityPackages *[]string             `json:"activityPackages"`
	AmenityPackages  *[]string             `json:"amenityPackages"`
}

// BookingService implements the booking CRUD API on top of the record
// store.
type BookingService struct {
	repo   *repository.BookingRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewBookingService(repo *repository.BookingRepository, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the data, assigns the next BK### ID, defaults the
// status to confirmed, stamps both date fields and persists the record.
// No overlap detection is performed against existing stays.
func (s *BookingService) Create(data models.Booking) BookingResult {
	if v := s.Validate(data); !v.Valid {
		return BookingResult{Success: false, Error: "Invalid booking data", Errors: v.Errors}
	}

	bookings := s.repo.GetAll()
	today := s.today()

	booking := data
	booking.ID = nextBookingID(bookings)
	booking.Status = models.StatusConfirmed
	booking.DateCreated = today
	booking.DateModified = today
	s.deriveStayFields(&booking)

	if err := s.repo.Save(append(bookings, booking)); err != nil {
		s.logger.Error("Failed to save new booking", zap.Error(err))
		return BookingResult{Success: false, Error: "Failed to save booking to database"}
	}

	s.logger.Info("New booking created",
		zap.String("booking_id", booking.ID),
		zap.String("user_id", booking.UserID),
	)
	return BookingResult{Success: true, Booking: &booking, Message: "Booking created successfully"}
}

// GetByID finds a booking by its BK### identifier.
func (s *BookingService) GetByID(id string) BookingResult {
	for _, bk := range s.repo.GetAll() {
		if bk.ID == id {
			found := bk
			return BookingResult{Success: true, Booking: &found}
		}
	}
	return BookingResult{Success: false, Error: "Booking not found"}
}

// GetByUserID returns all bookings owned by userID, possibly none.
func (s *BookingService) GetByUserID(userID string) BookingsResult {
	matched := []models.Booking{}
	for _, bk := range s.repo.GetAll() {
		if bk.UserID == userID {
			matched = append(matched, bk)
		}
	}
	return BookingsResult{Success: true, Bookings: matched}
}

// GetByStatus returns all bookings in the given lifecycle state.
func (s *BookingService) GetByStatus(status models.BookingStatus) BookingsResult {
	matched := []models.Booking{}
	for _, bk := range s.repo.GetAll() {
		if bk.Status == status {
			matched = append(matched, bk)
		}
	}
	return BookingsResult{Success: true, Bookings: matched}
}

// GetAll returns every booking in store order.
func (s *BookingService) GetAll() BookingsResult {
	return BookingsResult{Success: true, Bookings: s.repo.GetAll()}
}

// Update merges the patch over the existing record and restamps the
// modification date. Setting status back to confirmed on a cancelled
// record is how a booking is reactivated. When the patch touches stay
// fields the merged record is re-validated.
func (s *BookingService) Update(id string, patch BookingPatch) BookingResult {
	if patch.Status != nil && !models.ValidStatus(*patch.Status) {
		return BookingResult{Success: false, Error: fmt.Sprintf("Unknown booking status: %s", *patch.Status)}
	}

	bookings := s.repo.GetAll()
	idx := findIndex(bookings, id)
	if idx < 0 {
		return BookingResult{Success: false, Error: "Booking not found"}
	}

	merged := bookings[idx]
	applyPatch(&merged, patch)
	merged.DateModified = s.today()

	if touchesStay(patch) {
		if v := s.Validate(merged); !v.Valid {
			return BookingResult{Success: false, Error: "Invalid booking data", Errors: v.Errors}
		}
	}

	bookings[idx] = merged
	if err := s.repo.Save(bookings); err != nil {
		s.logger.Error("Failed to save booking update", zap.Error(err))
		return BookingResult{Success: false, Error: "Failed to save booking updates"}
	}

	s.logger.Info("Booking updated", zap.String("booking_id", id))
	return BookingResult{Success: true, Booking: &merged, Message: "Booking updated successfully"}
}

// Cancel is the soft delete: the record stays in the store with its
// status forced to cancelled.
func (s *BookingService) Cancel(id string) BookingResult {
	bookings := s.repo.GetAll()
	idx := findIndex(bookings, id)
	if idx < 0 {
		return BookingResult{Success: false, Error: "Booking not found"}
	}

	bookings[idx].Status = models.StatusCancelled
	bookings[idx].DateModified = s.today()

	if err := s.repo.Save(bookings); err != nil {
		s.logger.Error("Failed to save booking cancellation", zap.Error(err))
		return BookingResult{Success: false, Error: "Failed to cancel booking"}
	}

	cancelled := bookings[idx]
	s.logger.Info("Booking cancelled", zap.String("booking_id", id))
	return BookingResult{Success: true, Booking: &cancelled, Message: "Booking cancelled successfully"}
}

// PermanentlyDelete removes the record from the store entirely,
// regardless of its current status.
func (s *BookingService) PermanentlyDelete(id string) BookingResult {
	bookings := s.repo.GetAll()
	remaining := bookings[:0:0]
	for _, bk := range bookings {
		if bk.ID != id {
			remaining = append(remaining, bk)
		}
	}
	if len(remaining) == len(bookings) {
		return BookingResult{Success: false, Error: "Booking not found"}
	}

	if err := s.repo.Save(remaining); err != nil {
		s.logger.Error("Failed to save booking deletion", zap.Error(err))
		return BookingResult{Success: false, Error: "Failed to delete booking"}
	}

	s.logger.Info("Booking permanently deleted", zap.String("booking_id", id))
	return BookingResult{Success: true, Message: "Booking permanently deleted"}
}

// Stats computes per-status counts and total revenue in one pass.
// Revenue only counts confirmed bookings.
func (s *BookingService) Stats() StatsResult {
	stats := models.BookingStats{}
	for _, bk := range s.repo.GetAll() {
		stats.Total++
		switch bk.Status {
		case models.StatusConfirmed:
			stats.Confirmed++
			stats.TotalRevenue += bk.TotalPrice
		case models.StatusPending:
			stats.Pending++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return StatsResult{Success: true, Stats: &stats}
}

// ImportCSV replaces the whole database with the records decoded from
// text. Malformed and invalid rows are skipped and reported as warnings;
// the import fails only when no valid row remains.
func (s *BookingService) ImportCSV(text string) ImportResult {
	decoded, warnings := csvdb.Decode(text)
	if len(decoded) == 0 && len(warnings) == 0 {
		return ImportResult{Success: false, Error: "No valid booking data found in CSV"}
	}

	valid := []models.Booking{}
	for i, bk := range decoded {
		if v := s.Validate(bk); !v.Valid {
			warnings = append(warnings, fmt.Sprintf("row %d: %s", i+2, strings.Join(v.Errors, ", ")))
			continue
		}
		if bk.ID == "" {
			bk.ID = nextBookingID(valid)
		}
		valid = append(valid, bk)
	}

	if len(valid) == 0 {
		return ImportResult{Success: false, Error: "No valid bookings found", Errors: warnings}
	}

	if err := s.repo.Save(valid); err != nil {
		s.logger.Error("Failed to save imported bookings", zap.Error(err))
		return ImportResult{Success: false, Error: "Failed to save imported bookings"}
	}

	s.logger.Info("Booking database replaced by import",
		zap.Int("imported", len(valid)),
		zap.Int("skipped", len(warnings)),
	)
	return ImportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully imported %d bookings", len(valid)),
		Imported: len(valid),
		Errors:   warnings,
	}
}

// ExportCSV serializes the whole database, with a dated default filename
// for the attachment.
func (s *BookingService) ExportCSV() ExportResult {
	bookings := s.repo.GetAll()
	filename := fmt.Sprintf("hiltim_bookings_%s.csv", s.today())
	return ExportResult{
		Success:     true,
		Message:     fmt.Sprintf("Exported %d bookings to %s", len(bookings), filename),
		Filename:    filename,
		Content:     csvdb.Encode(bookings),
		RecordCount: len(bookings),
	}
}

func (s *BookingService) today() string {
	return s.now().Format(dateLayout)
}

// deriveStayFields fills nights, guest count and total price when the
// caller left them zero. Price derivation needs a known room type.
func (s *BookingService) deriveStayFields(bk *models.Booking) {
	if bk.Nights == 0 {
		in, errIn := time.Parse(dateLayout, bk.CheckIn)
		out, errOut := time.Parse(dateLayout, bk.CheckOut)
		if errIn == nil && errOut == nil {
			bk.Nights = int(out.Sub(in).Hours() / 24)
		}
	}
	if bk.Guests == 0 {
		bk.Guests = bk.Adults + bk.Children
	}
	if bk.TotalPrice == 0 {
		if rate, ok := models.RoomRate(bk.RoomType); ok {
			bk.TotalPrice = rate * float64(bk.Nights)
		}
	}
}

// nextBookingID takes the maximum numeric suffix among existing IDs and
// increments it.
func nextBookingID(bookings []models.Booking) string {
	maxID := 0
	for _, bk := range bookings {
		n, err := strconv.Atoi(strings.TrimPrefix(bk.ID, "BK"))
		if err == nil && n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("BK%03d", maxID+1)
}

func findIndex(bookings []models.Booking, id string) int {
	for i, bk := range bookings {
		if bk.ID == id {
			return i
		}
	}
	return -1
}

func applyPatch(bk *models.Booking, patch BookingPatch) {
	if patch.UserID != nil {
		bk.UserID = *patch.UserID
	}
	if patch.RoomType != nil {
		bk.RoomType = *patch.RoomType
	}
	if patch.CheckIn != nil {
		bk.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		bk.CheckOut = *patch.CheckOut
	}
	if patch.Adults != nil {
		bk.Adults = *patch.Adults
	}
	if patch.Children != nil {
		bk.Children = *patch.Children
	}
	if patch.Guests != nil {
		bk.Guests = *patch.Guests
	}
	if patch.Nights != nil {
		bk.Nights = *patch.Nights
	}
	if patch.TotalPrice != nil {
		bk.TotalPrice = *patch.TotalPrice
	}
	if patch.Status != nil {
		bk.Status = *patch.Status
	}
	if patch.FirstName != nil {
		bk.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		bk.LastName = *patch.LastName
	}
	if patch.Email != nil {
		bk.Email = *patch.Email
	}
	if patch.Phone != nil {
		bk.Phone = *patch.Phone
	}
	if patch.SpecialRequests != nil {
		bk.SpecialRequests = *patch.SpecialRequests
	}
	if patch.ActivityPackages != nil {
		bk.ActivityPackages = *patch.ActivityPackages
	}
	if patch.AmenityPackages != nil {
		bk.AmenityPackages = *patch.AmenityPackages
	}
}

func touchesStay(patch BookingPatch) bool {
	return patch.CheckIn != nil || patch.CheckOut != nil || patch.Adults != nil || patch.RoomType != nil
}
