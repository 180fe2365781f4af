package repository

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"hiltim-backend/internal/csvdb"
	"hiltim-backend/internal/models"
	"hiltim-backend/internal/storage"
)

// BookingRepository holds the authoritative in-memory list of booking
// records, mirrored into the storage blob on every save. The whole list
// is read and rewritten on each mutation; a single logical writer is
// assumed, the mutex only guards concurrent HTTP handlers.
type BookingRepository struct {
	store  storage.Store
	logger *zap.Logger

	mu       sync.RWMutex
	bookings []models.Booking
}

func NewBookingRepository(store storage.Store, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{store: store, logger: logger}
}

// Open loads the database from the blob. A store with no blob yet is
// seeded with the sample records and persisted immediately.
func (r *BookingRepository) Open() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.store.Exists() {
		r.bookings = models.SampleBookings()
		if err := r.persist(); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		r.logger.Info("Booking database initialized with sample data",
			zap.Int("records", len(r.bookings)))
		return nil
	}

	content, err := r.store.Read()
	if err != nil {
		return fmt.Errorf("load database: %w", err)
	}
	bookings, warnings := csvdb.Decode(content)
	for _, w := range warnings {
		r.logger.Warn("Skipped malformed database row", zap.String("detail", w))
	}
	r.bookings = bookings
	r.logger.Info("Booking database loaded", zap.Int("records", len(r.bookings)))
	return nil
}

// GetAll returns a copy of the current record list in store order.
func (r *BookingRepository) GetAll() []models.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// Count returns the number of records currently held.
func (r *BookingRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bookings)
}

// Save replaces the record list wholesale, re-encodes it and writes the
// blob.
func (r *BookingRepository) Save(bookings []models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	replaced := make([]models.Booking, len(bookings))
	copy(replaced, bookings)
	r.bookings = replaced
	if err := r.persist(); err != nil {
		return err
	}
	r.logger.Debug("Booking database saved", zap.Int("records", len(r.bookings)))
	return nil
}

func (r *BookingRepository) persist() error {
	if err := r.store.Write(csvdb.Encode(r.bookings)); err != nil {
		return fmt.Errorf("persist database: %w", err)
	}
	return nil
}
