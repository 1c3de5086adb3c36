package store

import (
	"errors"

	"bladecrown-backend/models"
)

// ErrNotFound is returned by lookups and mutations for an unknown booking id.
var ErrNotFound = errors.New("booking not found")

// ErrDuplicateID is returned when an insert collides with an existing id.
// With uuid v4 identifiers this should never happen in practice.
var ErrDuplicateID = errors.New("booking id already exists")

// BookingStore holds all booking records and owns no business rules beyond
// record identity. All() preserves insertion order; callers re-sort as
// needed. The default implementation is in-memory (process-lifetime only),
// the postgres implementation behind the same interface is opt-in.
type BookingStore interface {
	Insert(b *models.Booking) error
	All() ([]models.Booking, error)
	FindByID(id string) (*models.Booking, error)
	// UpdateByID applies mutate to the matching record and returns the
	// updated copy.
	UpdateByID(id string, mutate func(*models.Booking)) (*models.Booking, error)
	DeleteByID(id string) error
	// CountByDate tallies bookings per time-slot label for one calendar
	// date. Slots with no bookings are absent from the map.
	CountByDate(date string) (map[string]int, error)
}
