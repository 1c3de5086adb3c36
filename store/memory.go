package store

import (
	"sync"

	"bladecrown-backend/models"
)

// MemoryStore keeps all bookings in an in-memory slice. Gin serves requests
// on concurrent goroutines, so every access goes through the RWMutex. State
// does not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == b.ID {
			return ErrDuplicateID
		}
	}
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryStore) All() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out, nil
}

func (s *MemoryStore) FindByID(id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateByID(id string, mutate func(*models.Booking)) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			mutate(&s.bookings[i])
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) CountByDate(date string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for i := range s.bookings {
		if s.bookings[i].Date == date {
			counts[s.bookings[i].Time]++
		}
	}
	return counts, nil
}
