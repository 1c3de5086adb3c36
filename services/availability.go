package services

import (
	"time"

	"bladecrown-backend/store"
)

// SlotPolicy configures availability accounting: the day's slot labels and
// how many bookings each slot admits. The booking form runs the half-hour
// schedule with capacity 3; the walk-in schedule is the same policy with
// hourly slots and capacity 1.
type SlotPolicy struct {
	Slots    []string
	Capacity int
}

// SlotStatus is the derived state of one slot on one date.
type SlotStatus struct {
	Slot      string `json:"slot"`
	Count     int    `json:"count"`
	Remaining int    `json:"remaining"`
	Full      bool   `json:"full"`
}

// AvailabilityService derives per-slot occupancy for a date from the current
// store contents. It is read-only: the capacity invariant itself is enforced
// by BookingService at write time.
type AvailabilityService struct {
	store  store.BookingStore
	policy SlotPolicy
}

func NewAvailabilityService(s store.BookingStore, policy SlotPolicy) *AvailabilityService {
	return &AvailabilityService{store: s, policy: policy}
}

func (s *AvailabilityService) Policy() SlotPolicy {
	return s.policy
}

// CountsForDate returns occupancy for every configured slot, including
// explicit zero entries, so consumers never have to guess at missing keys.
// A date with no bookings yields an all-zero map, never an error.
func (s *AvailabilityService) CountsForDate(date string) (map[string]int, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	booked, err := s.store.CountByDate(date)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(s.policy.Slots))
	for _, slot := range s.policy.Slots {
		counts[slot] = booked[slot]
	}
	return counts, nil
}

// DaySchedule classifies every configured slot for a date against the
// policy capacity, in schedule order.
func (s *AvailabilityService) DaySchedule(date string) ([]SlotStatus, error) {
	counts, err := s.CountsForDate(date)
	if err != nil {
		return nil, err
	}

	schedule := make([]SlotStatus, 0, len(s.policy.Slots))
	for _, slot := range s.policy.Slots {
		count := counts[slot]
		remaining := s.policy.Capacity - count
		if remaining < 0 {
			remaining = 0
		}
		schedule = append(schedule, SlotStatus{
			Slot:      slot,
			Count:     count,
			Remaining: remaining,
			Full:      count >= s.policy.Capacity,
		})
	}
	return schedule, nil
}

// Occupancy returns the current booking count for one (date, slot) pair.
func (s *AvailabilityService) Occupancy(date, slot string) (int, error) {
	booked, err := s.store.CountByDate(date)
	if err != nil {
		return 0, err
	}
	return booked[slot], nil
}

func validateDate(date string) error {
	if date == "" {
		return invalid("date", "Date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return invalid("date", "Date must be a valid YYYY-MM-DD date")
	}
	return nil
}
