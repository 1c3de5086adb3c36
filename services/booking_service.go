// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"bladecrown-backend/models"
	"bladecrown-backend/store"
	"bladecrown-backend/utils"

	"github.com/google/uuid"
)

// CreateBookingInput is the typed booking-creation command produced at the
// HTTP boundary. Validation happens here, not in the handler, so every entry
// point enforces the same rules.
type CreateBookingInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Service       string   `json:"service"`
	Barber        string   `json:"barber"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Notes         string   `json:"notes"`
	Amount        *float64 `json:"amount"`
	PaymentStatus string   `json:"paymentStatus"`
}

const maxNotesLength = 500

// BookingService validates, persists and mutates bookings. It is the only
// component that enforces the per-slot capacity invariant, and it does so
// under a mutex so two concurrent submissions cannot both pass the occupancy
// check for the same slot.
type BookingService struct {
	store         store.BookingStore
	availability  *AvailabilityService
	dispatcher    Dispatcher
	businessEmail string

	mu sync.Mutex // serializes capacity check + insert
}

type BookingServiceOption func(*BookingService)

// WithBusinessEmail enables the internal owner alert on every new booking.
func WithBusinessEmail(email string) BookingServiceOption {
	return func(s *BookingService) {
		s.businessEmail = email
	}
}

func NewBookingService(st store.BookingStore, availability *AvailabilityService, dispatcher Dispatcher, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		store:        st,
		availability: availability,
		dispatcher:   dispatcher,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create runs the intake flow: validate and normalize the request, re-check
// slot occupancy against the capacity policy, persist, then queue the
// confirmation and owner notifications. Validation short-circuits on the
// first failing rule and nothing is persisted on any failure.
func (s *BookingService) Create(input CreateBookingInput) (*models.Booking, error) {
	normalized, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	occupancy, err := s.availability.Occupancy(normalized.Date, normalized.Time)
	if err != nil {
		return nil, err
	}
	if occupancy >= s.availability.Policy().Capacity {
		return nil, &CapacityError{Date: normalized.Date, Slot: normalized.Time}
	}

	booking := &models.Booking{
		ID:            uuid.NewString(),
		Name:          normalized.Name,
		Email:         normalized.Email,
		Phone:         normalized.Phone,
		Service:       normalized.Service,
		Barber:        normalized.Barber,
		Date:          normalized.Date,
		Time:          normalized.Time,
		Notes:         normalized.Notes,
		Amount:        normalized.Amount,
		PaymentStatus: normalized.PaymentStatus,
		Status:        models.StatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Insert(booking); err != nil {
		return nil, err
	}

	log.Printf("new booking %s: %s <%s> — %s on %s at %s", booking.ID, booking.Name, booking.Email, booking.Service, booking.Date, booking.Time)

	s.dispatcher.Enqueue(Notification{
		To:      booking.Email,
		Phone:   booking.Phone,
		Subject: "Booking Confirmed — Blade & Crown",
		HTML:    utils.CustomerBookingHTML(booking),
		SMS:     fmt.Sprintf("Blade & Crown: you're booked for %s on %s at %s. See you then!", models.ServiceName(booking.Service), booking.Date, booking.Time),
	})
	if s.businessEmail != "" {
		s.dispatcher.Enqueue(Notification{
			To:      s.businessEmail,
			Subject: fmt.Sprintf("New Booking: %s — %s", booking.Name, booking.Service),
			HTML:    utils.OwnerBookingHTML(booking),
		})
	}

	return booking, nil
}

// validate applies the intake rules in order and returns the normalized
// input. The strict policy applies throughout: name >= 2 characters, email
// lowercased, phone exactly ten digits when present.
func (s *BookingService) validate(input CreateBookingInput) (CreateBookingInput, error) {
	out := input

	out.Name = strings.TrimSpace(input.Name)
	if utf8.RuneCountInString(out.Name) < 2 {
		return out, invalid("name", "Name is required (at least 2 characters)")
	}
	if utf8.RuneCountInString(out.Name) > 100 {
		return out, invalid("name", "Name must be 100 characters or fewer")
	}

	if !utils.ValidEmail(input.Email) {
		return out, invalid("email", "Valid email is required")
	}
	out.Email = utils.NormalizeEmail(input.Email)

	if strings.TrimSpace(input.Phone) != "" {
		if !utils.ValidPhone(input.Phone) {
			return out, invalid("phone", "Phone must be 10 digits")
		}
		out.Phone = utils.DigitsOnly(input.Phone)
	} else {
		out.Phone = ""
	}

	out.Service = strings.TrimSpace(input.Service)
	if out.Service == "" {
		return out, invalid("service", "Please select a service")
	}
	if _, known := models.PriceFor(out.Service); !known {
		// Data-quality check, not a security boundary: the form only offers
		// catalog entries, so log and carry on.
		log.Printf("booking for unknown service %q", out.Service)
	}

	out.Barber = strings.TrimSpace(input.Barber)
	if strings.EqualFold(out.Barber, models.NoPreference) {
		out.Barber = ""
	}

	if input.Date == "" {
		return out, invalid("date", "Please select a date")
	}
	if _, err := time.Parse(utils.DateLayout, input.Date); err != nil {
		return out, invalid("date", "Date must be a valid YYYY-MM-DD date")
	}
	// String comparison keeps "today" tied to local wall time; parsing the
	// date would pin it to UTC midnight and reject same-day bookings in
	// zones west of UTC.
	if input.Date < utils.Today() {
		return out, invalid("date", "Booking date cannot be in the past.")
	}

	if input.Time == "" {
		return out, invalid("time", "Please select a time")
	}
	if !models.ValidSlot(s.availability.Policy().Slots, input.Time) {
		return out, invalid("time", "Please select a valid time slot")
	}

	out.Notes = strings.TrimSpace(input.Notes)
	if utf8.RuneCountInString(out.Notes) > maxNotesLength {
		return out, invalid("notes", "Notes must be 500 characters or fewer")
	}

	if out.PaymentStatus == "" {
		out.PaymentStatus = models.PaymentPending
	}

	return out, nil
}

// List returns every booking in insertion order.
func (s *BookingService) List() ([]models.Booking, error) {
	return s.store.All()
}

// MarkPaid transitions a booking to paid exactly once. The amount falls back
// to whatever was captured at booking time, then to the catalog price.
// Occupancy is untouched: paying never changes slot accounting.
func (s *BookingService) MarkPaid(id string, amount *float64) (*models.Booking, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if existing.PaymentStatus == models.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	updated, err := s.store.UpdateByID(id, func(b *models.Booking) {
		b.PaymentStatus = models.PaymentPaid
		now := time.Now().UTC()
		b.PaidAt = &now
		if amount != nil {
			b.Amount = amount
		} else if b.Amount == nil {
			if price, ok := models.PriceFor(b.Service); ok {
				b.Amount = &price
			}
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	log.Printf("payment marked for booking %s: %s — %s", updated.ID, updated.Name, updated.Service)

	s.dispatcher.Enqueue(Notification{
		To:      updated.Email,
		Phone:   updated.Phone,
		Subject: "Payment Confirmed — Blade & Crown",
		HTML:    utils.PaymentConfirmationHTML(updated),
	})

	return updated, nil
}

// Cancel removes the booking entirely. Deletion is how cancellation frees a
// slot; there is no soft-delete in this flow.
func (s *BookingService) Cancel(id string) (*models.Booking, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.store.DeleteByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	log.Printf("cancelled booking %s: %s — %s", existing.ID, existing.Name, existing.Service)
	return existing, nil
}

// RevenueSummary aggregates paid totals; pendingCount covers everything not
// yet paid.
type RevenueSummary struct {
	Total        float64            `json:"total"`
	PaidCount    int                `json:"paidCount"`
	PendingCount int                `json:"pendingCount"`
	ByBarber     map[string]float64 `json:"byBarber"`
	ByService    map[string]float64 `json:"byService"`
}

func (s *BookingService) Revenue() (*RevenueSummary, error) {
	bookings, err := s.store.All()
	if err != nil {
		return nil, err
	}

	summary := &RevenueSummary{
		ByBarber:  make(map[string]float64),
		ByService: make(map[string]float64),
	}
	for i := range bookings {
		b := &bookings[i]
		if b.PaymentStatus != models.PaymentPaid {
			summary.PendingCount++
			continue
		}
		summary.PaidCount++
		amount := 0.0
		if b.Amount != nil {
			amount = *b.Amount
		}
		summary.Total += amount

		barber := b.Barber
		if barber == "" {
			barber = models.NoPreference
		}
		summary.ByBarber[barber] += amount
		summary.ByService[models.ServiceName(b.Service)] += amount
	}
	return summary, nil
}

// HealthStats backs the liveness endpoint.
func (s *BookingService) HealthStats() (totalBookings int, totalRevenue float64, err error) {
	bookings, err := s.store.All()
	if err != nil {
		return 0, 0, err
	}
	for i := range bookings {
		if bookings[i].PaymentStatus == models.PaymentPaid && bookings[i].Amount != nil {
			totalRevenue += *bookings[i].Amount
		}
	}
	return len(bookings), totalRevenue, nil
}
