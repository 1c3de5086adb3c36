package services

import (
	"errors"
	"fmt"
)

// ErrBookingNotFound signals an operation on a nonexistent booking id.
var ErrBookingNotFound = errors.New("Booking not found")

// ErrAlreadyPaid guards pay idempotency: a booking already marked paid is
// never re-marked, the second call is rejected.
var ErrAlreadyPaid = errors.New("Already marked as paid")

// ValidationError is a user-correctable request error. Message names the
// first violated rule and is safe to surface directly to the booking form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CapacityError signals a fully booked slot. The client recovers by picking
// another time.
type CapacityError struct {
	Date string
	Slot string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("The %s slot on %s is fully booked. Please pick another time.", e.Slot, e.Date)
}
