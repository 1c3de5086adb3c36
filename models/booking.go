package models

import (
	"time"
)

// Payment status values for a booking.
const (
	PaymentPending   = "pending"
	PaymentPaid      = "paid"
	PaymentCancelled = "cancelled"
)

// StatusConfirmed is the lifecycle status assigned on creation. There is no
// pending-approval state; a persisted booking is a confirmed booking.
const StatusConfirmed = "confirmed"

type Booking struct {
	ID      string `json:"id" gorm:"type:uuid;primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service" gorm:"not null"`
	Barber  string `json:"barber,omitempty"`

	// Date is a naive calendar date string (YYYY-MM-DD), Time a slot label
	// such as "10:00 AM". Capacity is tracked per (Date, Time) pair.
	Date string `json:"date" gorm:"index:idx_bookings_date_time,priority:1;not null"`
	Time string `json:"time" gorm:"index:idx_bookings_date_time,priority:2;not null"`

	Notes  string   `json:"notes,omitempty"`
	Amount *float64 `json:"amount" gorm:"type:decimal(10,2)"`

	PaymentStatus string `json:"paymentStatus" gorm:"default:'pending'"`
	Status        string `json:"status" gorm:"default:'confirmed'"`

	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}
