// controllers/booking.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"bladecrown-backend/models"
	"bladecrown-backend/services"
	"bladecrown-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// bookingResponse is the safe projection returned to the public booking
// form: no email or phone echoed back.
type bookingResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Service       string    `json:"service"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Amount        *float64  `json:"amount"`
	PaymentStatus string    `json:"paymentStatus"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func newBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		Name:          b.Name,
		Service:       b.Service,
		Date:          b.Date,
		Time:          b.Time,
		Amount:        b.Amount,
		PaymentStatus: b.PaymentStatus,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

// GetBookings lists every booking for the admin dashboard.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.service.List()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// CreateBooking handles the public booking form submission.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input services.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := bc.service.Create(input)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": vErr.Message,
				"errors":  []gin.H{{"field": vErr.Field, "message": vErr.Message}},
			})
			return
		}
		var cErr *services.CapacityError
		if errors.As(err, &cErr) {
			utils.RespondWithError(c, http.StatusBadRequest, cErr.Error())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking confirmed successfully!",
		"booking": newBookingResponse(booking),
	})
}

type payBookingInput struct {
	Amount *float64 `json:"amount"`
}

// PayBooking marks a booking paid, once.
func (bc *BookingController) PayBooking(c *gin.Context) {
	var input payBookingInput
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	booking, err := bc.service.MarkPaid(c.Param("id"), input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrAlreadyPaid):
			utils.RespondWithError(c, http.StatusBadRequest, "Already marked as paid")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		}
		return
	}

	amount := 0.0
	if booking.Amount != nil {
		amount = *booking.Amount
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Payment of $%.0f confirmed for %s", amount, booking.Name),
		"booking": booking,
	})
}

// DeleteBooking cancels a booking by removing it entirely, which frees its
// slot.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	booking, err := bc.service.Cancel(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled",
		"id":      booking.ID,
	})
}
