package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bladecrown-backend/models"
	"bladecrown-backend/services"
	"bladecrown-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopDispatcher struct{}

func (nopDispatcher) Enqueue(services.Notification) {}

func newTestController(t *testing.T) (*BookingController, *services.BookingService) {
	t.Helper()
	st := store.NewMemoryStore()
	availability := services.NewAvailabilityService(st, services.SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})
	svc := services.NewBookingService(st, availability, nopDispatcher{})
	return NewBookingController(svc), svc
}

func jsonContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func createInput() services.CreateBookingInput {
	return services.CreateBookingInput{
		Name:    "John Doe",
		Email:   "john@x.com",
		Service: "Classic Cut — $35",
		Date:    time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		Time:    "10:00 AM",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bc, _ := newTestController(t)

	c, w := jsonContext(t, http.MethodPost, "/api/bookings", createInput())
	bc.CreateBooking(c)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Booking bookingResponse `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking confirmed successfully!", resp.Message)
	assert.NotEmpty(t, resp.Booking.ID)
	assert.Equal(t, "John Doe", resp.Booking.Name)
	assert.Equal(t, models.PaymentPending, resp.Booking.PaymentStatus)
	assert.Equal(t, models.StatusConfirmed, resp.Booking.Status)
}

func TestCreateBooking_ValidationError(t *testing.T) {
	bc, _ := newTestController(t)

	input := createInput()
	input.Email = "nope"
	c, w := jsonContext(t, http.MethodPost, "/api/bookings", input)
	bc.CreateBooking(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Valid email is required", resp.Message)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)
}

func TestCreateBooking_SlotFull(t *testing.T) {
	bc, svc := newTestController(t)

	for i := 0; i < 3; i++ {
		input := createInput()
		input.Email = fmt.Sprintf("customer%d@example.com", i)
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	c, w := jsonContext(t, http.MethodPost, "/api/bookings", createInput())
	bc.CreateBooking(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "fully booked")
}

func TestGetBookings(t *testing.T) {
	bc, svc := newTestController(t)

	_, err := svc.Create(createInput())
	require.NoError(t, err)

	c, w := jsonContext(t, http.MethodGet, "/api/bookings", nil)
	bc.GetBookings(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count    int              `json:"count"`
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "john@x.com", resp.Bookings[0].Email)
}

func TestPayBooking(t *testing.T) {
	bc, svc := newTestController(t)

	booking, err := svc.Create(createInput())
	require.NoError(t, err)

	c, w := jsonContext(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/pay", gin.H{"amount": 45})
	c.Params = gin.Params{{Key: "id", Value: booking.ID}}
	bc.PayBooking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "$45")
	assert.Equal(t, models.PaymentPaid, resp.Booking.PaymentStatus)

	// Second pay call conflicts.
	c, w = jsonContext(t, http.MethodPatch, "/api/bookings/"+booking.ID+"/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: booking.ID}}
	bc.PayBooking(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayBooking_NotFound(t *testing.T) {
	bc, _ := newTestController(t)

	c, w := jsonContext(t, http.MethodPatch, "/api/bookings/missing/pay", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	bc.PayBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBooking(t *testing.T) {
	bc, svc := newTestController(t)

	booking, err := svc.Create(createInput())
	require.NoError(t, err)

	c, w := jsonContext(t, http.MethodDelete, "/api/bookings/"+booking.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: booking.ID}}
	bc.DeleteBooking(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, booking.ID, resp.ID)

	remaining, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, remaining)

	c, w = jsonContext(t, http.MethodDelete, "/api/bookings/"+booking.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: booking.ID}}
	bc.DeleteBooking(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
