package controllers

import (
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

func newAvailabilityFixture(t *testing.T) (*AvailabilityController, *services.BookingService) {
	t.Helper()
	st := store.NewMemoryStore()
	availability := services.NewAvailabilityService(st, services.SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})
	svc := services.NewBookingService(st, availability, nopDispatcher{})
	return NewAvailabilityController(availability), svc
}

func queryContext(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestGetAvailability_RequiresDate(t *testing.T) {
	ac, _ := newAvailabilityFixture(t)

	c, w := queryContext(t, "/api/availability")
	ac.GetAvailability(c)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Date is required", resp.Message)
}

func TestGetAvailability_EmptyDateIsAllOpen(t *testing.T) {
	ac, _ := newAvailabilityFixture(t)

	c, w := queryContext(t, "/api/availability?date=2030-06-01")
	ac.GetAvailability(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Date       string         `json:"date"`
		Capacity   int            `json:"capacity"`
		SlotCounts map[string]int `json:"slotCounts"`
		Available  []string       `json:"available"`
		Booked     []string       `json:"booked"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2030-06-01", resp.Date)
	assert.Equal(t, 3, resp.Capacity)
	assert.Len(t, resp.SlotCounts, len(models.HalfHourSlots))
	assert.Len(t, resp.Available, len(models.HalfHourSlots))
	assert.Empty(t, resp.Booked)
}

func TestGetAvailability_FullSlotMovesToBooked(t *testing.T) {
	ac, svc := newAvailabilityFixture(t)
	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	for i := 0; i < 3; i++ {
		input := createInput()
		input.Date = date
		input.Email = fmt.Sprintf("customer%d@example.com", i)
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	c, w := queryContext(t, "/api/availability?date="+date)
	ac.GetAvailability(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SlotCounts map[string]int `json:"slotCounts"`
		Available  []string       `json:"available"`
		Booked     []string       `json:"booked"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.SlotCounts["10:00 AM"])
	assert.Equal(t, []string{"10:00 AM"}, resp.Booked)
	assert.NotContains(t, resp.Available, "10:00 AM")
	assert.Len(t, resp.Available, len(models.HalfHourSlots)-1)
}
