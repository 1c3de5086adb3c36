package services

import (
	"testing"

	"bladecrown-backend/models"
	"bladecrown-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, st store.BookingStore, id, date, slot string) {
	t.Helper()
	require.NoError(t, st.Insert(&models.Booking{
		ID:            id,
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		Service:       "Classic Cut",
		Date:          date,
		Time:          slot,
		PaymentStatus: models.PaymentPending,
		Status:        models.StatusConfirmed,
	}))
}

func TestCountsForDate_EmptyDateHasAllZeroSlots(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAvailabilityService(st, SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})

	counts, err := svc.CountsForDate("2030-05-01")
	require.NoError(t, err)
	require.Len(t, counts, len(models.HalfHourSlots))
	for slot, count := range counts {
		assert.Zero(t, count, "slot %s", slot)
	}
}

func TestCountsForDate_ReflectsStoreState(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAvailabilityService(st, SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})

	seedBooking(t, st, "b1", "2030-05-01", "10:00 AM")
	seedBooking(t, st, "b2", "2030-05-01", "10:00 AM")
	seedBooking(t, st, "b3", "2030-05-01", "4:30 PM")
	seedBooking(t, st, "b4", "2030-05-02", "10:00 AM")

	counts, err := svc.CountsForDate("2030-05-01")
	require.NoError(t, err)
	assert.Equal(t, 2, counts["10:00 AM"])
	assert.Equal(t, 1, counts["4:30 PM"])
	assert.Equal(t, 0, counts["9:00 AM"])
}

func TestCountsForDate_InvalidDate(t *testing.T) {
	svc := NewAvailabilityService(store.NewMemoryStore(), SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})

	_, err := svc.CountsForDate("")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)

	_, err = svc.CountsForDate("not-a-date")
	require.ErrorAs(t, err, &vErr)
}

func TestDaySchedule_ClassifiesAgainstCapacity(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAvailabilityService(st, SlotPolicy{Slots: models.HalfHourSlots, Capacity: 3})

	for _, id := range []string{"b1", "b2", "b3"} {
		seedBooking(t, st, id, "2030-05-01", "10:00 AM")
	}
	seedBooking(t, st, "b4", "2030-05-01", "2:00 PM")

	schedule, err := svc.DaySchedule("2030-05-01")
	require.NoError(t, err)
	require.Len(t, schedule, len(models.HalfHourSlots))

	bySlot := make(map[string]SlotStatus, len(schedule))
	for _, s := range schedule {
		bySlot[s.Slot] = s
	}

	full := bySlot["10:00 AM"]
	assert.True(t, full.Full)
	assert.Equal(t, 3, full.Count)
	assert.Zero(t, full.Remaining)

	open := bySlot["2:00 PM"]
	assert.False(t, open.Full)
	assert.Equal(t, 1, open.Count)
	assert.Equal(t, 2, open.Remaining)

	untouched := bySlot["9:00 AM"]
	assert.False(t, untouched.Full)
	assert.Equal(t, 3, untouched.Remaining)
}

func TestDaySchedule_CapacityOnePolicy(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewAvailabilityService(st, SlotPolicy{Slots: models.HourlySlots, Capacity: 1})

	seedBooking(t, st, "b1", "2030-05-01", "10:00 AM")

	schedule, err := svc.DaySchedule("2030-05-01")
	require.NoError(t, err)
	require.Len(t, schedule, len(models.HourlySlots))

	for _, s := range schedule {
		if s.Slot == "10:00 AM" {
			assert.True(t, s.Full)
			assert.Zero(t, s.Remaining)
		} else {
			assert.False(t, s.Full)
			assert.Equal(t, 1, s.Remaining)
		}
	}
}
