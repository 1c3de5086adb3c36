// controllers/availability.go
package controllers

import (
	"errors"
	"net/http"

	"bladecrown-backend/services"
	"bladecrown-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{availability: availability}
}

// GetAvailability returns per-slot occupancy for a date. The response always
// carries the full slotCounts map; available and booked are derived from it
// so both form variants read the same shape.
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Date is required"})
		return
	}

	schedule, err := ac.availability.DaySchedule(date)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute availability")
		return
	}

	slotCounts := make(map[string]int, len(schedule))
	available := make([]string, 0, len(schedule))
	booked := make([]string, 0)
	for _, s := range schedule {
		slotCounts[s.Slot] = s.Count
		if s.Full {
			booked = append(booked, s.Slot)
		} else {
			available = append(available, s.Slot)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":       date,
		"capacity":   ac.availability.Policy().Capacity,
		"slotCounts": slotCounts,
		"available":  available,
		"booked":     booked,
	})
}
