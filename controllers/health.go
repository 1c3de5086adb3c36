// controllers/health.go
package controllers

import (
	"net/http"
	"time"

	"bladecrown-backend/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	service *services.BookingService
}

func NewHealthController(service *services.BookingService) *HealthController {
	return &HealthController{service: service}
}

func (hc *HealthController) GetHealth(c *gin.Context) {
	total, revenue, err := hc.service.HealthStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"service":       "Blade & Crown API",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"totalBookings": total,
		"totalRevenue":  revenue,
	})
}
