// controllers/revenue.go
package controllers

import (
	"net/http"

	"bladecrown-backend/services"
	"bladecrown-backend/utils"

	"github.com/gin-gonic/gin"
)

type RevenueController struct {
	service *services.BookingService
}

func NewRevenueController(service *services.BookingService) *RevenueController {
	return &RevenueController{service: service}
}

// GetRevenue returns paid totals, broken down by barber and by service.
func (rc *RevenueController) GetRevenue(c *gin.Context) {
	summary, err := rc.service.Revenue()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute revenue")
		return
	}
	c.JSON(http.StatusOK, summary)
}
