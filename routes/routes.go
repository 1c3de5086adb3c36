package routes

import (
	"log"
	"net/http"

	"bladecrown-backend/config"
	"bladecrown-backend/controllers"
	"bladecrown-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Booking      *controllers.BookingController
	Availability *controllers.AvailabilityController
	Revenue      *controllers.RevenueController
	Health       *controllers.HealthController
	Auth         *controllers.AuthController
}

func SetupRouter(cfg config.App, ctrl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		// Stack trace stays in the server log, the client gets a generic body.
		log.Printf("panic recovered: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	{
		// Public surface: the booking form and its availability lookup.
		api.GET("/health", ctrl.Health.GetHealth)
		api.GET("/availability", ctrl.Availability.GetAvailability)
		api.POST("/bookings", ctrl.Booking.CreateBooking)

		// Dashboard surface, gated by the admin session.
		admin := api.Group("")
		admin.Use(utils.AuthMiddleware())
		{
			admin.GET("/bookings", ctrl.Booking.GetBookings)
			admin.PATCH("/bookings/:id/pay", ctrl.Booking.PayBooking)
			admin.DELETE("/bookings/:id", ctrl.Booking.DeleteBooking)
			admin.GET("/revenue", ctrl.Revenue.GetRevenue)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
