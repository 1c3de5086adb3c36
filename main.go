package main

import (
	"fmt"
	"log"

	"bladecrown-backend/config"
	"bladecrown-backend/controllers"
	"bladecrown-backend/models"
	"bladecrown-backend/routes"
	"bladecrown-backend/services"
	"bladecrown-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()

	bookingStore := buildStore(cfg)
	policy := slotPolicy(cfg)

	notifiers := []services.Notifier{
		services.NewBrevoMailer(cfg.BrevoAPIKey, cfg.SenderName, cfg.SenderEmail),
	}
	if cfg.TwilioConfigured() {
		notifiers = append(notifiers, services.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber))
	}
	notifications := services.NewNotificationService(notifiers...)
	notifications.Start()
	defer notifications.Stop()

	availability := services.NewAvailabilityService(bookingStore, policy)
	bookings := services.NewBookingService(
		bookingStore,
		availability,
		notifications,
		services.WithBusinessEmail(cfg.BusinessEmail),
	)

	reminders := services.NewReminderService(bookingStore, notifications)
	reminders.StartScheduler()
	defer reminders.Stop()

	r := routes.SetupRouter(cfg, routes.Controllers{
		Booking:      controllers.NewBookingController(bookings),
		Availability: controllers.NewAvailabilityController(availability),
		Revenue:      controllers.NewRevenueController(bookings),
		Health:       controllers.NewHealthController(bookings),
		Auth:         controllers.NewAuthController(cfg),
	})
	printRoutes(r)

	log.Printf("Blade & Crown API listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func buildStore(cfg config.App) store.BookingStore {
	if cfg.DBURL == "" {
		log.Println("DB_URL not set, using in-memory booking store")
		return store.NewMemoryStore()
	}

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return store.NewGormStore(db)
}

func slotPolicy(cfg config.App) services.SlotPolicy {
	slots := models.HalfHourSlots
	if cfg.Schedule == "hourly" {
		slots = models.HourlySlots
	}
	return services.SlotPolicy{Slots: slots, Capacity: cfg.SlotCapacity}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
