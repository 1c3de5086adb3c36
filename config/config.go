package config

import (
	"os"
	"strconv"
)

// DefaultSlotCapacity is how many chairs serve one slot. Override with
// SLOT_CAPACITY; the walk-in schedule runs the same accounting with 1.
const DefaultSlotCapacity = 3

// App collects all environment-driven settings. godotenv loads .env in main
// before this runs.
type App struct {
	Port      string
	ClientURL string
	DBURL     string // empty means the in-memory store

	SlotCapacity int
	Schedule     string // "half-hour" (default) or "hourly"

	BrevoAPIKey   string
	SenderName    string
	SenderEmail   string
	BusinessEmail string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	AdminEmail        string
	AdminPasswordHash string // bcrypt
}

func Load() App {
	cfg := App{
		Port:              getenv("PORT", "5000"),
		ClientURL:         getenv("CLIENT_URL", "http://localhost:3000"),
		DBURL:             os.Getenv("DB_URL"),
		SlotCapacity:      DefaultSlotCapacity,
		Schedule:          getenv("SLOT_SCHEDULE", "half-hour"),
		BrevoAPIKey:       os.Getenv("BREVO_API_KEY"),
		SenderName:        getenv("SENDER_NAME", "Blade & Crown"),
		SenderEmail:       os.Getenv("SENDER_EMAIL"),
		BusinessEmail:     os.Getenv("BUSINESS_EMAIL"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:  os.Getenv("TWILIO_FROM_NUMBER"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if env := os.Getenv("SLOT_CAPACITY"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			cfg.SlotCapacity = n
		}
	}
	if cfg.Schedule == "hourly" {
		// The hourly walk-in schedule means one booking per slot, full stop.
		if os.Getenv("SLOT_CAPACITY") == "" {
			cfg.SlotCapacity = 1
		}
	}

	return cfg
}

func (a App) TwilioConfigured() bool {
	return a.TwilioAccountSID != "" && a.TwilioAuthToken != "" && a.TwilioFromNumber != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
