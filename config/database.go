package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the optional postgres backing store. Only called when
// DB_URL is set; the service runs on the in-memory store otherwise.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
