// services/reminder_service.go
package services

import (
	"fmt"
	"log"

	"bladecrown-backend/models"
	"bladecrown-backend/store"
	"bladecrown-backend/utils"

	"github.com/robfig/cron/v3"
)

// ReminderService emails every customer with an appointment the next day.
// The shop promises free cancellation up to 24 hours out, so the reminder
// lands right at that deadline.
type ReminderService struct {
	store      store.BookingStore
	dispatcher Dispatcher
	cron       *cron.Cron
}

func NewReminderService(st store.BookingStore, dispatcher Dispatcher) *ReminderService {
	return &ReminderService{
		store:      st,
		dispatcher: dispatcher,
		cron:       cron.New(),
	}
}

// StartScheduler runs the reminder sweep every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	s.cron.AddFunc("0 9 * * *", s.SendDailyReminders)
	s.cron.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) Stop() {
	s.cron.Stop()
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	bookings, err := s.store.All()
	if err != nil {
		log.Printf("Failed to fetch bookings for reminders: %v", err)
		return
	}

	tomorrow := utils.Tomorrow()
	sent := 0
	for i := range bookings {
		b := &bookings[i]
		if b.Date != tomorrow {
			continue
		}

		s.dispatcher.Enqueue(Notification{
			To:      b.Email,
			Phone:   b.Phone,
			Subject: "Appointment Tomorrow — Blade & Crown",
			HTML:    utils.ReminderHTML(b),
			SMS:     fmt.Sprintf("Blade & Crown: reminder for your %s appointment tomorrow at %s.", models.ServiceName(b.Service), b.Time),
		})
		sent++
	}

	log.Printf("Daily reminder processing completed, %d reminders queued", sent)
}
