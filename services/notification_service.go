// services/notification_service.go
package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Notification is one outbound message intent. Channels that don't apply
// leave their fields empty: a notifier skips what it can't deliver.
type Notification struct {
	To      string // recipient email address
	Phone   string // recipient phone, digits only, may be empty
	Subject string
	HTML    string
	SMS     string // short text body for the SMS channel, may be empty
}

// Notifier delivers one notification over one channel (email, SMS, console).
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Dispatcher is what request-path code sees: enqueue and move on. Delivery
// happens on a background worker and can never fail the caller.
type Dispatcher interface {
	Enqueue(n Notification)
}

const (
	notificationQueueSize = 64
	deliveryTimeout       = 10 * time.Second
)

// NotificationService fans queued notifications out to its notifiers from a
// single worker goroutine. Failures are logged and swallowed; a booking is
// done once persisted, whatever happens to its emails.
type NotificationService struct {
	queue     chan Notification
	notifiers []Notifier
	wg        sync.WaitGroup
	stopOnce  sync.Once
}

func NewNotificationService(notifiers ...Notifier) *NotificationService {
	return &NotificationService{
		queue:     make(chan Notification, notificationQueueSize),
		notifiers: notifiers,
	}
}

func (s *NotificationService) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for n := range s.queue {
			s.deliver(n)
		}
	}()
}

// Stop drains the queue and waits for in-flight deliveries.
func (s *NotificationService) Stop() {
	s.stopOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

func (s *NotificationService) Enqueue(n Notification) {
	select {
	case s.queue <- n:
	default:
		// Dropping beats blocking a request handler on a full queue.
		log.Printf("notification queue full, dropping %q for %s", n.Subject, n.To)
	}
}

func (s *NotificationService) deliver(n Notification) {
	for _, notifier := range s.notifiers {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		if err := notifier.Notify(ctx, n); err != nil {
			log.Printf("notification delivery failed for %s: %v", n.To, err)
		}
		cancel()
	}
}

var _ Dispatcher = (*NotificationService)(nil)
