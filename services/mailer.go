// services/mailer.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoMailer sends transactional email through the Brevo HTTP API. No SMTP
// involved, plain HTTPS works everywhere the service is deployed.
type BrevoMailer struct {
	apiKey      string
	senderName  string
	senderEmail string
	client      *http.Client
}

func NewBrevoMailer(apiKey, senderName, senderEmail string) *BrevoMailer {
	return &BrevoMailer{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: deliveryTimeout},
	}
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoPayload struct {
	Sender      brevoRecipient   `json:"sender"`
	To          []brevoRecipient `json:"to"`
	Subject     string           `json:"subject"`
	HTMLContent string           `json:"htmlContent"`
}

func (m *BrevoMailer) Notify(ctx context.Context, n Notification) error {
	if n.To == "" || n.HTML == "" {
		return nil
	}
	if m.apiKey == "" {
		log.Printf("Brevo API key not configured — skipping email to %s (%s)", n.To, n.Subject)
		return nil
	}

	payload, err := json.Marshal(brevoPayload{
		Sender:      brevoRecipient{Name: m.senderName, Email: m.senderEmail},
		To:          []brevoRecipient{{Email: n.To}},
		Subject:     n.Subject,
		HTMLContent: n.HTML,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo responded %d: %s", resp.StatusCode, body)
	}

	log.Printf("email sent to %s (%s)", n.To, n.Subject)
	return nil
}

var _ Notifier = (*BrevoMailer)(nil)
