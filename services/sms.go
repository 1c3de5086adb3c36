// services/sms.go
package services

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioNotifier texts the customer when a booking carries a phone number.
// Purely additive next to email; unconfigured deployments just don't wire it.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, from string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (t *TwilioNotifier) Notify(ctx context.Context, n Notification) error {
	if n.Phone == "" || n.SMS == "" {
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	// Phones are stored as ten digits; the shop only serves US numbers.
	params.SetTo("+1" + n.Phone)
	params.SetFrom(t.from)
	params.SetBody(n.SMS)

	_, err := t.client.Api.CreateMessage(params)
	return err
}

var _ Notifier = (*TwilioNotifier)(nil)
