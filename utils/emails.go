// utils/emails.go
package utils

import (
	"fmt"
	"html"
	"strings"
	"time"

	"bladecrown-backend/models"
)

// Transactional email bodies for the shop's three notifications: customer
// confirmation, owner alert, payment receipt. Inline styles only, email
// clients strip everything else.

func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func amountLabel(amount *float64) string {
	if amount == nil {
		return "—"
	}
	return fmt.Sprintf("$%.0f", *amount)
}

func barberLabel(barber string) string {
	if barber == "" {
		return models.NoPreference
	}
	return barber
}

func detailRows(pairs [][2]string) string {
	var b strings.Builder
	for _, p := range pairs {
		fmt.Fprintf(&b,
			`<tr style="border-bottom:1px solid rgba(255,255,255,0.05);"><td style="padding:10px 0;color:#888;font-size:0.82rem;width:40%%;">%s</td><td style="padding:10px 0;color:#F5EDD6;font-size:0.88rem;font-weight:600;">%s</td></tr>`,
			html.EscapeString(p[0]), html.EscapeString(p[1]))
	}
	return b.String()
}

func emailShell(body string) string {
	return fmt.Sprintf(`<div style="font-family:'Segoe UI',sans-serif;background:#0A0A0A;color:#F5EDD6;padding:40px;max-width:600px;margin:0 auto;">
<div style="text-align:center;border-bottom:1px solid rgba(201,168,76,0.3);padding-bottom:30px;margin-bottom:30px;">
<h1 style="font-size:2rem;letter-spacing:0.15em;color:#C9A84C;margin:0;">BLADE <span style="color:#555">&amp;</span> CROWN</h1>
<p style="color:#888;font-size:0.8rem;letter-spacing:0.2em;margin-top:8px;">PREMIUM BARBERSHOP</p>
</div>
%s
<div style="background:#1A1A1A;border:1px solid rgba(201,168,76,0.1);padding:20px;text-align:center;margin-bottom:28px;">
<p style="color:#888;font-size:0.8rem;margin:0 0 8px;">42 Crown Street, New York, NY 10001</p>
<p style="color:#888;font-size:0.8rem;margin:0;">+1 (212) 555-BLADE</p>
</div>
<div style="text-align:center;margin-top:30px;padding-top:24px;border-top:1px solid rgba(201,168,76,0.1);">
<p style="color:#444;font-size:0.7rem;letter-spacing:0.15em;">© %d BLADE &amp; CROWN · EST. 1998</p>
</div>
</div>`, body, time.Now().Year())
}

// CustomerBookingHTML is the confirmation sent to the customer right after
// a successful submission.
func CustomerBookingHTML(b *models.Booking) string {
	rows := detailRows([][2]string{
		{"Booking ID", "#" + shortID(b.ID)},
		{"Name", b.Name},
		{"Service", b.Service},
		{"Barber", barberLabel(b.Barber)},
		{"Date", b.Date},
		{"Time", b.Time},
		{"Amount", amountLabel(b.Amount)},
	})

	notes := ""
	if b.Notes != "" {
		notes = fmt.Sprintf(`<div style="background:#160e0e;border:1px solid rgba(139,26,26,0.3);padding:16px 20px;margin-bottom:24px;"><strong style="color:#C9A84C;font-size:0.8rem;">Your Notes:</strong><p style="color:#aaa;margin:6px 0 0;font-size:0.84rem;">%s</p></div>`, html.EscapeString(b.Notes))
	}

	body := fmt.Sprintf(`<h2 style="color:#C9A84C;font-size:1.4rem;margin-bottom:8px;">You're Booked!</h2>
<p style="color:#aaa;margin-bottom:28px;">Here's a summary of your upcoming appointment:</p>
<div style="background:#1A1A1A;border:1px solid rgba(201,168,76,0.2);padding:24px;margin-bottom:24px;"><table style="width:100%%;border-collapse:collapse;">%s</table></div>
%s
<p style="color:#666;font-size:0.76rem;text-align:center;line-height:1.7;">Free cancellation up to 24 hours before your appointment.</p>`, rows, notes)

	return emailShell(body)
}

// OwnerBookingHTML is the internal alert sent to the shop inbox for every
// new booking.
func OwnerBookingHTML(b *models.Booking) string {
	phone := b.Phone
	if phone == "" {
		phone = "—"
	}
	notes := b.Notes
	if notes == "" {
		notes = "—"
	}
	rows := detailRows([][2]string{
		{"Client", b.Name},
		{"Email", b.Email},
		{"Phone", phone},
		{"Service", b.Service},
		{"Barber", barberLabel(b.Barber)},
		{"Date", b.Date},
		{"Time", b.Time},
		{"Amount", amountLabel(b.Amount)},
		{"Payment", b.PaymentStatus},
		{"Notes", notes},
		{"Booked At", b.CreatedAt.Format("Jan 2, 2006 3:04 PM")},
	})

	return fmt.Sprintf(`<div style="font-family:'Segoe UI',sans-serif;padding:30px;max-width:500px;">
<h2 style="color:#C9A84C;">New Booking — #%s</h2>
<table style="width:100%%;border-collapse:collapse;margin-top:16px;">%s</table>
</div>`, shortID(b.ID), rows)
}

// PaymentConfirmationHTML is the receipt sent when a booking is marked paid.
func PaymentConfirmationHTML(b *models.Booking) string {
	rows := detailRows([][2]string{
		{"Booking ID", "#" + shortID(b.ID)},
		{"Name", b.Name},
		{"Service", b.Service},
		{"Barber", barberLabel(b.Barber)},
		{"Date", b.Date},
		{"Time", b.Time},
		{"Amount Paid", amountLabel(b.Amount)},
		{"Status", "Payment Confirmed"},
	})

	body := fmt.Sprintf(`<div style="text-align:center;margin-bottom:28px;">
<h2 style="color:#2ecc71;font-size:1.5rem;margin-bottom:8px;">Payment Confirmed!</h2>
<p style="color:#aaa;font-size:0.88rem;">Your payment of <strong style="color:#C9A84C;">%s</strong> has been received by our team.</p>
</div>
<div style="background:#1A1A1A;border:1px solid rgba(46,204,113,0.2);padding:24px;margin-bottom:24px;"><table style="width:100%%;border-collapse:collapse;">%s</table></div>`,
		amountLabel(b.Amount), rows)

	return emailShell(body)
}

// ReminderHTML is the day-before appointment reminder.
func ReminderHTML(b *models.Booking) string {
	rows := detailRows([][2]string{
		{"Service", b.Service},
		{"Barber", barberLabel(b.Barber)},
		{"Date", b.Date},
		{"Time", b.Time},
	})

	body := fmt.Sprintf(`<h2 style="color:#C9A84C;font-size:1.4rem;margin-bottom:8px;">See You Tomorrow!</h2>
<p style="color:#aaa;margin-bottom:28px;">A quick reminder about your upcoming appointment:</p>
<div style="background:#1A1A1A;border:1px solid rgba(201,168,76,0.2);padding:24px;margin-bottom:24px;"><table style="width:100%%;border-collapse:collapse;">%s</table></div>
<p style="color:#666;font-size:0.76rem;text-align:center;line-height:1.7;">Need to reschedule? Free cancellation up to 24 hours before your appointment.</p>`, rows)

	return emailShell(body)
}
