// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks the address syntactically. Deliverability is not checked
// here; the confirmation email will tell.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// NormalizeEmail trims and lowercases an address before storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DigitsOnly strips everything but digits from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone expects exactly ten digits after stripping formatting
// characters, the strict booking-form rule.
func ValidPhone(phone string) bool {
	return len(DigitsOnly(phone)) == 10
}
