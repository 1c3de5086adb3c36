// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

// Booking dates travel as YYYY-MM-DD strings, which order lexicographically,
// so same-day and next-day checks compare strings instead of instants. That
// keeps "today" anchored to the server's wall clock rather than UTC midnight.

func Today() string {
	return time.Now().Format(DateLayout)
}

func Tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(DateLayout)
}
