package models

// HalfHourSlots is the booking form's schedule: twenty half-hour slots from
// opening to the last chair of the day (no 12:30, lunch break).
var HalfHourSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM",
	"11:30 AM", "12:00 PM", "1:00 PM", "1:30 PM", "2:00 PM",
	"2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
	"5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM", "7:00 PM",
}

// HourlySlots is the coarse walk-in schedule used with capacity 1.
var HourlySlots = []string{
	"9:00 AM", "10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM",
	"2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM", "6:00 PM", "7:00 PM",
}

// ValidSlot reports whether label is one of the configured slot labels.
func ValidSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
