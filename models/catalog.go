package models

import "strings"

// CatalogService is one entry of the fixed service menu.
type CatalogService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog is the fixed menu of offered services and their prices. It is
// configuration, not data: bookings reference it by name and fall back to
// these prices when no amount was captured.
var Catalog = []CatalogService{
	{Name: "Classic Cut", Price: 35},
	{Name: "Hot Shave", Price: 45},
	{Name: "Beard Sculpt", Price: 30},
	{Name: "Fade Master", Price: 40},
	{Name: "Royal Package", Price: 95},
	{Name: "Hair Design", Price: 55},
}

// Barbers is the fixed staff roster. NoPreference is a valid choice meaning
// "any barber".
var Barbers = []string{"Marco Vitale", "James Okafor", "Diego Reyes", "Kai Nakamura"}

const NoPreference = "No Preference"

// ServiceName strips the price suffix the booking form appends to its
// labels, e.g. "Classic Cut — $35" -> "Classic Cut".
func ServiceName(label string) string {
	if name, _, found := strings.Cut(label, " — "); found {
		return strings.TrimSpace(name)
	}
	return strings.TrimSpace(label)
}

// PriceFor resolves a service label against the catalog. The label may carry
// the form's price suffix. Returns false for services not on the menu.
func PriceFor(label string) (float64, bool) {
	name := ServiceName(label)
	for _, s := range Catalog {
		if strings.EqualFold(s.Name, name) {
			return s.Price, true
		}
	}
	return 0, false
}

// KnownBarber reports whether name is on the roster or is the explicit
// no-preference choice. An empty name is treated as no preference.
func KnownBarber(name string) bool {
	if name == "" || strings.EqualFold(name, NoPreference) {
		return true
	}
	for _, b := range Barbers {
		if strings.EqualFold(b, name) {
			return true
		}
	}
	return false
}
