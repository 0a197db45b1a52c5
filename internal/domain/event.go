package domain

import (
	"strings"
	"time"
)

// Category is a GDACS two-letter disaster type code.
type Category string

const (
	CategoryTropicalCyclone Category = "TC"
	CategoryEarthquake      Category = "EQ"
	CategoryFlood           Category = "FL"
	CategoryVolcano         Category = "VO"
	CategoryWildfire        Category = "WF"
	CategoryDrought         Category = "DR"
	CategoryUnspecified     Category = "NA"
)

// categoryLabels maps category codes to their human-readable names.
var categoryLabels = map[Category]string{
	CategoryTropicalCyclone: "Tropical Cyclone",
	CategoryEarthquake:      "Earthquake",
	CategoryFlood:           "Flood",
	CategoryVolcano:         "Volcano",
	CategoryWildfire:        "Wildfire",
	CategoryDrought:         "Drought",
	CategoryUnspecified:     "Unspecified",
}

// Categories returns all known category codes in display order.
func Categories() []Category {
	return []Category{
		CategoryTropicalCyclone,
		CategoryEarthquake,
		CategoryFlood,
		CategoryVolcano,
		CategoryWildfire,
		CategoryDrought,
		CategoryUnspecified,
	}
}

// ParseCategory normalizes a feed event-type code. Unrecognized values map to
// CategoryUnspecified rather than failing, matching the feed's loose schema.
func ParseCategory(code string) Category {
	c := Category(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := categoryLabels[c]; ok && c != CategoryUnspecified {
		return c
	}
	return CategoryUnspecified
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryUnspecified]
}

// AlertLevel is the GDACS three-level severity indicator.
type AlertLevel string

const (
	AlertGreen  AlertLevel = "green"
	AlertOrange AlertLevel = "orange"
	AlertRed    AlertLevel = "red"
)

// AlertLevels returns the three alert levels in ascending severity.
func AlertLevels() []AlertLevel {
	return []AlertLevel{AlertGreen, AlertOrange, AlertRed}
}

// ParseAlertLevel normalizes a feed alert-level string ("Green", "ORANGE", ...).
// Unrecognized values default to AlertGreen so the invariant that every event
// carries one of the three levels always holds.
func ParseAlertLevel(s string) AlertLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orange":
		return AlertOrange
	case "red":
		return AlertRed
	default:
		return AlertGreen
	}
}

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Event is one GDACS disaster record. Events are built once from feed data
// and never mutated afterwards.
type Event struct {
	ID          int
	Title       string
	Description string
	Category    Category
	Alert       AlertLevel
	Severity    string
	Population  int
	Date        time.Time
	Coords      Coordinates
	Countries   []string
	// PrimaryCountryCode is the lowercase ISO 3166-1 alpha-2 code of the
	// first affected country, or "un" for off-shore events.
	PrimaryCountryCode string
	Link               string
}

// PrimaryCountry returns the first affected country name, or "Off-shore"
// when the event has no countries at all.
func (e Event) PrimaryCountry() string {
	if len(e.Countries) == 0 {
		return OffShoreCountry
	}
	return e.Countries[0]
}

// OtherCountries returns every affected country after the primary one.
func (e Event) OtherCountries() []string {
	if len(e.Countries) < 2 {
		return nil
	}
	return e.Countries[1:]
}

// OffShoreCountry is the placeholder country name for events that affect no
// land territory. Such events carry the UN flag code.
const OffShoreCountry = "Off-shore"

// UNCode is the flagcdn code for the United Nations flag, used for off-shore
// events and as the fallback when no country code can be resolved.
const UNCode = "un"

// EventList is an ordered collection of events. Filtering always produces a
// new list and leaves the receiver untouched.
type EventList []Event

// Filter returns the events for which pred holds, preserving order.
func (el EventList) Filter(pred Predicate) EventList {
	out := make(EventList, 0, len(el))
	for _, e := range el {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Limit returns at most n events from the front of the list.
func (el EventList) Limit(n int) EventList {
	if n < 0 {
		n = 0
	}
	if n > len(el) {
		n = len(el)
	}
	return el[:n]
}
