// Package domain models events from the Global Disaster Alert and
// Coordination System (GDACS).
//
// # Data Source
//
// Events originate from the GDACS public RSS feed at
// https://www.gdacs.org/xml/rss_7d.xml, which lists natural-disaster events
// from the last seven days. Each <item> element carries GDACS extension
// elements in the http://www.gdacs.org namespace alongside the standard RSS
// fields. The feed package fetches and parses this feed into an EventList.
//
// # GDACS Conventions
//
// Event categories (gdacs:eventtype):
//
//	TC  Tropical Cyclone
//	EQ  Earthquake
//	FL  Flood
//	VO  Volcano
//	WF  Wildfire
//	DR  Drought
//
// Unrecognized codes are mapped to CategoryUnspecified ("NA"), never rejected.
//
// Alert levels (gdacs:alertlevel):
//
//	Green   events unlikely to require international assistance
//	Orange  potential for international assistance
//	Red     international assistance expected
//
// The feed spells these capitalized ("Green"); parsing is case-insensitive.
//
// Population (gdacs:population):
//
//	The estimated affected population is carried in the element's "value"
//	attribute, not its text. Zero means unmeasured, and the renderer shows
//	"Unknown" rather than a literal 0.
//
// Dates (gdacs:todate):
//
//	RFC 1123 timestamps, e.g. "Fri, 26 Apr 2024 15:10:00 GMT". Only the
//	calendar date of the last update is kept; recency filtering compares
//	whole days.
//
// Countries (gdacs:country):
//
//	Comma-separated country names. Events with no country element are
//	off-shore; they get Countries=["Off-shore"] and the UN flag code "un".
//	Affected countries are stored alphabetically, and the primary country
//	code is always derived from the first entry.
package domain
