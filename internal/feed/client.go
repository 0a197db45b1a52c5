// Package feed fetches and parses the GDACS seven-day RSS feed.
package feed

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
	"github.com/couchcryptid/gdacs-event-viewer/internal/geocode"
)

// DefaultURL is the public GDACS RSS endpoint listing events from the last
// seven days.
const DefaultURL = "https://www.gdacs.org/xml/rss_7d.xml"

var (
	// ErrUnavailable marks network-level failures: the request could not
	// complete or the server returned a non-200 status.
	ErrUnavailable = errors.New("feed unavailable")

	// ErrMalformed marks responses whose XML structure cannot be parsed.
	ErrMalformed = errors.New("malformed feed")
)

// Client fetches the GDACS feed over HTTP and parses it into events.
type Client struct {
	url        string
	httpClient *http.Client
	resolver   domain.CountryCodeResolver
	logger     *slog.Logger
}

// NewClient creates a feed client. resolver may be nil to disable the
// reverse-geocoding fallback for entries without a usable ISO code.
func NewClient(url string, timeout time.Duration, resolver domain.CountryCodeResolver, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		resolver: resolver,
		logger:   logger,
	}
}

// Fetch issues a single GET against the feed URL and parses every item into
// an event, newest first. There is no retry; errors surface immediately with
// either the ErrUnavailable or ErrMalformed kind.
func (c *Client) Fetch(ctx context.Context) (domain.EventList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, body)
	}

	var doc rssDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	events := make(domain.EventList, 0, len(doc.Channel.Items))
	for _, it := range doc.Channel.Items {
		events = append(events, c.parseItem(ctx, it))
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	c.logger.Info("feed fetched", "events", len(events))
	return events, nil
}

// parseItem converts one feed item into an event. Malformed optional fields
// fall back to zero values; the category and alert invariants are enforced by
// the domain parsers.
func (c *Client) parseItem(ctx context.Context, it rssItem) domain.Event {
	id, err := strconv.Atoi(strings.TrimSpace(it.EventID))
	if err != nil {
		c.logger.Warn("unparseable event id", "raw", it.EventID)
	}

	countries := parseCountries(it.Country)
	code := c.resolveCode(ctx, it, countries)

	return domain.Event{
		ID:                 id,
		Title:              strings.TrimSpace(it.Title),
		Description:        strings.TrimSpace(it.Description),
		Category:           domain.ParseCategory(it.EventType),
		Alert:              domain.ParseAlertLevel(it.AlertLevel),
		Severity:           strings.TrimSpace(it.Severity),
		Population:         parsePopulation(it.Population.Value),
		Date:               parseDate(it.ToDate),
		Coords:             parseCoords(it.Point),
		Countries:          countries,
		PrimaryCountryCode: code,
		Link:               strings.TrimSpace(it.Link),
	}
}

// resolveCode derives the primary country's alpha-2 code from the
// alphabetically-first country name, so the code always matches Countries[0].
// Names the embedded table does not know fall back to the feed's iso3 element
// (which names the event's origin country, not necessarily the first
// alphabetically), then to reverse geocoding when a resolver is configured.
// Off-shore events and unresolvable entries get the UN code.
func (c *Client) resolveCode(ctx context.Context, it rssItem, countries []string) string {
	if len(countries) == 0 || countries[0] == domain.OffShoreCountry {
		return domain.UNCode
	}

	if alpha2, err := geocode.AlphaTwoForName(countries[0]); err == nil {
		return strings.ToLower(alpha2)
	}

	if alpha2, err := geocode.AlphaTwo(it.ISO3); err == nil {
		return strings.ToLower(alpha2)
	}

	if c.resolver != nil {
		coords := parseCoords(it.Point)
		code, err := c.resolver.CountryCode(ctx, coords.Lat, coords.Lon)
		if err == nil && code != "" {
			return strings.ToLower(code)
		}
		c.logger.Warn("reverse geocode fallback failed",
			"event_id", it.EventID,
			"iso3", it.ISO3,
			"error", err,
		)
	}

	return domain.UNCode
}

// parseCountries splits the comma-separated country element and sorts the
// names alphabetically. An absent element means the event is off-shore.
func parseCountries(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{domain.OffShoreCountry}
	}

	parts := strings.Split(raw, ",")
	countries := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			countries = append(countries, name)
		}
	}
	if len(countries) == 0 {
		return []string{domain.OffShoreCountry}
	}
	sort.Strings(countries)
	return countries
}

func parsePopulation(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseDate reads the gdacs:todate timestamp and keeps the calendar date.
// GDACS emits RFC 1123 with a named zone; numeric-zone variants appear
// occasionally, so both layouts are tried.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC1123, time.RFC1123Z} {
		if t, err := time.Parse(layout, raw); err == nil {
			y, m, d := t.UTC().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

func parseCoords(p rssPoint) domain.Coordinates {
	lat, _ := strconv.ParseFloat(strings.TrimSpace(p.Lat), 64)
	lon, _ := strconv.ParseFloat(strings.TrimSpace(p.Long), 64)
	return domain.Coordinates{Lat: lat, Lon: lon}
}
