// Package nominatim reverse-geocodes coordinates to country codes using the
// OpenStreetMap Nominatim API.
package nominatim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Nominatim instance. Its usage policy requires
// an identifying User-Agent and at most one request per second; this client
// makes one call per unresolved feed entry, well under that limit.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

const userAgent = "gdacs-event-viewer/1.0 (+https://github.com/couchcryptid/gdacs-event-viewer)"

// ErrNoCountry is returned when the coordinates resolve to no country, e.g.
// open ocean.
var ErrNoCountry = errors.New("no country at coordinates")

// Client implements domain.CountryCodeResolver against Nominatim.
type Client struct {
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewClient creates a Nominatim client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// CountryCode reverse-geocodes a coordinate pair to an ISO 3166-1 alpha-2
// code. Zoom level 3 asks Nominatim for country-level granularity only.
func (c *Client) CountryCode(ctx context.Context, lat, lon float64) (string, error) {
	var response geocodeResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "geocodejson",
			"lat":    fmt.Sprintf("%f", lat),
			"lon":    fmt.Sprintf("%f", lon),
			"zoom":   "3",
		}).
		SetResult(&response).
		Get("/reverse")
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode(), resp.Body())
	}

	if len(response.Features) == 0 {
		return "", fmt.Errorf("%w: (%.4f, %.4f)", ErrNoCountry, lat, lon)
	}

	code := response.Features[0].Properties.Geocoding.CountryCode
	if code == "" {
		return "", fmt.Errorf("%w: (%.4f, %.4f)", ErrNoCountry, lat, lon)
	}

	c.logger.Debug("reverse geocoded", "lat", lat, "lon", lon, "code", code)
	return code, nil
}

// Nominatim geocodejson response types.

type geocodeResponse struct {
	Features []geocodeFeature `json:"features"`
}

type geocodeFeature struct {
	Properties struct {
		Geocoding struct {
			CountryCode string `json:"country_code"`
			Country     string `json:"country"`
		} `json:"geocoding"`
	} `json:"properties"`
}
