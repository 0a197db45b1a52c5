package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all viewer settings, populated from environment variables.
// Every variable has a working default, so a plain invocation needs no
// configuration at all.
type Config struct {
	FeedURL     string
	FlagBaseURL string
	HTTPTimeout time.Duration

	// Nominatim reverse-geocoding fallback.
	NominatimBaseURL string
	NominatimEnabled bool

	FlagCacheSize int

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeout, err := parseHTTPTimeout()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parseFlagCacheSize()
	if err != nil {
		return nil, err
	}

	nominatimEnabled := true
	if v := os.Getenv("NOMINATIM_ENABLED"); v != "" {
		nominatimEnabled = v == "true"
	}

	cfg := &Config{
		FeedURL:          envOrDefault("GDACS_FEED_URL", "https://www.gdacs.org/xml/rss_7d.xml"),
		FlagBaseURL:      envOrDefault("FLAGCDN_BASE_URL", "https://flagcdn.com/w320"),
		HTTPTimeout:      timeout,
		NominatimBaseURL: envOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimEnabled: nominatimEnabled,
		FlagCacheSize:    cacheSize,
		// Warnings only by default: the log stream shares stderr with the
		// interactive UI.
		LogLevel:  envOrDefault("LOG_LEVEL", "warn"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}

	if cfg.FeedURL == "" {
		return nil, errors.New("GDACS_FEED_URL must not be empty")
	}
	if cfg.FlagBaseURL == "" {
		return nil, errors.New("FLAGCDN_BASE_URL must not be empty")
	}
	if cfg.NominatimEnabled && cfg.NominatimBaseURL == "" {
		return nil, errors.New("NOMINATIM_ENABLED is true but NOMINATIM_BASE_URL is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseHTTPTimeout() (time.Duration, error) {
	s := envOrDefault("HTTP_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid HTTP_TIMEOUT")
	}
	return d, nil
}

func parseFlagCacheSize() (int, error) {
	s := os.Getenv("FLAG_CACHE_SIZE")
	if s == "" {
		return 64, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid FLAG_CACHE_SIZE")
	}
	return n, nil
}
