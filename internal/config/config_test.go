package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://www.gdacs.org/xml/rss_7d.xml", cfg.FeedURL)
	assert.Equal(t, "https://flagcdn.com/w320", cfg.FlagBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.True(t, cfg.NominatimEnabled)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimBaseURL)
	assert.Equal(t, 64, cfg.FlagCacheSize)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GDACS_FEED_URL", "http://localhost:9999/feed.xml")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("FLAG_CACHE_SIZE", "8")
	t.Setenv("NOMINATIM_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/feed.xml", cfg.FeedURL)
	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8, cfg.FlagCacheSize)
	assert.False(t, cfg.NominatimEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestLoadInvalidTimeoutNegative(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadInvalidCacheSize(t *testing.T) {
	t.Setenv("FLAG_CACHE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLAG_CACHE_SIZE")
}
