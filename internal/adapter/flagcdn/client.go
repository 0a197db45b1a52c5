// Package flagcdn fetches country flag images from the flagcdn.com API.
package flagcdn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	// Flags are served as PNG; register the decoder for image.Decode.
	_ "image/png"
)

// DefaultBaseURL serves flags at a fixed raster width per country code, e.g.
// https://flagcdn.com/w320/ph.png.
const DefaultBaseURL = "https://flagcdn.com/w320"

// ErrNotFound is returned when the CDN has no flag for the requested code.
var ErrNotFound = errors.New("flag not found")

// Client implements domain.FlagSource against the flagcdn HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a flagcdn client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Flag fetches and decodes the flag for an alpha-2 country code (also "un"
// and "eu", which the CDN carries alongside ISO codes).
func (c *Client) Flag(ctx context.Context, code string) (image.Image, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: empty code", ErrNotFound)
	}

	url := fmt.Sprintf("%s/%s.png", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flag request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("flagcdn API error: status %d: %s", resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read flag body: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode flag image: %w", err)
	}

	c.logger.Debug("flag fetched", "code", code, "bytes", len(data))
	return img, nil
}
