package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/couchcryptid/gdacs-event-viewer/internal/adapter/flagcdn"
	"github.com/couchcryptid/gdacs-event-viewer/internal/adapter/nominatim"
	"github.com/couchcryptid/gdacs-event-viewer/internal/config"
	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
	"github.com/couchcryptid/gdacs-event-viewer/internal/feed"
	"github.com/couchcryptid/gdacs-event-viewer/internal/observability"
	"github.com/couchcryptid/gdacs-event-viewer/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	// Reverse geocoding is a fallback for feed items whose country code is
	// missing or unrecognized (feature-flagged via NOMINATIM_ENABLED).
	var resolver domain.CountryCodeResolver
	if cfg.NominatimEnabled {
		resolver = nominatim.NewClient(cfg.NominatimBaseURL, cfg.HTTPTimeout, logger)
	} else {
		logger.Info("nominatim fallback disabled")
	}

	source := feed.NewClient(cfg.FeedURL, cfg.HTTPTimeout, resolver, logger)

	var flags domain.FlagSource = flagcdn.NewClient(cfg.FlagBaseURL, cfg.HTTPTimeout, logger)
	flags = flagcdn.NewCachedSource(flags, cfg.FlagCacheSize)

	app := tui.NewApp(source, flags, logger)

	final, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
	if err != nil {
		logger.Error("ui error", "error", err)
		os.Exit(1)
	}

	done, ok := final.(*tui.App)
	if !ok {
		os.Exit(0)
	}

	if err := done.Err(); err != nil {
		if errors.Is(err, feed.ErrUnavailable) {
			fmt.Fprintln(os.Stderr, "GDACS feed is unreachable; check your connection and try again.")
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}

	if msg := done.Farewell(); msg != "" {
		fmt.Println(msg)
	}
}
