package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
	"github.com/couchcryptid/gdacs-event-viewer/internal/geocode"
)

// populationPlaceholder is rendered when the feed reports no affected
// population. Zero means unmeasured, never "0 people".
const populationPlaceholder = "Unknown"

const dateLayout = "Mon, 02 Jan 2006"

// populationText formats the affected-population figure for display.
func populationText(n int) string {
	if n <= 0 {
		return populationPlaceholder
	}
	return fmt.Sprintf("%d people affected", n)
}

// renderSummary formats one card per event and stacks them vertically,
// constrained to the given width.
func renderSummary(events domain.EventList, theme Theme, width int) string {
	if len(events) == 0 {
		return theme.Muted.Render("No events to display.")
	}

	cards := make([]string, 0, len(events))
	for _, e := range events {
		cards = append(cards, renderEventCard(e, theme, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderEventCard builds the summary panel for a single event: title,
// category, alert indicator, countries, date, and population.
func renderEventCard(e domain.Event, theme Theme, width int) string {
	lines := []string{
		theme.Title.Render(e.Title),
		theme.CategoryStyle(e.Category).Render(e.Category.Label()) +
			theme.Muted.Render("  ·  ") +
			theme.AlertStyle(e.Alert).Render("● "+string(e.Alert)+" alert"),
		theme.Text.Render(strings.Join(e.Countries, ", ")),
		theme.Muted.Render(e.Date.Format(dateLayout)),
		theme.Text.Render(populationText(e.Population)),
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := theme.Border.Width(width - 2)
	return card.Render(inner)
}

// renderInfoPanel builds the attribute block shown beside the globe in the
// viewer: category, alert, date, coordinates, severity, population, and any
// other affected countries.
func renderInfoPanel(e domain.Event, theme Theme, width int) string {
	lat, lon := geocode.FormatCoordinates(e.Coords.Lat, e.Coords.Lon)

	lines := []string{
		theme.CategoryStyle(e.Category).Render(e.Category.Label()),
		theme.AlertStyle(e.Alert).Render(string(e.Alert) + " alert"),
		"",
		theme.Text.Render(e.Date.Format(dateLayout)),
		theme.Muted.Render(fmt.Sprintf("(%s, %s)", lat, lon)),
		"",
	}

	if e.Severity != "" {
		lines = append(lines,
			theme.Muted.Render("Severity"),
			theme.Text.Width(width-4).Render(e.Severity),
			"",
		)
	}

	lines = append(lines, theme.Text.Render(populationText(e.Population)))

	if others := e.OtherCountries(); len(others) > 0 {
		lines = append(lines,
			"",
			theme.Muted.Render("Other countries affected:"),
			theme.Text.Width(width-4).Render(strings.Join(others, ", ")),
		)
	}

	return theme.Border.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
