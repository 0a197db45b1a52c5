package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
)

// Appearance selects the viewer color scheme. It is fixed for the session at
// launch.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// GDACS alert colors, one per level.
const (
	colorAlertGreen  = lipgloss.Color("#008700")
	colorAlertOrange = lipgloss.Color("#d78700")
	colorAlertRed    = lipgloss.Color("#ff0000")
)

var categoryColors = map[domain.Category]lipgloss.Color{
	domain.CategoryTropicalCyclone: lipgloss.Color("#5f87ff"),
	domain.CategoryEarthquake:      lipgloss.Color("#af5f00"),
	domain.CategoryFlood:           lipgloss.Color("#00afd7"),
	domain.CategoryVolcano:         lipgloss.Color("#d75f00"),
	domain.CategoryWildfire:        lipgloss.Color("#ff5f00"),
	domain.CategoryDrought:         lipgloss.Color("#d7af5f"),
	domain.CategoryUnspecified:     lipgloss.Color("#8787af"),
}

// Theme bundles the styles derived from an appearance choice.
type Theme struct {
	Appearance Appearance

	Text   lipgloss.Style
	Muted  lipgloss.Style
	Title  lipgloss.Style
	Help   lipgloss.Style
	Error  lipgloss.Style
	Border lipgloss.Style

	Land      lipgloss.Style
	Ocean     lipgloss.Style
	Graticule lipgloss.Style
	Marker    lipgloss.Style
}

// NewTheme builds the style set for an appearance.
func NewTheme(appearance Appearance) Theme {
	fg := lipgloss.Color("#1c1c1c")
	muted := lipgloss.Color("#6c6c6c")
	land := lipgloss.Color("#005f00")
	ocean := lipgloss.Color("#87afd7")
	if appearance == AppearanceDark {
		fg = lipgloss.Color("#e4e4e4")
		muted = lipgloss.Color("#8a8a8a")
		land = lipgloss.Color("#87d787")
		ocean = lipgloss.Color("#005f87")
	}

	return Theme{
		Appearance: appearance,
		Text:       lipgloss.NewStyle().Foreground(fg),
		Muted:      lipgloss.NewStyle().Foreground(muted),
		Title:      lipgloss.NewStyle().Foreground(fg).Bold(true),
		Help:       lipgloss.NewStyle().Foreground(muted),
		Error:      lipgloss.NewStyle().Foreground(colorAlertRed).Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Land:      lipgloss.NewStyle().Foreground(land),
		Ocean:     lipgloss.NewStyle().Foreground(ocean),
		Graticule: lipgloss.NewStyle().Foreground(muted),
		Marker:    lipgloss.NewStyle().Foreground(colorAlertRed).Bold(true),
	}
}

// AlertStyle returns the style for an alert level indicator.
func (t Theme) AlertStyle(level domain.AlertLevel) lipgloss.Style {
	switch level {
	case domain.AlertOrange:
		return lipgloss.NewStyle().Foreground(colorAlertOrange).Bold(true)
	case domain.AlertRed:
		return lipgloss.NewStyle().Foreground(colorAlertRed).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorAlertGreen).Bold(true)
	}
}

// CategoryStyle returns the style for a category label.
func (t Theme) CategoryStyle(c domain.Category) lipgloss.Style {
	color, ok := categoryColors[c]
	if !ok {
		color = categoryColors[domain.CategoryUnspecified]
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
