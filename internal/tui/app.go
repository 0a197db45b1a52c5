package tui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/gdacs-event-viewer/internal/domain"
)

// EventSource produces the event list shown by the application.
type EventSource interface {
	Fetch(ctx context.Context) (domain.EventList, error)
}

// view identifies which screen the application is on.
type view int

const (
	viewLoading view = iota
	viewAppearanceMenu
	viewFilterMenu
	viewDaysInput
	viewCategoryMenu
	viewAlertMenu
	viewCountInput
	viewSummary
	viewViewer
)

// filterKind names the filters the user can stack before viewing results.
// Each kind may be applied at most once per session.
type filterKind int

const (
	filterDays filterKind = iota
	filterCategory
	filterAlert
)

var filterNames = map[filterKind]string{
	filterDays:     "Days since event",
	filterCategory: "Event category",
	filterAlert:    "Alert level",
}

const (
	fetchTimeout = 30 * time.Second
	flagTimeout  = 10 * time.Second
	flagWidth    = 24
	globeRows    = 20
)

type eventsLoadedMsg struct{ events domain.EventList }

type errorMsg struct{ err error }

type flagLoadedMsg struct {
	code string
	img  image.Image
}

type flagFailedMsg struct {
	code string
	err  error
}

// menuChoice is a selectable entry in one of the option menus.
type menuChoice struct {
	label string
	value string
}

// App is the bubbletea model driving the whole session: fetch, filter
// selection, summary, and the interactive map viewer.
type App struct {
	source EventSource
	flags  domain.FlagSource
	logger *slog.Logger

	view       view
	theme      Theme
	appearance Appearance

	spinner spinner.Model
	input   textinput.Model

	choices []menuChoice
	cursor  int

	events      domain.EventList
	shown       domain.EventList
	usedFilters map[filterKind]bool

	idx       int
	graticule bool
	flagImg   image.Image
	flagErr   bool

	width    int
	height   int
	inputErr string

	farewell string
	err      error
}

// NewApp builds the application model. The flag source may be a cached
// decorator; the app only ever asks for the current event's flag.
func NewApp(source EventSource, flags domain.FlagSource, logger *slog.Logger) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 12

	return &App{
		source:      source,
		flags:       flags,
		logger:      logger,
		view:        viewLoading,
		appearance:  AppearanceDark,
		theme:       NewTheme(AppearanceDark),
		spinner:     sp,
		input:       ti,
		usedFilters: map[filterKind]bool{},
	}
}

// Err reports the fatal error, if any, that ended the session.
func (a *App) Err() error { return a.err }

// Farewell reports the closing message to print after the program exits.
func (a *App) Farewell() string { return a.farewell }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.fetchEvents())
}

func (a *App) fetchEvents() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		events, err := a.source.Fetch(ctx)
		if err != nil {
			return errorMsg{err: err}
		}
		return eventsLoadedMsg{events: events}
	}
}

func (a *App) fetchFlag(code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
		defer cancel()

		img, err := a.flags.Flag(ctx, code)
		if err != nil {
			return flagFailedMsg{code: code, err: err}
		}
		return flagLoadedMsg{code: code, img: img}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case errorMsg:
		a.err = msg.err
		return a, tea.Quit

	case eventsLoadedMsg:
		a.events = msg.events
		a.shown = msg.events
		if len(a.events) == 0 {
			a.farewell = "No events to display."
			return a, tea.Quit
		}
		a.enterAppearanceMenu()
		return a, nil

	case flagLoadedMsg:
		if a.view == viewViewer && msg.code == a.current().PrimaryCountryCode {
			a.flagImg = msg.img
			a.flagErr = false
		}
		return a, nil

	case flagFailedMsg:
		if a.view == viewViewer && msg.code == a.current().PrimaryCountryCode {
			a.logger.Warn("flag unavailable", "code", msg.code, "error", msg.err)
			a.flagImg = nil
			a.flagErr = true
		}
		return a, nil

	case spinner.TickMsg:
		if a.view != viewLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		a.farewell = "Goodbye."
		return a, tea.Quit
	}

	switch a.view {
	case viewLoading:
		if msg.String() == "q" {
			a.farewell = "Goodbye."
			return a, tea.Quit
		}
		return a, nil

	case viewAppearanceMenu, viewFilterMenu, viewCategoryMenu, viewAlertMenu:
		return a.handleMenuKey(msg)

	case viewDaysInput, viewCountInput:
		return a.handleInputKey(msg)

	case viewSummary:
		return a.handleSummaryKey(msg)

	case viewViewer:
		return a.handleViewerKey(msg)
	}

	return a, nil
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.choices)-1 {
			a.cursor++
		}
	case "enter":
		return a.selectChoice(a.choices[a.cursor])
	case "q":
		a.farewell = "Goodbye."
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) selectChoice(choice menuChoice) (tea.Model, tea.Cmd) {
	switch a.view {
	case viewAppearanceMenu:
		a.appearance = Appearance(choice.value)
		a.theme = NewTheme(a.appearance)
		a.enterFilterMenu()

	case viewFilterMenu:
		switch choice.value {
		case "days":
			a.inputErr = ""
			a.input.Reset()
			a.input.Placeholder = "7"
			a.input.Focus()
			a.view = viewDaysInput
			return a, textinput.Blink
		case "category":
			a.enterCategoryMenu()
		case "alert":
			a.enterAlertMenu()
		case "none":
			a.enterCountInput()
			return a, textinput.Blink
		}

	case viewCategoryMenu:
		return a.applyFilter(filterCategory, domain.InCategory(domain.Category(choice.value)))

	case viewAlertMenu:
		return a.applyFilter(filterAlert, domain.WithAlert(domain.AlertLevel(choice.value)))
	}

	return a, nil
}

// applyFilter narrows the shown list, marks the filter kind as spent, and
// decides where to go next. An empty result ends the session immediately,
// without a summary or viewer.
func (a *App) applyFilter(kind filterKind, pred domain.Predicate) (tea.Model, tea.Cmd) {
	a.usedFilters[kind] = true
	a.shown = a.shown.Filter(pred)
	if len(a.shown) == 0 {
		a.farewell = "No events to display."
		return a, tea.Quit
	}
	a.afterFilter()
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a.submitInput()
	case "esc":
		if a.view == viewDaysInput {
			a.enterFilterMenu()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) submitInput() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(a.input.Value())
	n, err := strconv.Atoi(raw)
	if err != nil {
		a.inputErr = fmt.Sprintf("%q is not a whole number", raw)
		return a, nil
	}

	switch a.view {
	case viewDaysInput:
		if n < 0 {
			a.inputErr = "days must not be negative"
			return a, nil
		}
		return a.applyFilter(filterDays, domain.WithinDays(n))

	case viewCountInput:
		if n < 1 {
			a.farewell = "No events to display."
			return a, tea.Quit
		}
		a.shown = a.shown.Limit(n)
		a.view = viewSummary
		return a, nil
	}

	return a, nil
}

// afterFilter routes back to the filter menu while unused filter kinds
// remain; once all three are spent only the count prompt is left.
func (a *App) afterFilter() {
	if len(a.usedFilters) >= 3 {
		a.enterCountInput()
		return
	}
	a.enterFilterMenu()
}

func (a *App) handleSummaryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "v", "enter":
		return a.enterViewer()
	case "q":
		a.farewell = "Goodbye."
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		return a.moveViewer(-1)
	case "right", "l":
		return a.moveViewer(1)
	case "b":
		a.graticule = !a.graticule
		return a, nil
	case "w":
		if link := a.current().Link; link != "" {
			if err := openBrowser(link); err != nil {
				a.logger.Warn("open report", "link", link, "error", err)
			}
		}
		return a, nil
	case "q", "esc":
		a.view = viewSummary
		return a, nil
	}
	return a, nil
}

func (a *App) enterViewer() (tea.Model, tea.Cmd) {
	a.view = viewViewer
	a.idx = 0
	return a, a.loadCurrentFlag()
}

// moveViewer steps through the shown list, wrapping at both ends.
func (a *App) moveViewer(delta int) (tea.Model, tea.Cmd) {
	n := len(a.shown)
	a.idx = ((a.idx+delta)%n + n) % n
	return a, a.loadCurrentFlag()
}

func (a *App) loadCurrentFlag() tea.Cmd {
	a.flagImg = nil
	a.flagErr = false
	return a.fetchFlag(a.current().PrimaryCountryCode)
}

func (a *App) current() domain.Event {
	return a.shown[a.idx]
}

func (a *App) enterAppearanceMenu() {
	a.view = viewAppearanceMenu
	a.cursor = 0
	a.choices = []menuChoice{
		{label: "Dark terminal", value: string(AppearanceDark)},
		{label: "Light terminal", value: string(AppearanceLight)},
	}
}

func (a *App) enterFilterMenu() {
	a.view = viewFilterMenu
	a.cursor = 0
	a.choices = nil
	for _, kind := range []filterKind{filterDays, filterCategory, filterAlert} {
		if a.usedFilters[kind] {
			continue
		}
		value := map[filterKind]string{
			filterDays:     "days",
			filterCategory: "category",
			filterAlert:    "alert",
		}[kind]
		a.choices = append(a.choices, menuChoice{label: filterNames[kind], value: value})
	}
	a.choices = append(a.choices, menuChoice{label: "No more filters", value: "none"})
}

func (a *App) enterCategoryMenu() {
	a.view = viewCategoryMenu
	a.cursor = 0
	a.choices = nil
	for _, c := range domain.Categories() {
		a.choices = append(a.choices, menuChoice{label: c.Label(), value: string(c)})
	}
}

func (a *App) enterAlertMenu() {
	a.view = viewAlertMenu
	a.cursor = 0
	a.choices = nil
	for _, l := range domain.AlertLevels() {
		label := strings.ToUpper(string(l)[:1]) + string(l)[1:]
		a.choices = append(a.choices, menuChoice{label: label, value: string(l)})
	}
}

func (a *App) enterCountInput() {
	a.view = viewCountInput
	a.inputErr = ""
	a.input.Reset()
	a.input.Placeholder = strconv.Itoa(len(a.shown))
	a.input.Focus()
}

func (a *App) View() string {
	switch a.view {
	case viewLoading:
		return fmt.Sprintf("\n  %s Fetching GDACS events...\n\n  %s\n",
			a.spinner.View(), a.theme.Help.Render("q to quit"))

	case viewAppearanceMenu:
		return a.renderMenu("Terminal appearance", "Pick the palette that matches your terminal background.")

	case viewFilterMenu:
		subtitle := fmt.Sprintf("%d events available. Each filter can be applied once.", len(a.shown))
		return a.renderMenu("Filter events", subtitle)

	case viewCategoryMenu:
		return a.renderMenu("Event category", "Keep only events of one kind.")

	case viewAlertMenu:
		return a.renderMenu("Alert level", "Keep only events at one alert level.")

	case viewDaysInput:
		return a.renderInput("Days since event", "Keep events from the last N days (0 keeps only today's).")

	case viewCountInput:
		subtitle := fmt.Sprintf("%d events match. How many should be shown?", len(a.shown))
		return a.renderInput("Number of events", subtitle)

	case viewSummary:
		return a.renderSummaryView()

	case viewViewer:
		return a.renderViewerView()
	}
	return ""
}

func (a *App) renderMenu(title, subtitle string) string {
	var b strings.Builder
	b.WriteString("\n  " + a.theme.Title.Render(title) + "\n")
	b.WriteString("  " + a.theme.Muted.Render(subtitle) + "\n\n")
	for i, c := range a.choices {
		marker := "  "
		label := a.theme.Text.Render(c.label)
		if i == a.cursor {
			marker = a.theme.Title.Render("> ")
			label = a.theme.Title.Render(c.label)
		}
		b.WriteString("  " + marker + label + "\n")
	}
	b.WriteString("\n  " + a.theme.Help.Render("↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

func (a *App) renderInput(title, subtitle string) string {
	var b strings.Builder
	b.WriteString("\n  " + a.theme.Title.Render(title) + "\n")
	b.WriteString("  " + a.theme.Muted.Render(subtitle) + "\n\n")
	b.WriteString("  " + a.input.View() + "\n")
	if a.inputErr != "" {
		b.WriteString("\n  " + a.theme.Error.Render(a.inputErr) + "\n")
	}
	b.WriteString("\n  " + a.theme.Help.Render("enter confirm") + "\n")
	return b.String()
}

func (a *App) renderSummaryView() string {
	width := a.width
	if width <= 0 || width > 100 {
		width = 100
	}

	var b strings.Builder
	b.WriteString("\n" + a.theme.Title.Render(fmt.Sprintf(" GDACS events (%d shown)", len(a.shown))) + "\n\n")
	b.WriteString(renderSummary(a.shown, a.theme, width))
	b.WriteString("\n" + a.theme.Help.Render(" v open map viewer · q quit") + "\n")
	return b.String()
}

func (a *App) renderViewerView() string {
	e := a.current()

	globe := renderGlobe(globeOptions{
		CenterLat: e.Coords.Lat,
		CenterLon: e.Coords.Lon,
		Rows:      globeRows,
		Graticule: a.graticule,
	}, a.theme)

	var flag string
	switch {
	case a.flagImg != nil:
		flag = renderFlag(a.flagImg, flagWidth)
	case a.flagErr:
		flag = flagPlaceholder(a.theme, flagWidth)
	default:
		flag = a.theme.Border.Width(flagWidth).Align(lipgloss.Center).
			Render(a.theme.Muted.Render("fetching flag..."))
	}

	panelWidth := 44
	side := lipgloss.JoinVertical(lipgloss.Left,
		flag,
		a.theme.Text.Render(e.PrimaryCountry()),
		"",
		renderInfoPanel(e, a.theme, panelWidth),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, globe, "   ", side)

	header := a.theme.Title.Render(fmt.Sprintf(" %s  (%d/%d)", e.Title, a.idx+1, len(a.shown)))
	help := a.theme.Help.Render(" ◀/▶ browse · w open report · b toggle grid · q back")
	footer := a.theme.Muted.Render(" Event data © GDACS · flags from flagcdn.com")

	return "\n" + header + "\n\n" + body + "\n\n" + help + "\n" + footer + "\n"
}
