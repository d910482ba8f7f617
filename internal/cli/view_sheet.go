package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
	"github.com/alexanderramin/londonapp/internal/clock"
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/mapview"
	"github.com/alexanderramin/londonapp/internal/selection"
	"github.com/alexanderramin/londonapp/internal/weather"
)

// closeTransition is how long the sheet shows its closing state.
const closeTransition = 250 * time.Millisecond

// weatherMsg carries a forecast result for the sheet that requested it.
type weatherMsg struct {
	token  selection.Token
	report *weather.Report
	err    error
}

// clockTickMsg refreshes the London-now tile.
type clockTickMsg struct {
	token selection.Token
	now   time.Time
}

// sheetClosedMsg completes the close transition.
type sheetClosedMsg struct {
	token selection.Token
}

type weatherStatus int

const (
	weatherNone weatherStatus = iota
	weatherLoading
	weatherReady
	weatherFailed
)

// sheetView shows one day: its timeline and the weather and clock tiles.
type sheetView struct {
	state *SharedState
	index int
	day   domain.Day
	token selection.Token

	place   domain.Point
	status  weatherStatus
	report  *weather.Report
	spinner spinner.Model

	now     time.Time
	closing bool

	ctx    context.Context
	cancel context.CancelFunc
}

func newSheetView(state *SharedState, index int, token selection.Token) *sheetView {
	day, _ := state.Trip.Day(index)
	ctx, cancel := context.WithCancel(context.Background())

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleYellow

	v := &sheetView{
		state:   state,
		index:   index,
		day:     day,
		token:   token,
		spinner: sp,
		now:     state.App.now(),
		ctx:     ctx,
		cancel:  cancel,
	}
	if p, ok := domain.FirstLocated(day.Points); ok && state.App.Weather != nil {
		v.place = p
		v.status = weatherLoading
	}
	return v
}

func (v *sheetView) ID() ViewID    { return ViewSheet }
func (v *sheetView) Title() string { return "Tag " + strconv.Itoa(v.day.Tag) }

func (v *sheetView) hasPrev() bool { return v.index > 0 }
func (v *sheetView) hasNext() bool { return v.index < len(v.state.Days())-1 }
func (v *sheetView) hasMap() bool  { return len(domain.LocatedPoints(v.day.Points)) > 0 }

func (v *sheetView) ShortHelp() []key.Binding {
	prev := key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "vorheriger Tag"))
	prev.SetEnabled(v.hasPrev())
	next := key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "nächster Tag"))
	next.SetEnabled(v.hasNext())
	showMap := key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "Karte"))
	showMap.SetEnabled(v.hasMap())
	return []key.Binding{
		prev,
		next,
		showMap,
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "springen")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "schließen")),
	}
}

func (v *sheetView) Init() tea.Cmd {
	cmds := []tea.Cmd{v.scheduleClock()}
	if v.status == weatherLoading {
		cmds = append(cmds, v.fetchWeather(), v.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (v *sheetView) fetchWeather() tea.Cmd {
	client, ctx, token, coord := v.state.App.Weather, v.ctx, v.token, *v.place.Coords
	return func() tea.Msg {
		report, err := client.Current(ctx, coord)
		return weatherMsg{token: token, report: report, err: err}
	}
}

func (v *sheetView) scheduleClock() tea.Cmd {
	token := v.token
	return tea.Tick(clock.RefreshInterval, func(t time.Time) tea.Msg {
		return clockTickMsg{token: token, now: t}
	})
}

// current reports whether a message tagged with token belongs to this
// sheet and the sheet is still the open one.
func (v *sheetView) current(token selection.Token) bool {
	return token == v.token && v.state.Selection.IsCurrent(token)
}

func (v *sheetView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weatherMsg:
		if !v.current(msg.token) {
			return v, nil
		}
		if msg.err != nil {
			v.status = weatherFailed
			return v, nil
		}
		v.status, v.report = weatherReady, msg.report
		return v, nil

	case clockTickMsg:
		if !v.current(msg.token) {
			return v, nil
		}
		v.now = msg.now
		return v, v.scheduleClock()

	case spinner.TickMsg:
		if v.status != weatherLoading || v.closing {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case sheetClosedMsg:
		if msg.token != v.token || !v.closing {
			return v, nil
		}
		return v, popView()

	case tea.KeyMsg:
		if v.closing {
			return v, nil
		}
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *sheetView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.hasPrev() {
			return v, openDay(v.index - 1)
		}
	case "right", "l":
		if v.hasNext() {
			return v, openDay(v.index + 1)
		}
	case "m":
		if v.hasMap() {
			app := v.state.App
			model := mapview.BuildDay(v.day, app.Palette, app.Providers)
			return v, pushView(newMapView(v.state, "Karte", model))
		}
	case "g":
		return v, startJumpForm(v.state)
	case "esc":
		return v, v.close()
	}
	return v, nil
}

// close invalidates the sheet immediately and pops it once the
// transition has elapsed.
func (v *sheetView) close() tea.Cmd {
	v.closing = true
	v.state.Selection.CloseDay()
	v.cancel()
	token := v.token
	return tea.Tick(closeTransition, func(time.Time) tea.Msg {
		return sheetClosedMsg{token: token}
	})
}

func (v *sheetView) teardown() {
	v.cancel()
}

func (v *sheetView) View() string {
	color := v.state.App.Palette.ForTag(v.day.Tag)
	var b strings.Builder

	title := formatter.DayStyle(color).Bold(true).Render(formatter.SheetTitle(v.day))
	if v.closing {
		title += "  " + formatter.Dim("wird geschlossen …")
	}
	b.WriteString(title)
	b.WriteString("\n")
	if t, ok := v.day.ParsedDate(); ok {
		b.WriteString(formatter.Dim(formatter.ShortDate(t)))
	} else if v.day.Date != "" {
		b.WriteString(formatter.Dim(v.day.Date))
	}
	b.WriteString("\n\n")

	b.WriteString(v.renderNav())
	b.WriteString("\n\n")
	b.WriteString(formatter.Timeline(v.day, v.state.App.Providers))
	b.WriteString("\n\n")
	b.WriteString(v.renderWidgets())
	return b.String()
}

func (v *sheetView) renderNav() string {
	item := func(label string, enabled bool) string {
		if enabled {
			return formatter.StyleBlue.Render(label)
		}
		return formatter.Dim(label)
	}
	parts := []string{
		item("‹ zurück", v.hasPrev()),
		item("weiter ›", v.hasNext()),
	}
	if v.hasMap() {
		parts = append(parts, item("🗺  Karte (m)", true))
	}
	return strings.Join(parts, formatter.Dim("  |  "))
}

func (v *sheetView) renderWidgets() string {
	var tiles []string
	switch v.status {
	case weatherLoading:
		tiles = append(tiles, formatter.WeatherLoading(v.place.Name, v.spinner.View()))
	case weatherReady:
		tiles = append(tiles, formatter.WeatherTile(v.place.Name, v.report))
	case weatherFailed:
		tiles = append(tiles, formatter.WeatherFailed())
	}
	tiles = append(tiles, formatter.NowTile(v.now))
	if len(tiles) == 1 {
		return tiles[0]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles[0], "  ", tiles[1])
}
