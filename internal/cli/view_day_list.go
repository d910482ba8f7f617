package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/londonapp/internal/catalog"
	"github.com/alexanderramin/londonapp/internal/cli/formatter"
	"github.com/alexanderramin/londonapp/internal/clock"
	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/mapview"
)

// tripLoadedMsg carries the result of the itinerary load.
type tripLoadedMsg struct {
	trip *domain.Trip
	err  error
}

// bannerTickMsg re-evaluates the header banner.
type bannerTickMsg struct {
	now time.Time
}

type rowKind int

const (
	rowDay rowKind = iota
	rowGroup
	rowIdea
)

// listRow is one selectable line of the day list.
type listRow struct {
	kind  rowKind
	index int // day index, group index or idea index
	group int
}

// dayListView is the home view: banner, day cards and idea groups.
type dayListView struct {
	state  *SharedState
	banner clock.Banner
	groups []catalog.ExpandedGroup
	cursor int
}

func newDayListView(state *SharedState) *dayListView {
	return &dayListView{
		state:  state,
		banner: clock.BannerFor(state.App.now()),
	}
}

func (v *dayListView) ID() ViewID    { return ViewDayList }
func (v *dayListView) Title() string { return "Reiseplan" }

func (v *dayListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "auswählen")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "öffnen")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "springen")),
	}
}

func (v *dayListView) Init() tea.Cmd {
	cmds := []tea.Cmd{v.scheduleBanner()}
	if !v.state.Loaded {
		cmds = append(cmds, v.loadTrip())
	}
	return tea.Batch(cmds...)
}

func (v *dayListView) loadTrip() tea.Cmd {
	loader := v.state.App.Loader
	return func() tea.Msg {
		trip, err := loader.Load(context.Background())
		return tripLoadedMsg{trip: trip, err: err}
	}
}

func (v *dayListView) scheduleBanner() tea.Cmd {
	return tea.Tick(clock.BannerInterval, func(t time.Time) tea.Msg {
		return bannerTickMsg{now: t}
	})
}

func (v *dayListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tripLoadedMsg:
		v.state.Loaded = true
		v.state.Trip, v.state.LoadErr = msg.trip, msg.err
		if msg.err != nil {
			v.state.App.logger().Error("itinerary unavailable",
				"kind", itinerary.Kind(msg.err),
				"error", msg.err,
			)
			v.state.Trip = nil
		} else if msg.trip == nil {
			v.state.Trip = &domain.Trip{}
		}
		var ideas map[domain.IdeaCategory][]domain.Idea
		if v.state.Trip != nil {
			ideas = v.state.Trip.Ideas
		}
		v.groups = v.state.App.Catalog.ExpandAll(ideas)
		v.cursor = 0
		return v, nil

	case bannerTickMsg:
		v.banner = clock.BannerFor(msg.now)
		return v, v.scheduleBanner()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *dayListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := v.rows()
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case "g":
		if len(v.state.Days()) > 0 {
			return v, startJumpForm(v.state)
		}
	case "enter", " ":
		if v.cursor >= len(rows) {
			return v, nil
		}
		return v, v.activate(rows[v.cursor])
	}
	return v, nil
}

func (v *dayListView) activate(row listRow) tea.Cmd {
	switch row.kind {
	case rowDay:
		return openDay(row.index)
	case rowGroup:
		v.state.Selection.Toggle(v.groups[row.index].Key)
		v.cursorToGroup(row.index)
		return nil
	case rowIdea:
		idea := v.groups[row.group].Ideas[row.index]
		coord := v.state.App.Catalog.ResolveCoords(idea.Name, idea.Coords)
		if coord == nil {
			return func() tea.Msg { return noticeMsg("Für " + idea.Name + " ist kein Ort hinterlegt.") }
		}
		app := v.state.App
		model := mapview.BuildSingle(idea.Name, coord.Lat, coord.Lng, app.Palette, app.Providers)
		return pushView(newMapView(v.state, idea.Name, model))
	}
	return nil
}

// cursorToGroup keeps the cursor on a header whose rows moved.
func (v *dayListView) cursorToGroup(gi int) {
	for i, r := range v.rows() {
		if r.kind == rowGroup && r.index == gi {
			v.cursor = i
			return
		}
	}
}

// rows flattens the selectable lines: days, then group headers with the
// items of the expanded group below its header.
func (v *dayListView) rows() []listRow {
	var rows []listRow
	for i := range v.state.Days() {
		rows = append(rows, listRow{kind: rowDay, index: i})
	}
	for gi, g := range v.groups {
		rows = append(rows, listRow{kind: rowGroup, index: gi})
		if !v.state.Selection.IsExpanded(g.Key) {
			continue
		}
		for ii := range g.Ideas {
			rows = append(rows, listRow{kind: rowIdea, index: ii, group: gi})
		}
	}
	return rows
}

func (v *dayListView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Banner(v.banner))
	b.WriteString("\n\n")

	if !v.state.Loaded {
		b.WriteString(formatter.Dim("Reiseplan wird geladen …"))
		return b.String()
	}

	rows := v.rows()
	if v.state.LoadErr != nil {
		b.WriteString(formatter.LoadError(v.state.LoadErr))
	} else {
		cursor := -1
		if v.cursor < len(rows) && rows[v.cursor].kind == rowDay {
			cursor = rows[v.cursor].index
		}
		b.WriteString(formatter.Header("Tage"))
		b.WriteString("\n")
		b.WriteString(formatter.DayList(v.state.Days(), v.state.App.Palette, cursor))
	}
	b.WriteString("\n\n")
	b.WriteString(formatter.Header("Ideen"))
	b.WriteString("\n")

	for i, row := range rows {
		selected := i == v.cursor
		switch row.kind {
		case rowGroup:
			g := v.groups[row.index]
			b.WriteString(formatter.IdeaGroupHeader(g, v.state.Selection.IsExpanded(g.Key), selected))
			b.WriteString("\n")
		case rowIdea:
			idea := v.groups[row.group].Ideas[row.index]
			link := v.state.App.Providers.General(idea.Name, idea.URL)
			mappable := v.state.App.Catalog.ResolveCoords(idea.Name, idea.Coords) != nil
			b.WriteString(formatter.IdeaItem(idea, link, mappable, selected))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
