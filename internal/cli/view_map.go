package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/londonapp/internal/cli/formatter"
	"github.com/alexanderramin/londonapp/internal/geo"
	"github.com/alexanderramin/londonapp/internal/mapview"
)

// mapHintDuration is how long the key hint stays under a freshly opened map.
const mapHintDuration = 3 * time.Second

// mapHintDoneMsg hides the hint of the map instance it names.
type mapHintDoneMsg struct {
	id string
}

// mapView renders the live map instance as a braille canvas.
type mapView struct {
	state    *SharedState
	title    string
	instance *mapview.Instance
	hint     bool
}

// newMapView opens model through the shared holder, which disposes any
// map that was open before.
func newMapView(state *SharedState, title string, model mapview.Model) *mapView {
	return &mapView{
		state:    state,
		title:    title,
		instance: state.Selection.Maps.Open(model.Refit(geo.DefaultWidth, geo.DefaultHeight, state.App.maxZoom())),
		hint:     true,
	}
}

func (v *mapView) ID() ViewID    { return ViewMap }
func (v *mapView) Title() string { return v.title }

func (v *mapView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "Marker")),
		key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "Zoom")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "schließen")),
	}
}

func (v *mapView) Init() tea.Cmd {
	id := v.instance.ID
	return tea.Tick(mapHintDuration, func(time.Time) tea.Msg {
		return mapHintDoneMsg{id: id}
	})
}

func (v *mapView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case mapHintDoneMsg:
		if msg.id == v.instance.ID && v.instance.Live() {
			v.hint = false
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			v.instance.Cycle(-1)
		case "right", "l":
			v.instance.Cycle(1)
		case "+", "=":
			v.instance.Zoom(1, v.state.App.maxZoom())
		case "-":
			v.instance.Zoom(-1, v.state.App.maxZoom())
		case "esc":
			return v, popView()
		}
	}
	return v, nil
}

// teardown disposes the instance when the view leaves the stack.
func (v *mapView) teardown() {
	if v.state.Selection.Maps.Current() == v.instance {
		v.state.Selection.Maps.Close()
		return
	}
	v.instance.Dispose()
}

func (v *mapView) canvasSize() (int, int) {
	cols := min(max(v.state.Width-2, 20), 100)
	rows := max(v.state.ContentHeight()-10, 8)
	return cols, rows
}

func (v *mapView) View() string {
	var b strings.Builder
	model := v.instance.Model()
	vp := v.instance.Viewport()

	b.WriteString(formatter.DayStyle(model.Color).Bold(true).Render(v.title))
	b.WriteString("\n")
	b.WriteString(v.instance.Render(v.canvasSize()))
	b.WriteString("\n")

	if vp.Empty {
		b.WriteString(formatter.StyleYellow.Render("Keine Orte mit Koordinaten für diesen Tag."))
		b.WriteString("\n")
	}
	if v.hint {
		b.WriteString(formatter.Dim("←/→ Marker wählen · +/- Zoom · esc schließen"))
		b.WriteString("\n")
	}
	if m, ok := v.instance.Selection(); ok {
		popup := m.Popup()
		b.WriteString(formatter.Bold(popup[0]))
		if popup[1] != "" {
			b.WriteString("  " + formatter.Dim(popup[1]))
		}
		b.WriteString("\n")
		b.WriteString(formatter.StyleBlue.Render(popup[2]))
		b.WriteString("\n")
	}
	for _, line := range model.Legend() {
		b.WriteString(formatter.Dim(line))
		b.WriteString("\n")
	}

	tile := geo.TileFor(vp.Center, vp.Zoom)
	b.WriteString(formatter.Dim("Kachel " + tile.URL(v.state.App.config().Map.TileURL)))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(geo.Attribution))
	return b.String()
}
