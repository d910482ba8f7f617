package mapview

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/geo"
	"github.com/alexanderramin/londonapp/internal/links"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string { return ansi.ReplaceAllString(s, "") }

func coord(lat, lng float64) *domain.Coord { return &domain.Coord{Lat: lat, Lng: lng} }

func threePointDay() domain.Day {
	return domain.Day{
		Tag:   2,
		Title: "Southbank",
		Points: []domain.Point{
			{Name: "A", Time: "09:00"},
			{Name: "B", Time: "10:00", Coords: coord(51.5076, -0.0994)},
			{Name: "C", URL: "https://example.com/c", Coords: coord(51.5095, -0.0985)},
		},
	}
}

func TestBuildDay_NumbersOnlyLocatedPoints(t *testing.T) {
	m := BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders())

	require.Len(t, m.Markers, 2)
	assert.Equal(t, 1, m.Markers[0].Number)
	assert.Equal(t, "B", m.Markers[0].Name)
	assert.Equal(t, 2, m.Markers[1].Number)
	assert.Equal(t, "C", m.Markers[1].Name)

	assert.Equal(t, "#2ecc71", m.Color)
	for _, mk := range m.Markers {
		assert.Equal(t, m.Color, mk.Color)
	}
}

func TestBuildDay_PopupLinks(t *testing.T) {
	m := BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders())

	assert.Equal(t, "https://www.google.com/maps?q=B%2C+London", m.Markers[0].Link)
	assert.Equal(t, "https://example.com/c", m.Markers[1].Link)
	assert.Equal(t, []string{"B", "10:00", "📍 https://www.google.com/maps?q=B%2C+London"}, m.Markers[0].Popup())
}

func TestBuildDay_Route(t *testing.T) {
	m := BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders())
	require.Len(t, m.Route, 2)
	assert.Equal(t, m.Coords(), m.Route)

	one := threePointDay()
	one.Points = one.Points[:2]
	m = BuildDay(one, domain.DefaultPalette, links.DefaultProviders())
	assert.Len(t, m.Markers, 1)
	assert.Nil(t, m.Route)
	assert.Equal(t, geo.SingleZoom, m.Viewport.Zoom)
}

func TestBuildDay_NoLocatedPoints(t *testing.T) {
	day := domain.Day{Tag: 1, Points: []domain.Point{{Name: "Nowhere"}}}
	m := BuildDay(day, domain.DefaultPalette, links.DefaultProviders())

	assert.Empty(t, m.Markers)
	assert.Nil(t, m.Route)
	assert.True(t, m.Viewport.Empty)

	out := Draw(m, m.Viewport, 10, 3, 0).String()
	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 10)+"\n", 2)+strings.Repeat(" ", 10), out)
}

func TestBuildSingle(t *testing.T) {
	m := BuildSingle("Tate Modern", 51.5076, -0.0994, domain.DefaultPalette, links.DefaultProviders())

	assert.Equal(t, 0, m.Tag)
	// Tag 0 wraps to the last palette colour.
	assert.Equal(t, "#16a085", m.Color)
	require.Len(t, m.Markers, 1)
	assert.Equal(t, 1, m.Markers[0].Number)
	assert.Equal(t, "Tate Modern", m.Markers[0].Name)
	assert.Equal(t, "https://www.google.com/maps?q=Tate+Modern%2C+London", m.Markers[0].Link)
	assert.Nil(t, m.Route)
	assert.Equal(t, 14, m.Viewport.Zoom)
	assert.Equal(t, domain.Coord{Lat: 51.5076, Lng: -0.0994}, m.Viewport.Center)
}

func TestModel_Legend(t *testing.T) {
	m := BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders())
	assert.Equal(t, []string{"1. B (10:00)", "2. C"}, m.Legend())
}

func TestModel_CenterTile(t *testing.T) {
	m := BuildSingle("Tate Modern", 51.5076, -0.0994, domain.DefaultPalette, links.DefaultProviders())
	assert.Equal(t, geo.Tile{Z: 14, X: 8187, Y: 5448}, m.CenterTile())
}

func TestCanvas_SetAndLine(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	assert.Equal(t, "⠁ ", plain(c.String()))

	c = NewCanvas(2, 1)
	c.Line(0, 0, 3, 3)
	assert.Equal(t, string([]rune{0x2811, 0x2884}), plain(c.String()))
}

func TestCanvas_IgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(-1, 0)
	c.Set(2, 0)
	c.Set(0, 4)
	c.Put(3, 0, "x", lipgloss.NewStyle())
	assert.Equal(t, " ", plain(c.String()))
}

func TestDraw_SingleMarkerAtCentre(t *testing.T) {
	m := BuildSingle("Tate Modern", 51.5076, -0.0994, domain.DefaultPalette, links.DefaultProviders())
	lines := Draw(m, m.Viewport, 20, 10, 0).Lines()

	require.Len(t, lines, 10)
	row := []rune(plain(lines[5]))
	require.Len(t, row, 20)
	assert.Equal(t, '1', row[10])
}

func TestDraw_RouteBetweenMarkers(t *testing.T) {
	m := BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders())
	out := plain(Draw(m, m.Viewport, 40, 12, 0).String())

	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
	hasBraille := strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF })
	assert.True(t, hasBraille, "route should be drawn")
}

func TestInstance_CycleAndZoom(t *testing.T) {
	var h Holder
	in := h.Open(BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders()))

	_, ok := in.Selection()
	assert.False(t, ok)

	in.Cycle(1)
	mk, ok := in.Selection()
	require.True(t, ok)
	assert.Equal(t, "B", mk.Name)

	in.Cycle(1)
	assert.Equal(t, 2, in.Selected())
	in.Cycle(1)
	assert.Equal(t, 1, in.Selected())
	in.Cycle(-1)
	assert.Equal(t, 2, in.Selected())

	start := in.Viewport().Zoom
	in.Zoom(1, geo.DefaultMaxZoom)
	assert.Equal(t, min(start+1, geo.DefaultMaxZoom), in.Viewport().Zoom)
	in.Zoom(-100, geo.DefaultMaxZoom)
	assert.Equal(t, 0, in.Viewport().Zoom)
}

func TestHolder_AtMostOneLiveInstance(t *testing.T) {
	var h Holder
	assert.Nil(t, h.Current())

	disposed := 0
	first := h.Open(BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders()))
	first.OnDispose(func() { disposed++ })
	require.True(t, first.Live())

	second := h.Open(BuildSingle("Tate Modern", 51.5076, -0.0994, domain.DefaultPalette, links.DefaultProviders()))

	assert.False(t, first.Live())
	assert.Empty(t, first.Model().Markers)
	assert.Nil(t, first.Model().Route)
	assert.Equal(t, 1, disposed)
	assert.True(t, second.Live())
	assert.Same(t, second, h.Current())
	assert.NotEqual(t, first.ID, second.ID)

	h.Close()
	assert.False(t, second.Live())
	assert.Nil(t, h.Current())
}

func TestInstance_DisposeIsIdempotent(t *testing.T) {
	var h Holder
	in := h.Open(BuildDay(threePointDay(), domain.DefaultPalette, links.DefaultProviders()))
	calls := 0
	in.OnDispose(func() { calls++ })

	in.Dispose()
	in.Dispose()
	h.Close()

	assert.Equal(t, 1, calls)
	assert.False(t, in.Live())
}
