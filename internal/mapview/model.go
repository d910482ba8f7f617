// Package mapview builds the day map: numbered markers, the route between
// them, the fitted viewport and a braille rendering for the terminal.
package mapview

import (
	"fmt"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/geo"
	"github.com/alexanderramin/londonapp/internal/links"
)

// Marker is one numbered stop on the map.
type Marker struct {
	Number int          `json:"number"`
	Name   string       `json:"name"`
	Time   string       `json:"time,omitempty"`
	Link   string       `json:"link"`
	Coord  domain.Coord `json:"coord"`
	Color  string       `json:"color"`
}

// Popup returns the marker's popup lines: name, time label and map link.
func (m Marker) Popup() []string {
	return []string{m.Name, m.Time, "📍 " + m.Link}
}

// Model is everything needed to draw one day's map.
type Model struct {
	Tag      int            `json:"tag"`
	Color    string         `json:"color"`
	Markers  []Marker       `json:"markers"`
	Route    []domain.Coord `json:"route,omitempty"`
	Viewport geo.Viewport   `json:"viewport"`
}

// BuildDay derives the map for day. Only located points become markers,
// numbered 1..n in their filtered order. A route joins them when there are
// at least two.
func BuildDay(day domain.Day, palette domain.Palette, providers links.Providers) Model {
	color := palette.ForTag(day.Tag)
	located := domain.LocatedPoints(day.Points)

	m := Model{Tag: day.Tag, Color: color}
	coords := make([]domain.Coord, 0, len(located))
	for i, p := range located {
		c := *p.Coords
		coords = append(coords, c)
		m.Markers = append(m.Markers, Marker{
			Number: i + 1,
			Name:   p.Name,
			Time:   p.Time,
			Link:   providers.Map(p.Name, p.URL),
			Coord:  c,
			Color:  color,
		})
	}
	if len(coords) >= 2 {
		m.Route = coords
	}
	m.Viewport = geo.Fit(coords, geo.DefaultWidth, geo.DefaultHeight, geo.DefaultPadding, geo.DefaultMaxZoom)
	return m
}

// BuildSingle maps one named place as a pseudo-day with tag 0.
func BuildSingle(name string, lat, lng float64, palette domain.Palette, providers links.Providers) Model {
	day := domain.Day{
		Tag:    0,
		Points: []domain.Point{{Name: name, Coords: &domain.Coord{Lat: lat, Lng: lng}}},
	}
	return BuildDay(day, palette, providers)
}

// Coords returns the marker coordinates in order.
func (m Model) Coords() []domain.Coord {
	out := make([]domain.Coord, len(m.Markers))
	for i, mk := range m.Markers {
		out[i] = mk.Coord
	}
	return out
}

// Refit recomputes the viewport for a different map size.
func (m Model) Refit(width, height, maxZoom int) Model {
	m.Viewport = geo.Fit(m.Coords(), width, height, geo.DefaultPadding, maxZoom)
	return m
}

// CenterTile returns the tile under the viewport centre.
func (m Model) CenterTile() geo.Tile {
	return geo.TileFor(m.Viewport.Center, m.Viewport.Zoom)
}

// Legend lists the markers as "n. name (time)".
func (m Model) Legend() []string {
	out := make([]string, 0, len(m.Markers))
	for _, mk := range m.Markers {
		line := fmt.Sprintf("%d. %s", mk.Number, mk.Name)
		if mk.Time != "" {
			line += " (" + mk.Time + ")"
		}
		out = append(out, line)
	}
	return out
}
