package domain

import "time"

// Coord is a WGS84 latitude/longitude pair.
type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point is a single timed stop within a day.
// Time and URL are empty when the document omits them.
type Point struct {
	Name   string `json:"name"`
	Time   string `json:"time,omitempty"`
	URL    string `json:"url,omitempty"`
	Coords *Coord `json:"coords,omitempty"`
}

// Located reports whether the point carries a coordinate.
func (p Point) Located() bool { return p.Coords != nil }

// Idea is an unscheduled suggestion, grouped by category.
type Idea struct {
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Coords *Coord `json:"coords,omitempty"`
}

// Day is one itinerary day. Tag is 1-based and assumed to match its
// position in Trip.Days.
type Day struct {
	Tag    int
	Date   string
	Title  string
	Points []Point
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParsedDate parses Date as YYYY-MM-DD (or RFC 3339).
func (d Day) ParsedDate() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, d.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Trip is the root itinerary document. It is never mutated after load.
type Trip struct {
	Days  []Day
	Ideas map[IdeaCategory][]Idea
}

// Day returns the day at index, or false if index is out of range.
func (t *Trip) Day(index int) (Day, bool) {
	if t == nil || index < 0 || index >= len(t.Days) {
		return Day{}, false
	}
	return t.Days[index], true
}

// DayByTag returns the first day with the given tag.
func (t *Trip) DayByTag(tag int) (int, Day, bool) {
	if t == nil {
		return 0, Day{}, false
	}
	for i, d := range t.Days {
		if d.Tag == tag {
			return i, d, true
		}
	}
	return 0, Day{}, false
}

// LocatedPoints returns the points carrying a coordinate, in their original order.
func LocatedPoints(points []Point) []Point {
	var out []Point
	for _, p := range points {
		if p.Located() {
			out = append(out, p)
		}
	}
	return out
}

// FirstLocated returns the first point carrying a coordinate.
func FirstLocated(points []Point) (Point, bool) {
	for _, p := range points {
		if p.Located() {
			return p, true
		}
	}
	return Point{}, false
}
