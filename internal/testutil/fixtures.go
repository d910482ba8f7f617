// Package testutil provides trip fixtures and fake services for tests.
package testutil

import (
	"fmt"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// DayOption customises a fixture day.
type DayOption func(*domain.Day)

// WithPoints replaces the day's points.
func WithPoints(points ...domain.Point) DayOption {
	return func(d *domain.Day) {
		d.Points = points
	}
}

// WithDate sets the day's raw date string.
func WithDate(date string) DayOption {
	return func(d *domain.Day) {
		d.Date = date
	}
}

// NewTestDay creates a day with the given tag and title, dated in June 2025.
func NewTestDay(tag int, title string, opts ...DayOption) domain.Day {
	d := domain.Day{
		Tag:   tag,
		Date:  fmt.Sprintf("2025-06-%02d", tag),
		Title: title,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// At returns a located point.
func At(name, time string, lat, lng float64) domain.Point {
	return domain.Point{Name: name, Time: time, Coords: &domain.Coord{Lat: lat, Lng: lng}}
}

// Unlocated returns a point without coordinates.
func Unlocated(name, time string) domain.Point {
	return domain.Point{Name: name, Time: time}
}

// SampleTrip is a three-day trip. Day 1 starts with an unlocated point,
// day 2 has a single located point and day 3 has none.
func SampleTrip() *domain.Trip {
	return &domain.Trip{
		Days: []domain.Day{
			NewTestDay(1, "Arrival", WithPoints(
				Unlocated("Heathrow Express", "10:30"),
				At("Tate Modern", "14:00", 51.5076, -0.0994),
				At("Millennium Bridge", "16:00", 51.5095, -0.0985),
			)),
			NewTestDay(2, "Museums", WithPoints(
				At("British Museum", "09:30", 51.5194, -0.1270),
			)),
			NewTestDay(3, "Free Day", WithPoints(
				Unlocated("Sleep in", ""),
			)),
		},
		Ideas: map[domain.IdeaCategory][]domain.Idea{
			domain.CategoryEvening: {
				{Name: "Rooftop Bar", URL: "https://example.com/bar"},
			},
			domain.CategoryCulinary: {
				{Name: "Dishoom Covent Garden"},
			},
		},
	}
}
