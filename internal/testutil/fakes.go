package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/alexanderramin/londonapp/internal/domain"
	"github.com/alexanderramin/londonapp/internal/itinerary"
	"github.com/alexanderramin/londonapp/internal/weather"
)

// StaticLoader returns a fixed trip or error.
type StaticLoader struct {
	Trip *domain.Trip
	Err  error
}

// Load implements the trip loader.
func (l StaticLoader) Load(ctx context.Context) (*domain.Trip, error) {
	_, trip, err := l.LoadRaw(ctx)
	return trip, err
}

// LoadRaw returns the trip re-encoded as an itinerary document.
func (l StaticLoader) LoadRaw(context.Context) ([]byte, *domain.Trip, error) {
	if l.Err != nil {
		return nil, nil, l.Err
	}
	data, err := json.Marshal(Document(l.Trip))
	if err != nil {
		return nil, nil, err
	}
	return data, l.Trip, nil
}

// Document converts a trip back to its document form.
func Document(trip *domain.Trip) itinerary.Document {
	var doc itinerary.Document
	if trip == nil {
		return doc
	}
	for _, d := range trip.Days {
		dd := itinerary.DayDoc{Tag: d.Tag, Date: d.Date, Title: d.Title}
		for _, p := range d.Points {
			dd.Points = append(dd.Points, itinerary.PointDoc{Name: p.Name, Time: p.Time, URL: p.URL, Coords: coordsDoc(p.Coords)})
		}
		doc.Days = append(doc.Days, dd)
	}
	if len(trip.Ideas) > 0 {
		doc.Ideas = map[string][]itinerary.IdeaDoc{}
		for k, ideas := range trip.Ideas {
			for _, i := range ideas {
				doc.Ideas[string(k)] = append(doc.Ideas[string(k)], itinerary.IdeaDoc{Name: i.Name, URL: i.URL, Coords: coordsDoc(i.Coords)})
			}
		}
	}
	return doc
}

func coordsDoc(c *domain.Coord) *itinerary.CoordsDoc {
	if c == nil {
		return nil
	}
	lat, lng := c.Lat, c.Lng
	return &itinerary.CoordsDoc{Lat: &lat, Lng: &lng}
}

// FakeWeather records calls and returns a fixed report or error.
type FakeWeather struct {
	mu     sync.Mutex
	Report *weather.Report
	Err    error
	calls  []domain.Coord
}

// Current implements weather.Client.
func (f *FakeWeather) Current(ctx context.Context, coord domain.Coord) (*weather.Report, error) {
	f.mu.Lock()
	f.calls = append(f.calls, coord)
	f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, weather.ErrTimeout
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Report, nil
}

// Calls returns the coordinates requested so far.
func (f *FakeWeather) Calls() []domain.Coord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Coord(nil), f.calls...)
}

// SunnyReport is a dry, mild forecast.
func SunnyReport() *weather.Report {
	return &weather.Report{Temperature: 21, Precipitation: 5, WindSpeed: 8, TomorrowMax: 23}
}
