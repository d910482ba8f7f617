package itinerary

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// Document is the top-level JSON structure of the itinerary file.
type Document struct {
	Days  []DayDoc             `json:"tage"`
	Ideas map[string][]IdeaDoc `json:"ideen"`
}

// DayDoc is one entry of "tage".
type DayDoc struct {
	Tag    int        `json:"tag"`
	Date   string     `json:"datum"`
	Title  string     `json:"titel"`
	Points []PointDoc `json:"punkte"`
}

// PointDoc is one timeline stop of a day.
type PointDoc struct {
	Name   string     `json:"name"`
	Time   string     `json:"zeit,omitempty"`
	URL    string     `json:"url,omitempty"`
	Coords *CoordsDoc `json:"coords,omitempty"`
}

// IdeaDoc is one suggestion inside an "ideen" category.
type IdeaDoc struct {
	Name   string     `json:"name"`
	URL    string     `json:"url,omitempty"`
	Coords *CoordsDoc `json:"coords,omitempty"`
}

// CoordsDoc holds optional coordinates. Both fields must be present for the
// coordinate to count.
type CoordsDoc struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (c *CoordsDoc) toDomain() *domain.Coord {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return nil
	}
	return &domain.Coord{Lat: *c.Lat, Lng: *c.Lng}
}

// Parse decodes an itinerary document into a Trip.
// Unknown idea categories are ignored.
func Parse(data []byte) (*domain.Trip, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	return doc.ToTrip(), nil
}

// ToTrip converts the document into the domain model.
func (d *Document) ToTrip() *domain.Trip {
	trip := &domain.Trip{
		Days:  make([]domain.Day, 0, len(d.Days)),
		Ideas: make(map[domain.IdeaCategory][]domain.Idea),
	}

	for _, dd := range d.Days {
		day := domain.Day{
			Tag:    dd.Tag,
			Date:   dd.Date,
			Title:  dd.Title,
			Points: make([]domain.Point, 0, len(dd.Points)),
		}
		for _, pd := range dd.Points {
			day.Points = append(day.Points, domain.Point{
				Name:   pd.Name,
				Time:   pd.Time,
				URL:    pd.URL,
				Coords: pd.Coords.toDomain(),
			})
		}
		trip.Days = append(trip.Days, day)
	}

	for key, list := range d.Ideas {
		cat := domain.IdeaCategory(key)
		if !cat.Known() {
			continue
		}
		ideas := make([]domain.Idea, 0, len(list))
		for _, id := range list {
			ideas = append(ideas, domain.Idea{
				Name:   id.Name,
				URL:    id.URL,
				Coords: id.Coords.toDomain(),
			})
		}
		trip.Ideas[cat] = ideas
	}

	return trip
}
