package catalog

import "github.com/alexanderramin/londonapp/internal/domain"

// CoordinateCatalog maps known place names to coordinates. It backs points
// and ideas that omit explicit coordinates.
type CoordinateCatalog map[string]domain.Coord

// Lookup returns the coordinate for name.
func (c CoordinateCatalog) Lookup(name string) (domain.Coord, bool) {
	coord, ok := c[name]
	return coord, ok
}

// FallbackCatalog maps an idea category to its curated canonical names.
type FallbackCatalog map[domain.IdeaCategory][]string

// Group is the display metadata of one idea category.
type Group struct {
	Key   domain.IdeaCategory `json:"key"`
	Title string              `json:"title"`
	Icon  string              `json:"icon"`
}

// DefaultCoordinates returns a fresh copy of the known London places.
func DefaultCoordinates() CoordinateCatalog {
	return CoordinateCatalog{
		"Brat Shoreditch":          {Lat: 51.5243, Lng: -0.0788},
		"Padella Borough Market":   {Lat: 51.505, Lng: -0.091},
		"Hawksmoor Seven Dials":    {Lat: 51.5147, Lng: -0.1276},
		"Flat Iron Steak":          {Lat: 51.5139, Lng: -0.1372},
		"Sketch London":            {Lat: 51.512, Lng: -0.1416},
		"The Wolseley":             {Lat: 51.5076, Lng: -0.1414},
		"The Shard Design Level":   {Lat: 51.5045, Lng: -0.0865},
		"Tate Modern":              {Lat: 51.5076, Lng: -0.0994},
		"Southbank Walk":           {Lat: 51.5055, Lng: -0.1214},
		"Tower Bridge View":        {Lat: 51.5055, Lng: -0.0754},
		"Somerset House":           {Lat: 51.5111, Lng: -0.1162},
		"Victoria & Albert Museum": {Lat: 51.4966, Lng: -0.1722},
		"National Gallery":         {Lat: 51.5089, Lng: -0.1283},
		"British Museum":           {Lat: 51.5194, Lng: -0.1269},
		"Sky Garden":               {Lat: 51.5105, Lng: -0.0838},
		"Millennium Bridge":        {Lat: 51.508, Lng: -0.098},
		"Piccadilly Circus":        {Lat: 51.5101, Lng: -0.134},
		"Neal’s Yard":              {Lat: 51.5145, Lng: -0.1267},
		"St Dunstan in the East":   {Lat: 51.5096, Lng: -0.0814},
		"Hampstead Heath View":     {Lat: 51.5606, Lng: -0.157},
		"Primrose Hill":            {Lat: 51.5396, Lng: -0.1607},
		"Greenwich Observatory":    {Lat: 51.4769, Lng: -0.0005},
		"Cinnamon Club":            {Lat: 51.4963, Lng: -0.1287},
		"Ottolenghi Spitalfields":  {Lat: 51.5201, Lng: -0.0755},
	}
}

// DefaultFallbacks returns a fresh copy of the curated ten-name lists.
func DefaultFallbacks() FallbackCatalog {
	return FallbackCatalog{
		domain.CategoryEvening: {
			"Southbank Walk", "Leicester Square", "Regent’s Park", "Soho Nights", "Embankment Lights",
			"Piccadilly Circus", "Covent Garden Evenings", "Trafalgar Square", "Canary Wharf Lights", "Chelsea Riverside",
		},
		domain.CategoryDesign: {
			"Tate Modern", "Barbican Centre", "Somerset House", "The Shard Design Level", "Saatchi Gallery",
			"Design District Greenwich", "Whitechapel Gallery", "Victoria & Albert Museum", "Serpentine Pavilion", "Museum of London",
		},
		domain.CategoryCulinary: {
			"Flat Iron Steak", "Padella Borough Market", "Hawksmoor Seven Dials", "Sketch London", "The Wolseley",
			"Cinnamon Club", "Ottolenghi Spitalfields", "Dishoom Covent Garden", "The Ivy Market Grill", "Bill’s Soho",
		},
		domain.CategoryCulture: {
			"British Museum", "Shakespeare’s Globe", "National Gallery", "St. Paul’s Cathedral", "Science Museum",
			"Royal Albert Hall", "Natural History Museum", "National Theatre", "Somerset House", "Barbican Centre",
		},
		domain.CategoryPhoto: {
			"London Eye", "Millennium Bridge", "Piccadilly Lights", "Neal’s Yard", "St Dunstan in the East",
			"Hampstead Heath View", "Primrose Hill", "Tower Bridge View", "Sky Garden", "Greenwich Observatory",
		},
	}
}

// DefaultGroups returns the idea groups in display order.
func DefaultGroups() []Group {
	return []Group{
		{Key: domain.CategoryEvening, Title: "Abendspaziergänge", Icon: "🌆"},
		{Key: domain.CategoryDesign, Title: "Design & Orte mit Charakter", Icon: "🎨"},
		{Key: domain.CategoryCulinary, Title: "Kulinarische Abende", Icon: "🍽️"},
		{Key: domain.CategoryCulture, Title: "Kulturelle Geheimtipps", Icon: "🏛️"},
		{Key: domain.CategoryPhoto, Title: "Fotospots", Icon: "📷"},
	}
}
