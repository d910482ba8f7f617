// Package catalog holds the static place tables and pads sparse idea
// lists from them.
package catalog

import "github.com/alexanderramin/londonapp/internal/domain"

// ListSize is the number of ideas every category displays.
const ListSize = 10

// Catalog bundles the immutable lookup tables. Components receive it by
// value so tests can swap the tables.
type Catalog struct {
	Coordinates CoordinateCatalog
	Fallbacks   FallbackCatalog
	Groups      []Group
}

// Default returns the shipped catalog.
func Default() Catalog {
	return Catalog{
		Coordinates: DefaultCoordinates(),
		Fallbacks:   DefaultFallbacks(),
		Groups:      DefaultGroups(),
	}
}

// ExpandedGroup is a display group with its padded idea list.
type ExpandedGroup struct {
	Group
	Ideas []domain.Idea `json:"ideas"`
}

// Expand pads list with the fallback names for key that it doesn't already
// contain, then truncates to ListSize. Input items keep their relative order
// and come first; fallback items follow in catalog order. The input slice is
// never modified.
func (c Catalog) Expand(list []domain.Idea, key domain.IdeaCategory) []domain.Idea {
	out := make([]domain.Idea, 0, ListSize+len(list))
	out = append(out, list...)

	present := make(map[string]bool, len(list))
	for _, idea := range list {
		present[idea.Name] = true
	}

	for _, name := range c.Fallbacks[key] {
		if present[name] {
			continue
		}
		present[name] = true
		idea := domain.Idea{Name: name}
		if coord, ok := c.Coordinates.Lookup(name); ok {
			idea.Coords = &coord
		}
		out = append(out, idea)
	}

	if len(out) > ListSize {
		out = out[:ListSize]
	}
	return out
}

// ResolveCoords returns explicit when set, otherwise the catalog coordinate for name.
func (c Catalog) ResolveCoords(name string, explicit *domain.Coord) *domain.Coord {
	if explicit != nil {
		return explicit
	}
	if coord, ok := c.Coordinates.Lookup(name); ok {
		return &coord
	}
	return nil
}

// ExpandAll expands every display group from the document mapping, in group
// order. A nil mapping yields groups filled purely from the fallbacks.
func (c Catalog) ExpandAll(ideas map[domain.IdeaCategory][]domain.Idea) []ExpandedGroup {
	groups := make([]ExpandedGroup, 0, len(c.Groups))
	for _, g := range c.Groups {
		groups = append(groups, ExpandedGroup{
			Group: g,
			Ideas: c.Expand(ideas[g.Key], g.Key),
		})
	}
	return groups
}
