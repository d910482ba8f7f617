package geo

import (
	"math"

	"github.com/alexanderramin/londonapp/internal/domain"
)

const (
	// SingleZoom is used when exactly one point is shown.
	SingleZoom = 14
	// EmptyZoom is used for a map with nothing to show.
	EmptyZoom = 12
	// DefaultPadding is the fit-bounds padding on every side, in pixels.
	DefaultPadding = 40
	// DefaultMaxZoom is the tile layer's zoom ceiling.
	DefaultMaxZoom = 18

	// DefaultWidth and DefaultHeight are the nominal map size in pixels.
	DefaultWidth  = 800
	DefaultHeight = 480
)

// LondonCenter is where an empty map is centred.
var LondonCenter = domain.Coord{Lat: 51.5074, Lng: -0.1278}

// Viewport is the visible region of the map.
type Viewport struct {
	Center domain.Coord `json:"center"`
	Zoom   int          `json:"zoom"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	// Empty is set when there were no coordinates to fit.
	Empty bool `json:"empty"`
}

// Fit computes the viewport for coords on a width × height map.
//
// Two or more coordinates are fitted with padding on each side at the largest
// integer zoom not above maxZoom. A single coordinate is centred at SingleZoom
// (capped by maxZoom). No coordinates yield an empty viewport over London.
func Fit(coords []domain.Coord, width, height, padding, maxZoom int) Viewport {
	vp := Viewport{Width: width, Height: height}
	switch len(coords) {
	case 0:
		vp.Center = LondonCenter
		vp.Zoom = min(EmptyZoom, maxZoom)
		vp.Empty = true
		return vp
	case 1:
		vp.Center = coords[0]
		vp.Zoom = min(SingleZoom, maxZoom)
		return vp
	}

	availW := float64(width - 2*padding)
	availH := float64(height - 2*padding)

	zoom := 0
	if availW > 0 && availH > 0 {
		for z := maxZoom; z >= 0; z-- {
			minPx, maxPx := bounds(coords, z)
			if maxPx.X-minPx.X <= availW && maxPx.Y-minPx.Y <= availH {
				zoom = z
				break
			}
		}
	}

	minPx, maxPx := bounds(coords, zoom)
	vp.Zoom = zoom
	vp.Center = Unproject(Pixel{X: (minPx.X + maxPx.X) / 2, Y: (minPx.Y + maxPx.Y) / 2}, zoom)
	return vp
}

func bounds(coords []domain.Coord, zoom int) (Pixel, Pixel) {
	minPx := Pixel{X: math.Inf(1), Y: math.Inf(1)}
	maxPx := Pixel{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range coords {
		p := Project(c, zoom)
		minPx.X = math.Min(minPx.X, p.X)
		minPx.Y = math.Min(minPx.Y, p.Y)
		maxPx.X = math.Max(maxPx.X, p.X)
		maxPx.Y = math.Max(maxPx.Y, p.Y)
	}
	return minPx, maxPx
}

// ToScreen returns the position of c relative to the viewport's top-left corner.
func (v Viewport) ToScreen(c domain.Coord) Pixel {
	p := Project(c, v.Zoom)
	center := Project(v.Center, v.Zoom)
	return Pixel{
		X: p.X - center.X + float64(v.Width)/2,
		Y: p.Y - center.Y + float64(v.Height)/2,
	}
}

// WithZoom returns a copy at zoom, clamped to [0, maxZoom].
func (v Viewport) WithZoom(zoom, maxZoom int) Viewport {
	v.Zoom = max(0, min(zoom, maxZoom))
	return v
}
