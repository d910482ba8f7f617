package geo

import (
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// Attribution must accompany OpenStreetMap tiles.
const Attribution = "© OpenStreetMap contributors"

// Tile addresses one slippy map tile.
type Tile struct {
	Z, X, Y int
}

// TileFor returns the tile containing c at zoom.
func TileFor(c domain.Coord, zoom int) Tile {
	p := Project(c, zoom)
	n := int(math.Exp2(float64(zoom)))
	x := int(math.Floor(p.X / TileSize))
	y := int(math.Floor(p.Y / TileSize))
	return Tile{Z: zoom, X: max(0, min(x, n-1)), Y: max(0, min(y, n-1))}
}

// TileURL expands a {s}/{z}/{x}/{y} template. The subdomain is always "a".
func TileURL(template string, z, x, y int) string {
	r := strings.NewReplacer(
		"{s}", "a",
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	)
	return r.Replace(template)
}

// URL expands template for t.
func (t Tile) URL(template string) string {
	return TileURL(template, t.Z, t.X, t.Y)
}
