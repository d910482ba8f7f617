// Package geo implements the Web Mercator math behind the day map: projection,
// viewport fitting and slippy tile addressing.
package geo

import (
	"math"

	"github.com/alexanderramin/londonapp/internal/domain"
)

// TileSize is the edge length of one map tile in pixels.
const TileSize = 256

// maxLat is the latitude bound of the square Mercator world.
const maxLat = 85.0511287798

// Pixel is a position in world pixel space at some zoom, origin top-left.
type Pixel struct {
	X, Y float64
}

// WorldSize returns the world edge length in pixels at zoom.
func WorldSize(zoom int) float64 {
	return TileSize * math.Exp2(float64(zoom))
}

// Project converts a coordinate to world pixels at zoom.
func Project(c domain.Coord, zoom int) Pixel {
	size := WorldSize(zoom)
	lat := math.Max(-maxLat, math.Min(maxLat, c.Lat))
	rad := lat * math.Pi / 180
	x := (c.Lng + 180) / 360 * size
	y := (1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * size
	return Pixel{X: x, Y: y}
}

// Unproject converts world pixels at zoom back to a coordinate.
func Unproject(p Pixel, zoom int) domain.Coord {
	size := WorldSize(zoom)
	lng := p.X/size*360 - 180
	n := math.Pi - 2*math.Pi*p.Y/size
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return domain.Coord{Lat: lat, Lng: lng}
}
