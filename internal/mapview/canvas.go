package mapview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/londonapp/internal/geo"
)

// Canvas is a braille raster with 2x4 micro-pixels per terminal cell.
// Text overlays replace whole cells.
type Canvas struct {
	cols, rows int
	mask       [][]uint8
	overlay    map[[2]int]string
	ink        lipgloss.Style
}

// NewCanvas allocates a blank canvas of cols × rows cells.
func NewCanvas(cols, rows int) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	m := make([][]uint8, rows)
	for i := range m {
		m[i] = make([]uint8, cols)
	}
	return &Canvas{cols: cols, rows: rows, mask: m, overlay: map[[2]int]string{}, ink: lipgloss.NewStyle()}
}

// MicroSize returns the canvas size in micro-pixels.
func (c *Canvas) MicroSize() (int, int) { return c.cols * 2, c.rows * 4 }

// SetInk sets the style used for braille cells.
func (c *Canvas) SetInk(s lipgloss.Style) { c.ink = s }

// Set lights the micro-pixel at (mx, my). Out-of-range pixels are ignored.
func (c *Canvas) Set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cx >= c.cols || cy >= c.rows {
		return
	}
	c.mask[cy][cx] |= brailleBit(rx, ry)
}

// braille dot numbering: left column 1,2,3,7 and right column 4,5,6,8.
func brailleBit(rx, ry int) uint8 {
	left := [4]uint8{0x01, 0x02, 0x04, 0x40}
	right := [4]uint8{0x08, 0x10, 0x20, 0x80}
	if rx == 0 {
		return left[ry]
	}
	return right[ry]
}

// Line draws a Bresenham line between two micro-pixels.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Put writes text into consecutive cells starting at cell (cx, cy), one rune
// per cell, each rendered with style.
func (c *Canvas) Put(cx, cy int, text string, style lipgloss.Style) {
	if cy < 0 || cy >= c.rows {
		return
	}
	for i, r := range []rune(text) {
		x := cx + i
		if x < 0 || x >= c.cols {
			continue
		}
		c.overlay[[2]int{x, cy}] = style.Render(string(r))
	}
}

// Lines renders the canvas row by row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for y := 0; y < c.rows; y++ {
		var b strings.Builder
		for x := 0; x < c.cols; x++ {
			if s, ok := c.overlay[[2]int{x, y}]; ok {
				b.WriteString(s)
				continue
			}
			mask := c.mask[y][x]
			if mask == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.ink.Render(string(rune(0x2800 + int(mask)))))
		}
		out[y] = b.String()
	}
	return out
}

// String joins Lines with newlines.
func (c *Canvas) String() string { return strings.Join(c.Lines(), "\n") }

// Draw renders model onto a cols × rows canvas using viewport vp. The
// selected marker (1-based, 0 for none) is highlighted.
func Draw(model Model, vp geo.Viewport, cols, rows, selected int) *Canvas {
	c := NewCanvas(cols, rows)
	if vp.Empty || len(model.Markers) == 0 {
		return c
	}
	color := lipgloss.Color(model.Color)
	c.SetInk(lipgloss.NewStyle().Foreground(color))

	mw, mh := c.MicroSize()
	scale := min(float64(mw)/float64(max(vp.Width, 1)), float64(mh)/float64(max(vp.Height, 1)))
	ox := (float64(mw) - float64(vp.Width)*scale) / 2
	oy := (float64(mh) - float64(vp.Height)*scale) / 2
	toMicro := func(p geo.Pixel) (int, int) {
		return int(ox + p.X*scale), int(oy + p.Y*scale)
	}

	for i := 1; i < len(model.Route); i++ {
		x0, y0 := toMicro(vp.ToScreen(model.Route[i-1]))
		x1, y1 := toMicro(vp.ToScreen(model.Route[i]))
		c.Line(x0, y0, x1, y1)
	}

	base := lipgloss.NewStyle().Foreground(color).Bold(true)
	for _, mk := range model.Markers {
		mx, my := toMicro(vp.ToScreen(mk.Coord))
		style := base
		if mk.Number == selected {
			style = style.Reverse(true)
		}
		c.Put(mx/2, my/4, strconv.Itoa(mk.Number), style)
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
