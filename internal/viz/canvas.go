// Package viz renders swim trajectories in the terminal: a braille canvas
// for static plots and a bubbletea model for watching a swim live.
package viz

import (
	"strings"
)

// Each braille cell packs a 2x4 block of dots. dots maps a sub-pixel
// (row-major within the cell) to its bit in the pattern:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dots = [8]rune{0x01, 0x08, 0x02, 0x10, 0x04, 0x20, 0x40, 0x80}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights a pixel at (x, y) in sub-pixel coordinates; the canvas is
// (Width*2) x (Height*4) sub-pixels. Out-of-range pixels are dropped.
func (c *Canvas) Set(x, y int) {
	col, row := x/2, y/4
	if x < 0 || y < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= dots[y%4*2+x%2]
}

func (c *Canvas) Clear() {
	for _, row := range c.Grid {
		for j := range row {
			row[j] = brailleBlank
		}
	}
}

// DrawLine rasterizes a segment between two sub-pixel points (Bresenham).
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), -absInt(y1-y0)
	sx, sy := 1, 1
	if x1 < x0 {
		sx = -1
	}
	if y1 < y0 {
		sy = -1
	}

	for e := dx + dy; ; {
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

// DrawPath maps a world-coordinate polyline onto the canvas and draws it.
// The world window [xMin,xMax]x[yMin,yMax] fills the whole canvas; y grows
// upward in world coordinates.
func (c *Canvas) DrawPath(xs, ys []float64, xMin, xMax, yMin, yMax float64) {
	if len(xs) < 2 || xMax <= xMin || yMax <= yMin {
		return
	}

	w := float64(c.Width * 2)
	h := float64(c.Height * 4)

	px := func(x float64) int { return int((x - xMin) / (xMax - xMin) * (w - 1)) }
	py := func(y float64) int { return int((yMax - y) / (yMax - yMin) * (h - 1)) }

	for i := 1; i < len(xs); i++ {
		c.DrawLine(px(xs[i-1]), py(ys[i-1]), px(xs[i]), py(ys[i]))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
