package viz

import (
	"math"
	"strings"

	"github.com/san-kum/brownsim/internal/dynamo"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a Braille character grid that implements dynamo.Surface. World
// coordinates are scaled onto the (Width*2) x (Height*4) sub-pixel grid.
type Canvas struct {
	Width, Height  int
	Grid           [][]rune
	worldW, worldH float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		worldW: float64(w * 2),
		worldH: float64(h * 4),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
	return c
}

// SetWorld sets the size of the world rectangle mapped onto the canvas.
func (c *Canvas) SetWorld(w, h float64) {
	if w > 0 && h > 0 {
		c.worldW, c.worldH = w, h
	}
}

func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.Width*2) / c.worldW, float64(c.Height*4) / c.worldH
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// IsSet reports whether the sub-pixel at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
		}
	}
}

// DrawCircle strokes a circle outline. The Braille grid has a single
// colour, so the style is ignored here and applied by the caller when the
// canvas is rendered.
func (c *Canvas) DrawCircle(center dynamo.Vec2, radius float64, _ dynamo.Style) {
	sx, sy := c.scale()
	cx, cy := center.X*sx, center.Y*sy
	rx, ry := radius*sx, radius*sy

	if rx < 0.5 && ry < 0.5 {
		c.Set(int(math.Round(cx)), int(math.Round(cy)))
		return
	}

	for _, u := range dynamo.UnitCircle(dynamo.CircleSamples(math.Max(rx, ry))) {
		c.Set(int(math.Round(cx+u.X*rx)), int(math.Round(cy+u.Y*ry)))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
