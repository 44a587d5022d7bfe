package gui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/brownsim/internal/dynamo"
)

// Circle is one entry of the display list.
type Circle struct {
	Center    rl.Vector2
	Radius    float32
	Color     rl.Color
	LineWidth float32
}

// Window records the scene as a display list. The frame loop replays it
// between BeginDrawing and EndDrawing, so the simulation never calls into
// raylib directly.
type Window struct {
	circles []Circle
	clears  int
}

func NewWindow() *Window {
	return &Window{circles: make([]Circle, 0, 16)}
}

func (w *Window) Clear() {
	w.circles = w.circles[:0]
	w.clears++
}

func (w *Window) DrawCircle(center dynamo.Vec2, radius float64, style dynamo.Style) {
	w.circles = append(w.circles, Circle{
		Center:    rl.NewVector2(float32(center.X), float32(center.Y)),
		Radius:    float32(radius),
		Color:     ParseColor(style.Stroke),
		LineWidth: float32(style.LineWidth),
	})
}

// Circles returns a copy of the current display list.
func (w *Window) Circles() []Circle {
	out := make([]Circle, len(w.circles))
	copy(out, w.circles)
	return out
}

func (w *Window) Clears() int { return w.clears }

// Render strokes every circle in the display list. Must be called between
// rl.BeginDrawing and rl.EndDrawing.
func (w *Window) Render() {
	for _, c := range w.circles {
		if c.LineWidth <= 1 {
			rl.DrawCircleLines(int32(c.Center.X), int32(c.Center.Y), c.Radius, c.Color)
			continue
		}
		half := c.LineWidth / 2
		rl.DrawRing(c.Center, c.Radius-half, c.Radius+half, 0, 360, 48, c.Color)
	}
}

// ParseColor converts "#rrggbb" or "#rrggbbaa" to a raylib colour. Anything
// else falls back to green.
func ParseColor(s string) rl.Color {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return rl.Green
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Green
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v))
}
