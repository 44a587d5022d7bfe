package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/viz"
)

const background = "#0a0a0a"

type circle struct {
	center dynamo.Vec2
	radius float64
	style  dynamo.Style
}

// SVG is a rendering surface that keeps the last complete frame and writes
// it out as an SVG document.
type SVG struct {
	Width, Height int
	circles       []circle
}

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height}
}

func (s *SVG) Clear() {
	s.circles = s.circles[:0]
}

func (s *SVG) DrawCircle(center dynamo.Vec2, radius float64, style dynamo.Style) {
	s.circles = append(s.circles, circle{center: center, radius: radius, style: style})
}

func (s *SVG) Len() int { return len(s.circles) }

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, background))

	for _, c := range s.circles {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%g"/>
`, c.center.X, c.center.Y, c.radius, c.style.Stroke, c.style.LineWidth))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64, color string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, background, color))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// TrajectoryToSVG draws the path of one particle in world coordinates.
func TrajectoryToSVG(points []dynamo.Vec2, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, p := range points {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}
