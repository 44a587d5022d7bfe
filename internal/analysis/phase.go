package analysis

import (
	"strings"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/storage"
)

// PhasePortrait2D holds one particle's trajectory in a plane of its state
// (x, y, vx or vy).
type PhasePortrait2D struct {
	Particle       int
	XIndex, YIndex int
	Points         []dynamo.Vec2
}

// PhasePortrait extracts columns xIdx and yIdx of particle idx from a
// recording. It returns nil when the particle or a column does not exist.
func PhasePortrait(rec *storage.Recording, idx, xIdx, yIdx int) *PhasePortrait2D {
	if rec == nil || idx < 0 || idx >= rec.Particles() {
		return nil
	}
	if xIdx < 0 || xIdx > 3 || yIdx < 0 || yIdx > 3 {
		return nil
	}

	xs, ys := rec.Series(idx, xIdx), rec.Series(idx, yIdx)
	portrait := &PhasePortrait2D{
		Particle: idx,
		XIndex:   xIdx,
		YIndex:   yIdx,
		Points:   make([]dynamo.Vec2, len(xs)),
	}
	for i := range xs {
		portrait.Points[i] = dynamo.Vec2{X: xs[i], Y: ys[i]}
	}
	return portrait
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 {
		return ""
	}

	// Find bounds
	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y

	for _, p := range portrait.Points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	// Create canvas
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	// Plot points
	for _, p := range portrait.Points {
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width && canvas[row][col] == ' ' {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height && canvas[row][col] == ' ' {
				canvas[row][col] = '─'
			}
		}
	}

	// Convert to string
	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
