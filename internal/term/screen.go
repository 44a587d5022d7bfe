package term

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/brownsim/internal/dynamo"
)

// statusRows are reserved at the top of the screen for the status line.
const statusRows = 1

// Screen draws particles as character cells on a tcell screen. World
// coordinates are scaled to the area below the status line.
type Screen struct {
	screen tcell.Screen
	worldW float64
	worldH float64

	mu     sync.Mutex
	status string
}

func NewScreen(screen tcell.Screen, worldW, worldH float64) *Screen {
	return &Screen{screen: screen, worldW: worldW, worldH: worldH}
}

// SetStatus replaces the text shown on the status line at the next Flush.
func (s *Screen) SetStatus(text string) {
	s.mu.Lock()
	s.status = text
	s.mu.Unlock()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Cell maps a world position to a screen cell, reporting false when it
// falls outside the drawing area.
func (s *Screen) Cell(p dynamo.Vec2) (int, int, bool) {
	sx, sy := s.scale()
	x := int(math.Round(p.X * sx))
	y := int(math.Round(p.Y*sy)) + statusRows
	w, h := s.screen.Size()
	if x < 0 || y < statusRows || x >= w || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func (s *Screen) scale() (float64, float64) {
	w, h := s.screen.Size()
	h -= statusRows
	if s.worldW <= 0 || s.worldH <= 0 || w <= 0 || h <= 0 {
		return 1, 1
	}
	return float64(w) / s.worldW, float64(h) / s.worldH
}

func (s *Screen) DrawCircle(center dynamo.Vec2, radius float64, style dynamo.Style) {
	st := tcell.StyleDefault.Foreground(tcell.GetColor(style.Stroke))
	sx, sy := s.scale()

	if radius*sx < 1 && radius*sy < 1 {
		if x, y, ok := s.Cell(center); ok {
			s.screen.SetContent(x, y, '•', nil, st)
		}
		return
	}

	for _, u := range dynamo.UnitCircle(dynamo.CircleSamples(radius * math.Max(sx, sy))) {
		if x, y, ok := s.Cell(center.Add(u.Scale(radius))); ok {
			s.screen.SetContent(x, y, '·', nil, st)
		}
	}
}

// Flush draws the status line and shows the frame.
func (s *Screen) Flush() {
	s.mu.Lock()
	status := s.status
	s.mu.Unlock()

	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	w, _ := s.screen.Size()
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		s.screen.SetContent(col, 0, r, nil, st)
		col++
	}
	for ; col < w; col++ {
		s.screen.SetContent(col, 0, ' ', nil, st)
	}
	s.screen.Show()
}
