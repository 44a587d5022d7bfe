package gui

import (
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/sim"
)

type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
	}{
		{"#00ff00", rl.NewColor(0, 255, 0, 255)},
		{"ff8800", rl.NewColor(255, 136, 0, 255)},
		{"#10203040", rl.NewColor(16, 32, 48, 64)},
		{"green", rl.Green},
		{"#zzzzzz", rl.Green},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWindowDisplayList(t *testing.T) {
	w := NewWindow()
	w.DrawCircle(dynamo.Vec2{X: 400, Y: 300}, 10, dynamo.DefaultStyle)
	w.DrawCircle(dynamo.Vec2{X: 10, Y: 20}, 10, dynamo.Style{Stroke: "#ff0000", LineWidth: 3})

	circles := w.Circles()
	if len(circles) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(circles))
	}
	if circles[0].Center != rl.NewVector2(400, 300) || circles[0].Radius != 10 {
		t.Errorf("circle 0 = %+v", circles[0])
	}
	if circles[1].Color != rl.NewColor(255, 0, 0, 255) || circles[1].LineWidth != 3 {
		t.Errorf("circle 1 = %+v", circles[1])
	}

	w.Clear()
	if len(w.Circles()) != 0 || w.Clears() != 1 {
		t.Error("Clear should empty the display list")
	}
}

func TestAppAdvance(t *testing.T) {
	app, err := NewApp(sim.DefaultConfig(), 800, 600, constRand(0.5))
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if n := len(app.Window.Circles()); n != 10 {
		t.Errorf("initial draw has %d circles, want 10", n)
	}

	app.Advance(25 * time.Millisecond)
	if f := app.Sim.Snapshot().Frame; f != 2 {
		t.Errorf("frame = %d after 25ms, want 2", f)
	}
	app.Advance(5 * time.Millisecond)
	if f := app.Sim.Snapshot().Frame; f != 3 {
		t.Errorf("frame = %d after 30ms, want 3", f)
	}

	// a stalled frame catches up at most 100ms
	app.Advance(time.Second)
	if f := app.Sim.Snapshot().Frame; f != 13 {
		t.Errorf("frame = %d, want 13", f)
	}

	if err := app.Toggle(); err != nil || app.Sim.Status() != sim.Stopped {
		t.Fatalf("toggle: %v, status %s", err, app.Sim.Status())
	}
	app.Advance(50 * time.Millisecond)
	if f := app.Sim.Snapshot().Frame; f != 13 {
		t.Errorf("stopped simulation advanced to frame %d", f)
	}
	if err := app.Toggle(); err != nil || app.Sim.Status() != sim.Running {
		t.Errorf("toggle: %v, status %s", err, app.Sim.Status())
	}
	if app.Clock.Active() != 1 {
		t.Errorf("expected 1 active handle, got %d", app.Clock.Active())
	}
}
