package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/viz"
)

func TestSVGSurface(t *testing.T) {
	s := NewSVG(800, 600)
	s.DrawCircle(dynamo.Vec2{X: 1, Y: 2}, 10, dynamo.DefaultStyle)
	s.Clear()
	s.DrawCircle(dynamo.Vec2{X: 400, Y: 300}, 10, dynamo.DefaultStyle)
	s.DrawCircle(dynamo.Vec2{X: 410.5, Y: 290}, 10, dynamo.Style{Stroke: "#ff0000", LineWidth: 2.5})

	if s.Len() != 2 {
		t.Fatalf("expected 2 circles after Clear, got %d", s.Len())
	}

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		`width="800" height="600"`,
		`<circle cx="400.00" cy="300.00" r="10.00" fill="none" stroke="#00ff00" stroke-width="1"/>`,
		`<circle cx="410.50" cy="290.00" r="10.00" fill="none" stroke="#ff0000" stroke-width="2.5"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, `cx="1.00"`) {
		t.Error("cleared circle was written")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, "#fff") != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	out := CanvasToSVG(c, 10, "#00ff00")
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(out, `cx="35.0" cy="35.0"`) {
		t.Error("missing dot for pixel (3, 3)")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	if TrajectoryToSVG([]dynamo.Vec2{{X: 1, Y: 1}}, 10, 10, "#fff") != "" {
		t.Error("single point should give empty output")
	}

	out := TrajectoryToSVG([]dynamo.Vec2{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}}, 800, 600, "#00ff00")
	if !strings.Contains(out, `d="M0.0,0.0 L10.0,5.0 L20.0,0.0"`) {
		t.Errorf("unexpected path: %s", out)
	}
}
