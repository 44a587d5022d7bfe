package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/brownsim/internal/clock"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/metrics"
	"github.com/san-kum/brownsim/internal/sim"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

// maxFrameTime caps how much simulated time one slow frame may catch up.
const maxFrameTime = 100 * time.Millisecond

// App drives a simulation from the raylib frame loop. The timer is a manual
// clock advanced by the frame time, so ticks run on the render thread.
type App struct {
	Sim    *sim.Simulation
	Window *Window
	Clock  *clock.Manual
	Energy *metrics.Energy

	width, height int32
}

// NewApp builds and starts the simulation. It does not open a window.
func NewApp(cfg sim.Config, width, height int32, rng dynamo.RandomSource) (*App, error) {
	window := NewWindow()
	clk := clock.NewManual()
	s := sim.New(window, clk, rng)

	energy := metrics.NewEnergy()
	s.AddObserver(metrics.NewSet(energy))

	if err := s.Init(cfg); err != nil {
		return nil, err
	}
	s.Draw()
	if err := s.Run(); err != nil {
		return nil, err
	}
	return &App{Sim: s, Window: window, Clock: clk, Energy: energy, width: width, height: height}, nil
}

// Advance feeds elapsed frame time to the clock.
func (a *App) Advance(dt time.Duration) {
	if dt > maxFrameTime {
		dt = maxFrameTime
	}
	a.Clock.Advance(dt)
}

// Toggle stops a running simulation or restarts a stopped one.
func (a *App) Toggle() error {
	if a.Sim.Status() == sim.Running {
		a.Sim.Reset()
		return nil
	}
	return a.Sim.Run()
}

func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		if err := a.Toggle(); err != nil {
			return false
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.Sim.Reset()
	case rl.IsKeyPressed(rl.KeyC):
		a.Sim.ResetParticles()
	}
	a.Advance(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.Window.Render()
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	snap := a.Sim.Snapshot()
	rl.DrawText("brownsim", 20, 20, 20, ColSelect)

	status := "RUNNING"
	col := ColSelect
	if snap.Status != sim.Running {
		status = "STOPPED"
		col = ColTextDim
	}
	rl.DrawText(status, a.width-110, 20, 16, col)
	rl.DrawText(fmt.Sprintf("frame %d  redraws %d  E %.2f", snap.Frame, snap.Redraws, a.Energy.Last()), 20, 46, 14, ColText)
	rl.DrawText("[SPACE] RUN/STOP  [R] STOP  [C] RESET TO ORIGIN  [Q] QUIT", 20, a.height-30, 14, ColTextDim)

	a.drawTelemetry()
}

func (a *App) drawTelemetry() {
	hist := a.Energy.History()
	if len(hist) < 2 {
		return
	}

	rectX, rectY := float32(a.width-420), float32(a.height-90)
	width, height := float32(400), float32(50)

	minVal, maxVal := hist[0], hist[0]
	for _, v := range hist {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(hist))
	for i, v := range hist {
		px := rectX + float32(i)/float32(len(hist))*width
		py := rectY + height - float32((v-minVal)/(maxVal-minVal))*height
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
}

// Run opens a width x height window and runs until it is closed or Q is
// pressed.
func Run(cfg sim.Config, width, height int32, rng dynamo.RandomSource) error {
	rl.InitWindow(width, height, "brownsim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)

	app, err := NewApp(cfg, width, height, rng)
	if err != nil {
		return err
	}
	defer app.Sim.Reset()

	for !rl.WindowShouldClose() {
		if !app.Update() {
			break
		}
		app.Draw()
	}
	return nil
}
