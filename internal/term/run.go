package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/brownsim/internal/clock"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/sim"
)

// App runs a simulation on a tcell screen with a real ticker.
type App struct {
	screen  tcell.Screen
	surface *Screen
	ticker  *clock.Ticker
	sim     *sim.Simulation
}

// NewApp builds and initialises the simulation; the screen must already be
// initialised by the caller.
func NewApp(screen tcell.Screen, cfg sim.Config, worldW, worldH float64, rng dynamo.RandomSource) (*App, error) {
	surface := NewScreen(screen, worldW, worldH)
	ticker := clock.NewTicker()
	s := sim.New(surface, ticker, rng)
	if err := s.Init(cfg); err != nil {
		return nil, fmt.Errorf("init simulation: %w", err)
	}
	a := &App{screen: screen, surface: surface, ticker: ticker, sim: s}
	a.updateStatus()
	s.Draw()
	return a, nil
}

func (a *App) Simulation() *sim.Simulation { return a.sim }

func (a *App) updateStatus() {
	a.surface.SetStatus(fmt.Sprintf(" brownsim  %s  space run/stop  c reset to origin  q quit", a.sim.Status()))
}

// HandleEvent applies one input event and reports whether the app should
// keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				if a.sim.Status() == sim.Running {
					a.sim.Reset()
				} else if err := a.sim.Run(); err != nil {
					return false
				}
			case 'r':
				a.sim.Reset()
			case 'c':
				a.sim.ResetParticles()
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		return false
	}
	a.updateStatus()
	a.sim.Draw()
	return true
}

// Run starts the ticker and processes events until the user quits or ctx is
// cancelled. The timer is cancelled before it returns.
func (a *App) Run(ctx context.Context) error {
	defer a.ticker.Close()
	defer a.sim.Reset()

	if err := a.sim.Run(); err != nil {
		return err
	}
	a.updateStatus()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return nil
			}
		}
	}
}

// Run opens the terminal, runs the simulation and restores the terminal.
func Run(ctx context.Context, cfg sim.Config, worldW, worldH float64, rng dynamo.RandomSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	app, err := NewApp(screen, cfg, worldW, worldH, rng)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
