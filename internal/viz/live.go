package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/metrics"
	"github.com/san-kum/brownsim/internal/sim"
)

const (
	width  = 60
	height = 22
)

// Model is the bubbletea program for the live view. The simulation draws
// straight onto the Braille canvas from inside Update.
type Model struct {
	sim       *sim.Simulation
	timer     *TeaTimer
	canvas    *Canvas
	metrics   *metrics.Set
	energy    *metrics.Energy
	spread    *metrics.Spread
	stroke    string
	title     string
	showGraph bool
	showHelp  bool
	err       error
}

// NewModel builds, initialises and starts a simulation on a canvas that
// maps a worldW x worldH world.
func NewModel(cfg sim.Config, worldW, worldH float64, rng dynamo.RandomSource, title string) (Model, error) {
	canvas := NewCanvas(width, height)
	canvas.SetWorld(worldW, worldH)

	timer := NewTeaTimer()
	s := sim.New(canvas, timer, rng)

	energy := metrics.NewEnergy()
	spread := metrics.NewSpread(cfg.Origin.X, cfg.Origin.Y)
	set := metrics.NewSet(energy, spread, metrics.NewMaxSpeed(), metrics.NewContainment(worldW, worldH))
	s.AddObserver(set)

	if err := s.Init(cfg); err != nil {
		return Model{}, err
	}
	s.Draw()
	if err := s.Run(); err != nil {
		return Model{}, err
	}

	return Model{
		sim:     s,
		timer:   timer,
		canvas:  canvas,
		metrics: set,
		energy:  energy,
		spread:  spread,
		stroke:  cfg.Style.Stroke,
		title:   title,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.timer.Cmds()
}

// Update handles input events and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, m.timer.Fire(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.sim.Reset()
			return m, tea.Quit
		case " ":
			if m.sim.Status() == sim.Running {
				m.sim.Reset()
			} else {
				m.err = m.sim.Run()
			}
		case "r":
			m.sim.Reset()
		case "c":
			m.sim.ResetParticles()
			m.metrics.Reset()
		case "g":
			m.showGraph = !m.showGraph
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, m.timer.Cmds()
}

// View renders the canvas and the stats panel side by side.
func (m Model) View() string {
	snap := m.sim.Snapshot()

	status := StatusRunning.Render("RUNNING")
	if snap.Status != sim.Running {
		status = StatusPaused.Render(strings.ToUpper(snap.Status.String()))
	}

	var stats strings.Builder
	stats.WriteString(status + "\n\n")
	stats.WriteString(row("frame", fmt.Sprintf("%d", snap.Frame)))
	stats.WriteString(row("redraws", fmt.Sprintf("%d", snap.Redraws)))
	stats.WriteString(row("samples", fmt.Sprintf("%d", m.metrics.Ticks())))
	stats.WriteString(row("particles", fmt.Sprintf("%d", len(snap.Particles))))
	stats.WriteString(row("energy", fmt.Sprintf("%.2f", m.energy.Last())))
	stats.WriteString(row("spread", fmt.Sprintf("%.2f", m.spread.Value())))
	stats.WriteString("\n" + SparklineChart(m.energy.History(), 30) + "\n")

	if m.showGraph {
		if hist := m.energy.History(); len(hist) > 1 {
			stats.WriteString("\n" + asciigraph.Plot(hist,
				asciigraph.Height(6),
				asciigraph.Width(30),
				asciigraph.Caption("kinetic energy")) + "\n")
		}
	}

	if len(snap.Particles) > 0 {
		p := snap.Particles[0]
		stats.WriteString("\n" + Subtle.Render("p0 "+p.Position().String()) + "\n")
	}
	if m.err != nil {
		stats.WriteString("\n" + StatusPaused.Render(m.err.Error()) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle(m.stroke).Render(strings.TrimRight(m.canvas.String(), "\n")),
		GlassPanel.Render(stats.String()),
	)

	var s strings.Builder
	s.WriteString(headerStyle().Render(m.title) + "\n")
	s.WriteString(body + "\n")
	if m.showHelp {
		s.WriteString(KeyHint.Render("space run/stop  r reset timer  c reset to origin  g graph  t theme  q quit") + "\n")
	} else {
		s.WriteString(KeyHint.Render("? help") + "\n")
	}
	return s.String()
}

func row(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value) + "\n"
}

// Simulation exposes the running simulation.
func (m Model) Simulation() *sim.Simulation { return m.sim }

// Run starts the live view and blocks until the user quits.
func Run(cfg sim.Config, worldW, worldH float64, rng dynamo.RandomSource, title string) error {
	m, err := NewModel(cfg, worldW, worldH, rng, title)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
