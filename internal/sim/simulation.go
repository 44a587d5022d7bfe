package sim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/physics"
)

// Simulation owns a fixed set of particles and the recurring timer that
// drives them. Every tick assigns each particle a fresh random force, steps
// it by the nominal period and redraws the scene.
type Simulation struct {
	mu sync.Mutex

	surface dynamo.Surface
	timer   dynamo.Timer
	rng     dynamo.RandomSource

	cfg         Config
	particles   []*physics.Particle
	initialized bool
	status      Status
	handle      dynamo.Handle

	frame     uint64
	redraws   uint64
	observers []Observer
}

// New wires the collaborators. A nil rng is replaced by a time-seeded source.
func New(surface dynamo.Surface, timer dynamo.Timer, rng dynamo.RandomSource) *Simulation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulation{
		surface:   surface,
		timer:     timer,
		rng:       rng,
		observers: make([]Observer, 0),
	}
}

func (s *Simulation) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Init creates cfg.Particles particles at cfg.Origin. It may be called once.
func (s *Simulation) Init(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return dynamo.ErrAlreadyInitialized
	}
	if s.surface == nil {
		return dynamo.ErrNoSurface
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.cfg = cfg
	s.particles = make([]*physics.Particle, 0, cfg.Particles)
	for i := 0; i < cfg.Particles; i++ {
		p := physics.NewParticleWithMass(cfg.Origin.X, cfg.Origin.Y, cfg.Mass).WithIntegrator(cfg.Integrator)
		s.particles = append(s.particles, p)
	}
	s.initialized = true
	return nil
}

// Run schedules the recurring tick. A running simulation is restarted on a
// fresh handle; the previous one is cancelled first.
func (s *Simulation) Run() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return dynamo.ErrNotInitialized
	}
	if s.timer == nil {
		return dynamo.ErrNoTimer
	}

	s.cancelLocked()

	// the callback may fire on another goroutine before Schedule returns;
	// it reads the handle under the lock, after Run has stored it
	h := new(dynamo.Handle)
	*h = s.timer.Schedule(s.cfg.Interval(), func() { s.tickRef(h) })
	s.handle = *h
	s.status = Running
	return nil
}

// Reset cancels the recurring tick. It is a no-op when nothing is scheduled.
func (s *Simulation) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *Simulation) cancelLocked() {
	if s.handle == 0 {
		return
	}
	s.timer.Cancel(s.handle)
	s.handle = 0
	s.status = Stopped
}

// tickRef reads the handle under the lock, since Run stores it after
// Schedule has already returned.
func (s *Simulation) tickRef(h *dynamo.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked(*h)
}

func (s *Simulation) tickLocked(h dynamo.Handle) {
	// late firing of a handle that has since been cancelled or replaced
	if h == 0 || h != s.handle {
		return
	}

	s.frame++
	span := s.cfg.ForceMax - s.cfg.ForceMin
	for _, p := range s.particles {
		fx := span*s.rng.Float64() + s.cfg.ForceMin
		fy := span*s.rng.Float64() + s.cfg.ForceMin
		p.SetForce(fx, fy)
		p.Step(s.cfg.IntervalMs)
		s.drawLocked()
	}

	if len(s.observers) == 0 {
		return
	}
	particles := s.copyParticles()
	for _, o := range s.observers {
		o.OnTick(s.frame, particles)
	}
}

// Draw renders the current particle positions to the surface.
func (s *Simulation) Draw() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawLocked()
}

func (s *Simulation) drawLocked() {
	Draw(s.surface, s.particles, s.cfg.Radius, s.cfg.Style)
	s.redraws++
}

// ResetParticles moves every particle to (0, 0), the top-left corner of the
// canvas, and stops it, then redraws. The timer is left alone.
func (s *Simulation) ResetParticles() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.particles {
		p.Reset()
	}
	if s.initialized {
		s.drawLocked()
	}
}

func (s *Simulation) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Simulation) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Status:    s.status,
		Frame:     s.frame,
		Redraws:   s.redraws,
		Particles: s.copyParticles(),
	}
}

func (s *Simulation) copyParticles() []physics.Particle {
	out := make([]physics.Particle, len(s.particles))
	for i, p := range s.particles {
		out[i] = *p
	}
	return out
}

// Draw clears the surface and strokes one circle per particle. Surfaces that
// buffer output are flushed afterwards.
func Draw(surface dynamo.Surface, particles []*physics.Particle, radius float64, style dynamo.Style) {
	surface.Clear()
	for _, p := range particles {
		surface.DrawCircle(p.Position(), radius, style)
	}
	if f, ok := surface.(dynamo.Flusher); ok {
		f.Flush()
	}
}
