package metrics

import (
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/physics"
)

type Metric interface {
	Name() string
	Observe(particles []physics.Particle)
	Value() float64
	Reset()
}

// Set fans a tick out to several metrics. It satisfies sim.Observer.
type Set struct {
	metrics []Metric
	ticks   uint64
}

func NewSet(m ...Metric) *Set {
	return &Set{metrics: m}
}

func (s *Set) Add(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Set) OnTick(frame uint64, particles []physics.Particle) {
	s.ticks++
	for _, m := range s.metrics {
		m.Observe(particles)
	}
}

// Ticks is the number of ticks observed since the last Reset.
func (s *Set) Ticks() uint64 { return s.ticks }

func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (s *Set) Reset() {
	s.ticks = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Default returns the metrics reported for every run.
func Default(origin dynamo.Vec2, width, height float64) *Set {
	return NewSet(
		NewEnergy(),
		NewSpread(origin.X, origin.Y),
		NewMaxSpeed(),
		NewContainment(width, height),
	)
}
