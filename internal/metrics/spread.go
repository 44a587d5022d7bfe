package metrics

import (
	"math"

	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/physics"
)

// Spread is the mean distance of the particles from their spawn point,
// measured on the most recent tick.
type Spread struct {
	name   string
	origin dynamo.Vec2
	value  float64
}

func NewSpread(x, y float64) *Spread {
	return &Spread{name: "spread", origin: dynamo.Vec2{X: x, Y: y}}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(particles []physics.Particle) {
	if len(particles) == 0 {
		s.value = 0
		return
	}
	sum := 0.0
	for i := range particles {
		sum += particles[i].Position().Sub(s.origin).Norm()
	}
	s.value = sum / float64(len(particles))
}

func (s *Spread) Value() float64 { return s.value }
func (s *Spread) Reset()         { s.value = 0 }

// MaxSpeed is the highest particle speed seen since the last reset.
type MaxSpeed struct {
	name string
	max  float64
}

func NewMaxSpeed() *MaxSpeed {
	return &MaxSpeed{name: "max_speed"}
}

func (m *MaxSpeed) Name() string { return m.name }

func (m *MaxSpeed) Observe(particles []physics.Particle) {
	for i := range particles {
		m.max = math.Max(m.max, particles[i].Velocity().Norm())
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
