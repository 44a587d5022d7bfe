package metrics

import "github.com/san-kum/brownsim/internal/physics"

const historyCapacity = 240

// Energy tracks the total kinetic energy of the system. Value is the mean
// over all observed ticks; Last and History expose the recent series.
type Energy struct {
	name        string
	samples     int
	totalEnergy float64
	last        float64
	history     []float64
}

func NewEnergy() *Energy {
	return &Energy{
		name:    "kinetic_energy",
		history: make([]float64, 0, historyCapacity),
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(particles []physics.Particle) {
	total := 0.0
	for i := range particles {
		total += particles[i].KineticEnergy()
	}
	e.last = total
	e.totalEnergy += total
	e.samples++

	if len(e.history) == historyCapacity {
		copy(e.history, e.history[1:])
		e.history = e.history[:historyCapacity-1]
	}
	e.history = append(e.history, total)
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Last() float64 { return e.last }

// History returns up to the last 240 per-tick totals, oldest first.
func (e *Energy) History() []float64 {
	out := make([]float64, len(e.history))
	copy(out, e.history)
	return out
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
	e.last = 0
	e.history = e.history[:0]
}
