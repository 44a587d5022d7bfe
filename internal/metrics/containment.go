package metrics

import "github.com/san-kum/brownsim/internal/physics"

// Containment is the fraction of ticks on which every particle was still
// inside the canvas. Nothing keeps particles in bounds, so it decays as
// the random walk spreads out.
type Containment struct {
	name          string
	width, height float64
	violations    int
	samples       int
}

func NewContainment(width, height float64) *Containment {
	return &Containment{
		name:   "containment",
		width:  width,
		height: height,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(particles []physics.Particle) {
	c.samples++
	for i := range particles {
		pos := particles[i].Position()
		if pos.X < 0 || pos.Y < 0 || pos.X > c.width || pos.Y > c.height {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
