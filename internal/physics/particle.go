package physics

import (
	"github.com/san-kum/brownsim/internal/dynamo"
	"github.com/san-kum/brownsim/internal/integrators"
)

type Particle struct {
	state      dynamo.Kinematics
	force      dynamo.Vec2
	mass       float64
	integrator dynamo.Integrator
}

// NewParticle creates a unit-mass particle at (x, y) with zero velocity and force.
func NewParticle(x, y float64) *Particle {
	return NewParticleWithMass(x, y, 1)
}

func NewParticleWithMass(x, y, mass float64) *Particle {
	return &Particle{
		state:      dynamo.Kinematics{Pos: dynamo.Vec2{X: x, Y: y}},
		mass:       mass,
		integrator: integrators.NewImpulse(),
	}
}

// WithIntegrator replaces the update rule. A nil integrator keeps the current one.
func (p *Particle) WithIntegrator(integ dynamo.Integrator) *Particle {
	if integ != nil {
		p.integrator = integ
	}
	return p
}

// Step advances the particle by one tick of dtMs milliseconds using the
// force last passed to SetForce.
func (p *Particle) Step(dtMs float64) {
	p.state = p.integrator.Step(p.state, p.force, p.mass, dtMs)
}

func (p *Particle) SetForce(fx, fy float64) {
	p.force = dynamo.Vec2{X: fx, Y: fy}
}

// Reset moves the particle to the origin and stops it. Force and mass are kept.
func (p *Particle) Reset() {
	p.state = dynamo.Kinematics{}
}

func (p *Particle) Position() dynamo.Vec2 { return p.state.Pos }
func (p *Particle) Velocity() dynamo.Vec2 { return p.state.Vel }
func (p *Particle) Force() dynamo.Vec2    { return p.force }
func (p *Particle) Mass() float64         { return p.mass }

func (p *Particle) Kinematics() dynamo.Kinematics { return p.state }

func (p *Particle) Integrator() string { return p.integrator.Name() }

// KineticEnergy returns ½·m·|v|².
func (p *Particle) KineticEnergy() float64 {
	v := p.state.Vel.Norm()
	return 0.5 * p.mass * v * v
}
