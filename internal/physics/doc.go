// Package physics provides the point particle driven by the simulation.
//
// A [Particle] owns its kinematic state and the force applied for the
// current tick. Position and velocity change only through [Particle.Step]
// and [Particle.Reset]; the force changes only through [Particle.SetForce].
//
//	p := physics.NewParticle(400, 300)
//	p.SetForce(2, 0)
//	p.Step(1000) // velocity (2, 0), position (402, 300)
//
// The update rule defaults to [integrators.Impulse], which increments the
// velocity by force/m without scaling by elapsed time. Inputs are not
// validated: NaN or infinite forces propagate into the state unchanged.
package physics
