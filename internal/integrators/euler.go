package integrators

import "github.com/san-kum/brownsim/internal/dynamo"

// Euler is semi-implicit Euler with the acceleration scaled by elapsed time.
// It is still first order; unlike Impulse the force is a true force.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(k dynamo.Kinematics, force dynamo.Vec2, mass, dtMs float64) dynamo.Kinematics {
	dt := dtMs / 1000
	vel := k.Vel.Add(force.Scale(dt / mass))
	return dynamo.Kinematics{
		Pos: k.Pos.Add(vel.Scale(dt)),
		Vel: vel,
	}
}
