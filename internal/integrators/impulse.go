package integrators

import "github.com/san-kum/brownsim/internal/dynamo"

// Impulse treats the applied force as an impulse: velocity receives force/m
// without scaling by elapsed time, then position integrates velocity over
// the tick. This is the discretisation
//
//	vx' = vx + fx/m        x' = x + vx'*t
//	vy' = vy + fy/m        y' = y + vy'*t
//
// of the continuous model x-dot = A x + B u using e^(At) ≈ I + At.
type Impulse struct{}

func NewImpulse() *Impulse {
	return &Impulse{}
}

func (i *Impulse) Name() string { return "impulse" }

func (i *Impulse) Step(k dynamo.Kinematics, force dynamo.Vec2, mass, dtMs float64) dynamo.Kinematics {
	dt := dtMs / 1000
	vel := k.Vel.Add(force.Scale(1 / mass))
	return dynamo.Kinematics{
		Pos: vel.Scale(dt).Add(k.Pos),
		Vel: vel,
	}
}
