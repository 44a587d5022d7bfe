// Package dynamo provides the shared vocabulary of the particle simulation.
//
// The package defines the value types and collaborator interfaces that the
// rest of the module is written against:
//
//   - [Vec2]: planar vector used for position, velocity and force
//   - [Kinematics]: position and velocity of a point mass
//   - [Integrator]: single-step update rule for a point mass
//   - [Surface]: rendering surface that can clear itself and stroke circles
//   - [RandomSource]: uniform sampling in [0, 1)
//   - [Timer]: recurring callback service
//
// # Example
//
//	p := physics.NewParticle(400, 300)
//	p.SetForce(2, 0)
//	p.Step(10)
//
// # Thread Safety
//
// Values in this package are plain data. Implementations of [Surface] and
// [Timer] document their own guarantees.
package dynamo
