// Package viz provides the terminal live view of a particle simulation.
//
// The view is a Bubble Tea program:
//
//   - [Canvas]: Braille pixel canvas implementing the rendering surface
//   - [TeaTimer]: timer service whose callbacks run inside Update
//   - [Model]: the live view with a statistics panel
//
// # Key Bindings
//
//	Space - Stop/Run the timer
//	R     - Stop the timer
//	C     - Move every particle back to the origin
//	G     - Toggle the kinetic energy graph
//	T     - Cycle color themes
//	?     - Show key hints
//	Q     - Quit
package viz
