// Package analysis computes statistics over recorded runs.
//
//   - [MeanSquaredDisplacement] and [ScalingExponent]: how fast the cloud spreads
//   - [PowerSpectrum]: frequency content of a velocity series
//   - [PhasePortrait]: one particle's trajectory in a plane of its state
package analysis
