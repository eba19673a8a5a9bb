// Package physics provides a discretized vibrating string for simulation.
//
// [String] implements the [dynamo.System] interface with the 1D wave
// equation y_tt = (T/μ) y_xx on N grid points with fixed ends, and
// [dynamo.Hamiltonian] for energy monitoring:
//
//	str := physics.NewString(48, 0.65, 80, 0.005)
//	x0 := str.Pluck(0.5, 0.002)
//	energy := str.Energy(x0)
//
// The state is laid out as N displacements followed by N velocities.
package physics
