// Package dynamo provides the simulation primitives used to check string
// frequencies numerically.
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical stepper
//   - [Simulator]: runs a system and records a probe signal
//
// # Example
//
//	str := physics.NewString(48, 0.65, 80, 0.005)
//	sim := dynamo.New(str, integrators.NewVerlet())
//	result, _ := sim.Run(ctx, str.Pluck(0.5, 0.002), cfg)
//
// Simulator instances are NOT thread-safe.
package dynamo
