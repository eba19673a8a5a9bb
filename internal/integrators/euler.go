package integrators

import "github.com/san-kum/mersenne/internal/dynamo"

// Euler is the explicit first-order method. On a string it pumps energy
// into the high modes, so it serves as a baseline only.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	out := make(dynamo.State, len(x))
	axpy(out, x, dt, dyn.Derive(x, t))
	return out
}
