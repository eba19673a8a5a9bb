package integrators

import "github.com/san-kum/mersenne/internal/dynamo"

// Classic Runge-Kutta tableau. Each stage only looks at the previous one.
var (
	rk4Nodes   = [4]float64{0, 0.5, 0.5, 1}
	rk4Weights = [4]float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6}
)

// RK4 is not symplectic: on a plucked string it slowly damps the highest
// grid modes, which leaves the fundamental intact.
type RK4 struct {
	k     [4]dynamo.State
	stage dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	n := len(x)
	if len(r.stage) != n {
		for s := range r.k {
			r.k[s] = make(dynamo.State, n)
		}
		r.stage = make(dynamo.State, n)
	}

	copy(r.k[0], dyn.Derive(x, t))
	for s := 1; s < len(r.k); s++ {
		axpy(r.stage, x, rk4Nodes[s]*dt, r.k[s-1])
		copy(r.k[s], dyn.Derive(r.stage, t+rk4Nodes[s]*dt))
	}

	out := x.Clone()
	for s, w := range rk4Weights {
		axpy(out, out, w*dt, r.k[s])
	}
	return out
}
