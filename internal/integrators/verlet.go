package integrators

import "github.com/san-kum/mersenne/internal/dynamo"

// Both schemes below expect states laid out as [positions, velocities] and
// accelerations that depend on positions and time only, as for a string.
// Stepping the state they returned costs a single Derive call.

// Verlet is velocity Verlet.
type Verlet struct {
	fsal
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	h := len(x) / 2
	acc := v.start(dyn, x, t)

	out := make(dynamo.State, len(x))
	for i := 0; i < h; i++ {
		out[i] = x[i] + dt*(x[h+i]+0.5*dt*acc[h+i])
		out[h+i] = x[h+i]
	}

	next := dyn.Derive(out, t+dt)
	for i := 0; i < h; i++ {
		out[h+i] += 0.5 * dt * (acc[h+i] + next[h+i])
	}
	v.end(out, next)
	return out
}

// Leapfrog is the kick-drift-kick form of the same scheme.
type Leapfrog struct {
	fsal
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	h := len(x) / 2
	acc := l.start(dyn, x, t)

	out := make(dynamo.State, len(x))
	for i := 0; i < h; i++ {
		out[h+i] = x[h+i] + 0.5*dt*acc[h+i]
		out[i] = x[i] + dt*out[h+i]
	}

	next := dyn.Derive(out, t+dt)
	for i := 0; i < h; i++ {
		out[h+i] += 0.5 * dt * next[h+i]
	}
	l.end(out, next)
	return out
}
