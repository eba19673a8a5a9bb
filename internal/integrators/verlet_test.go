package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/mersenne/internal/dynamo"
)

// counting wraps the oscillator and counts Derive calls.
type counting struct {
	oscillator
	calls int
}

func (c *counting) Derive(x dynamo.State, t float64) dynamo.State {
	c.calls++
	return c.oscillator.Derive(x, t)
}

func TestSymplecticReusesAcceleration(t *testing.T) {
	for _, name := range []string{"verlet", "leapfrog"} {
		t.Run(name, func(t *testing.T) {
			integ, err := Get(name)
			if err != nil {
				t.Fatal(err)
			}
			dyn := &counting{}
			x := dynamo.State{1.0, 0.0}

			steps := 50
			for i := 0; i < steps; i++ {
				x = integ.Step(dyn, x, float64(i)*0.01, 0.01)
			}
			if dyn.calls != steps+1 {
				t.Errorf("expected %d Derive calls, got %d", steps+1, dyn.calls)
			}

			// a state the integrator did not produce is evaluated afresh
			dyn.calls = 0
			integ.Step(dyn, x.Clone(), 0.5, 0.01)
			if dyn.calls != 2 {
				t.Errorf("expected 2 Derive calls on a foreign state, got %d", dyn.calls)
			}
		})
	}
}

func TestSymplecticMatchesUncached(t *testing.T) {
	cached, fresh := NewVerlet(), NewVerlet()
	dyn := &oscillator{}
	a := dynamo.State{1.0, 0.0}
	b := dynamo.State{1.0, 0.0}

	for i := 0; i < 200; i++ {
		a = cached.Step(dyn, a, 0, 0.02)
		b = fresh.Step(dyn, b.Clone(), 0, 0.02)
	}
	if math.Abs(a[0]-b[0]) > 1e-15 || math.Abs(a[1]-b[1]) > 1e-15 {
		t.Errorf("cached %v and uncached %v diverge", a, b)
	}
}
