package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/mersenne/internal/dynamo"
)

// String is an ideal string fixed at both ends, discretized into N points
// with second-order finite differences. State is [u_0..u_N-1, v_0..v_N-1]
// with displacements in metres. Units are SI.
type String struct {
	N                           int
	Length, Tension, LinearMass float64
	dx                          float64
}

func NewString(n int, length, tension, linearMass float64) *String {
	if n < 3 {
		n = 3
	}
	return &String{n, length, tension, linearMass, length / float64(n-1)}
}

func (s *String) StateDim() int { return 2 * s.N }

// Dx is the spacing between grid points.
func (s *String) Dx() float64 { return s.dx }

// WaveSpeed is sqrt(T/μ).
func (s *String) WaveSpeed() float64 {
	return math.Sqrt(s.Tension / s.LinearMass)
}

func (s *String) Derive(x dynamo.State, _ float64) dynamo.State {
	n := s.N
	d := make(dynamo.State, 2*n)
	if len(x) < 2*n {
		return d
	}
	c2, h2 := s.Tension/s.LinearMass, s.dx*s.dx
	// endpoints stay clamped: zero velocity and acceleration
	for i := 1; i < n-1; i++ {
		d[i] = x[n+i]
		d[n+i] = c2 * (x[i-1] - 2*x[i] + x[i+1]) / h2
	}
	return d
}

// Pluck returns a resting triangular displacement peaking with amp at
// fraction at of the length (0 < at < 1).
func (s *String) Pluck(at, amp float64) dynamo.State {
	x := make(dynamo.State, 2*s.N)
	peak := int(at*float64(s.N-1) + 0.5)
	if peak < 1 {
		peak = 1
	}
	if peak > s.N-2 {
		peak = s.N - 2
	}
	for i := 0; i < s.N; i++ {
		if i <= peak {
			x[i] = amp * float64(i) / float64(peak)
		} else {
			x[i] = amp * float64(s.N-1-i) / float64(s.N-1-peak)
		}
	}
	return x
}

// Energy is kinetic plus elastic energy in joules.
func (s *String) Energy(x dynamo.State) float64 {
	n, ke, pe := s.N, 0.0, 0.0
	if len(x) < 2*n {
		return 0
	}
	for i := 0; i < n; i++ {
		v := x[n+i]
		ke += 0.5 * s.LinearMass * v * v * s.dx
		if i < n-1 {
			dudx := (x[i+1] - x[i]) / s.dx
			pe += 0.5 * s.Tension * dudx * dudx * s.dx
		}
	}
	return ke + pe
}

func (s *String) GetParams() map[string]float64 {
	return map[string]float64{"tension": s.Tension, "linear_mass": s.LinearMass, "length": s.Length}
}

func (s *String) SetParam(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, v)
	}
	switch name {
	case "tension":
		s.Tension = v
	case "linear_mass":
		s.LinearMass = v
	case "length":
		s.Length, s.dx = v, v/float64(s.N-1)
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}
