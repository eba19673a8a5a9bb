package analysis

import (
	"fmt"

	"github.com/san-kum/mersenne/internal/mersenne"
)

type SweepPoint struct {
	X, Y float64
}

// Sweep varies one primary linearly from..to and solves for another at each
// step. The two remaining primaries are taken from ps, which must hold them.
func Sweep(ps *mersenne.ParameterSet, vary, solve mersenne.Primary, from, to float64, steps int) ([]SweepPoint, error) {
	if vary == solve {
		return nil, fmt.Errorf("cannot sweep and solve %s at once", vary)
	}
	if steps <= 1 {
		steps = 2 // Prevent division by zero
	}
	step := (to - from) / float64(steps-1)

	points := make([]SweepPoint, 0, steps)
	for i := 0; i < steps; i++ {
		x := from + float64(i)*step
		c := ps.Clone()
		c.Set(vary, x)
		c.Clear(solve)
		y, err := mersenne.Solve(c, solve)
		if err != nil {
			return nil, fmt.Errorf("%s=%g: %w", vary, x, err)
		}
		points = append(points, SweepPoint{X: x, Y: y})
	}
	return points, nil
}

// Ys returns the solved values, ready for plotting.
func Ys(points []SweepPoint) []float64 {
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	return ys
}
