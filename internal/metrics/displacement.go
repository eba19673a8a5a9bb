package metrics

import (
	"math"

	"github.com/san-kum/mersenne/internal/dynamo"
)

// PeakDisplacement tracks the largest |x[i]| over the first n state
// components, the positions of a layout like [y..., v...].
type PeakDisplacement struct {
	n    int
	peak float64
}

func NewPeakDisplacement(n int) *PeakDisplacement {
	return &PeakDisplacement{n: n}
}

func (p *PeakDisplacement) Name() string { return "peak_displacement" }

func (p *PeakDisplacement) Observe(x dynamo.State, t float64) {
	for i := 0; i < p.n && i < len(x); i++ {
		p.peak = math.Max(p.peak, math.Abs(x[i]))
	}
}

func (p *PeakDisplacement) Value() float64 { return p.peak }

func (p *PeakDisplacement) Reset() { p.peak = 0 }

// Stability is the fraction of samples whose positions all stay within
// threshold. A plucked string that grows past its initial amplitude is
// numerically unstable.
type Stability struct {
	n          int
	threshold  float64
	violations int
	samples    int
}

func NewStability(n int, threshold float64) *Stability {
	return &Stability{n: n, threshold: threshold}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x dynamo.State, t float64) {
	s.samples++
	for i := 0; i < s.n && i < len(x); i++ {
		if math.Abs(x[i]) > s.threshold {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
