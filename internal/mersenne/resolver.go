package mersenne

// Resolver completes parameter sets. The zero value is not usable; use
// NewResolver. A Resolver is read-only once built and may be shared.
type Resolver struct {
	// Octave and BaseFrequency are used for note lookup when the set does
	// not carry its own.
	Octave        int
	BaseFrequency float64
}

func NewResolver() *Resolver {
	return &Resolver{
		Octave:        DefaultOctave,
		BaseFrequency: DefaultBaseFrequency,
	}
}

var defaultResolver = NewResolver()

// Complete resolves ps with the default octave and base frequency.
func Complete(ps *ParameterSet) error {
	return defaultResolver.Complete(ps)
}

// Resolve is Complete with the default resolver, reporting the solved primary.
func Resolve(ps *ParameterSet) (Primary, error) {
	return defaultResolver.Resolve(ps)
}

// Complete derives the auxiliaries, computes the single missing primary and
// back-fills the string geometry. ps is mutated in place; after an error its
// contents are unspecified.
func (r *Resolver) Complete(ps *ParameterSet) error {
	_, err := r.Resolve(ps)
	return err
}

// Resolve completes ps and returns the primary it solved for, which is only
// meaningful when err is nil.
func (r *Resolver) Resolve(ps *ParameterSet) (Primary, error) {
	if err := ps.Validate(); err != nil {
		return 0, err
	}

	if ps.Frequency == nil && ps.Note != nil {
		octave, base := r.Octave, r.BaseFrequency
		if ps.Octave != nil {
			octave = *ps.Octave
		}
		if ps.BaseFrequency != nil {
			base = *ps.BaseFrequency
		}
		f, err := NoteToFrequency(*ps.Note, octave, base)
		if err != nil {
			return 0, err
		}
		ps.Frequency = Float(f)
	}

	// diameter wins over a directly supplied radius
	if ps.Diameter != nil {
		ps.Radius = Float(*ps.Diameter / 2)
	}

	if ps.LinearMass == nil && ps.Radius != nil && ps.VolumicMass != nil {
		mu, err := RadiusToLinearMass(*ps.Radius, *ps.VolumicMass)
		if err != nil {
			return 0, err
		}
		ps.LinearMass = Float(mu)
	}

	missing := ps.Missing()
	switch len(missing) {
	case 0:
		return 0, ErrNothingToCompute
	case 1:
	default:
		return 0, &UnderdeterminedError{Missing: missing}
	}

	target := missing[0]
	v, err := Solve(ps, target)
	if err != nil {
		return 0, err
	}
	ps.Set(target, v)

	if ps.Radius == nil && ps.VolumicMass != nil {
		radius, err := LinearMassToRadius(*ps.LinearMass, *ps.VolumicMass)
		if err != nil {
			return 0, err
		}
		ps.Radius = Float(radius)
	}
	if ps.Radius != nil && ps.Diameter == nil {
		ps.Diameter = Float(*ps.Radius * 2)
	}
	return target, nil
}

// Validate checks that every physical value present is finite and positive.
func (ps *ParameterSet) Validate() error {
	fields := []struct {
		name string
		v    *float64
	}{
		{"frequency", ps.Frequency},
		{"tension", ps.Tension},
		{"linear_mass", ps.LinearMass},
		{"length", ps.Length},
		{"base_frequency", ps.BaseFrequency},
		{"diameter", ps.Diameter},
		{"radius", ps.Radius},
		{"volumic_mass", ps.VolumicMass},
	}
	for _, f := range fields {
		if f.v == nil {
			continue
		}
		if err := checkPositive(f.name, *f.v); err != nil {
			return err
		}
	}
	return nil
}
