// Package mersenne solves the ideal vibrating-string relation between
// frequency, tension, linear mass and length.
//
// The package is organised around a single record and a resolver:
//
//   - [ParameterSet]: optional fields for the four primaries and the
//     auxiliary values (note, octave, base frequency, diameter, radius,
//     volumic mass), all in SI units
//   - [Resolver]: derives auxiliaries, finds the one missing primary and
//     computes it
//   - [Frequency], [Tension], [LinearMass], [Length]: the four closed forms
//     of Mersenne's law
//
// # Example
//
//	ps := &mersenne.ParameterSet{
//	    Note:       mersenne.String("e"),
//	    Octave:     mersenne.Int(2),
//	    Tension:    mersenne.Float(70),
//	    LinearMass: mersenne.Float(0.0063),
//	}
//	computed, err := mersenne.Resolve(ps)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(computed, *ps.Length) // length 1.56...
//
// # Thread Safety
//
// All functions are pure apart from [Resolver.Resolve] and [Resolver.Complete], which mutate only
// the ParameterSet it is given. Distinct sets may be resolved concurrently.
package mersenne
