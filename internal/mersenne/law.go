package mersenne

import (
	"fmt"
	"math"
)

// Mersenne's law, in the convention of the mersenne tool:
//
//	f = (L/2)·sqrt(T/μ)
//
// The four functions below are the same relation solved for each variable.

// Frequency returns (L/2)·sqrt(T/μ).
func Frequency(length, tension, linearMass float64) (float64, error) {
	if err := checkArgs([]Primary{PrimaryLength, PrimaryTension, PrimaryLinearMass}, length, tension, linearMass); err != nil {
		return 0, err
	}
	return length / 2 * math.Sqrt(tension/linearMass), nil
}

// Tension returns (2f/L)²·μ.
func Tension(linearMass, length, frequency float64) (float64, error) {
	if err := checkArgs([]Primary{PrimaryLinearMass, PrimaryLength, PrimaryFrequency}, linearMass, length, frequency); err != nil {
		return 0, err
	}
	k := 2 * frequency / length
	return k * k * linearMass, nil
}

// LinearMass returns T/(2f/L)².
func LinearMass(tension, length, frequency float64) (float64, error) {
	if err := checkArgs([]Primary{PrimaryTension, PrimaryLength, PrimaryFrequency}, tension, length, frequency); err != nil {
		return 0, err
	}
	k := 2 * frequency / length
	return tension / (k * k), nil
}

// Length returns 2f/sqrt(T/μ).
func Length(linearMass, tension, frequency float64) (float64, error) {
	if err := checkArgs([]Primary{PrimaryLinearMass, PrimaryTension, PrimaryFrequency}, linearMass, tension, frequency); err != nil {
		return 0, err
	}
	return 2 * frequency / math.Sqrt(tension/linearMass), nil
}

// WaveSpeed is the transverse wave speed sqrt(T/μ).
func WaveSpeed(tension, linearMass float64) (float64, error) {
	if err := checkArgs([]Primary{PrimaryTension, PrimaryLinearMass}, tension, linearMass); err != nil {
		return 0, err
	}
	return math.Sqrt(tension / linearMass), nil
}

func checkArgs(params []Primary, values ...float64) error {
	for i, v := range values {
		if err := checkPositive(params[i].String(), v); err != nil {
			return err
		}
	}
	return nil
}

// solver computes one primary from the other three, passed in the order
// given by inputs.
type solver struct {
	inputs [3]Primary
	solve  func(a, b, c float64) (float64, error)
}

var solvers = map[Primary]solver{
	PrimaryFrequency:  {[3]Primary{PrimaryLength, PrimaryTension, PrimaryLinearMass}, Frequency},
	PrimaryTension:    {[3]Primary{PrimaryLinearMass, PrimaryLength, PrimaryFrequency}, Tension},
	PrimaryLinearMass: {[3]Primary{PrimaryTension, PrimaryLength, PrimaryFrequency}, LinearMass},
	PrimaryLength:     {[3]Primary{PrimaryLinearMass, PrimaryTension, PrimaryFrequency}, Length},
}

// Solve computes the target primary from the other three already in ps.
// ps is not modified.
func Solve(ps *ParameterSet, target Primary) (float64, error) {
	s, ok := solvers[target]
	if !ok {
		return 0, fmt.Errorf("mersenne: %s is not a primary", target)
	}
	var args [3]float64
	for i, p := range s.inputs {
		v, ok := ps.Get(p)
		if !ok {
			return 0, &UnderdeterminedError{Missing: ps.Missing()}
		}
		args[i] = v
	}
	return s.solve(args[0], args[1], args[2])
}
