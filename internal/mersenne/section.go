package mersenne

import "math"

// RadiusToLinearMass returns the mass per metre of a solid round string.
func RadiusToLinearMass(radius, volumicMass float64) (float64, error) {
	if err := checkPositive("radius", radius); err != nil {
		return 0, err
	}
	if err := checkPositive("volumic_mass", volumicMass); err != nil {
		return 0, err
	}
	return volumicMass * math.Pi * radius * radius, nil
}

// LinearMassToRadius is the inverse of RadiusToLinearMass.
func LinearMassToRadius(linearMass, volumicMass float64) (float64, error) {
	if err := checkPositive("linear_mass", linearMass); err != nil {
		return 0, err
	}
	if err := checkPositive("volumic_mass", volumicMass); err != nil {
		return 0, err
	}
	return math.Sqrt(linearMass / (volumicMass * math.Pi)), nil
}

func checkPositive(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ValueError{Param: param, Value: v}
	}
	return nil
}
