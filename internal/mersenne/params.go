package mersenne

// Primary enumerates the four quantities tied together by Mersenne's law.
type Primary int

const (
	PrimaryFrequency Primary = iota
	PrimaryTension
	PrimaryLinearMass
	PrimaryLength
)

// Primaries lists the primaries in resolution order.
var Primaries = []Primary{PrimaryFrequency, PrimaryTension, PrimaryLinearMass, PrimaryLength}

func (p Primary) String() string {
	switch p {
	case PrimaryFrequency:
		return "frequency"
	case PrimaryTension:
		return "tension"
	case PrimaryLinearMass:
		return "linear_mass"
	case PrimaryLength:
		return "length"
	}
	return "unknown"
}

// ParsePrimary maps a parameter name back to its Primary.
func ParsePrimary(name string) (Primary, bool) {
	for _, p := range Primaries {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// ParameterSet is the record passed through input, resolution and output.
// A nil field means the value is unknown. Physical values are SI.
type ParameterSet struct {
	Frequency  *float64 `json:"frequency,omitempty"`
	Tension    *float64 `json:"tension,omitempty"`
	LinearMass *float64 `json:"linear_mass,omitempty"`
	Length     *float64 `json:"length,omitempty"`

	Note          *string  `json:"note,omitempty"`
	Octave        *int     `json:"octave,omitempty"`
	BaseFrequency *float64 `json:"base_frequency,omitempty"`
	Diameter      *float64 `json:"diameter,omitempty"`
	Radius        *float64 `json:"radius,omitempty"`
	VolumicMass   *float64 `json:"volumic_mass,omitempty"`
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

func (ps *ParameterSet) field(p Primary) **float64 {
	switch p {
	case PrimaryFrequency:
		return &ps.Frequency
	case PrimaryTension:
		return &ps.Tension
	case PrimaryLinearMass:
		return &ps.LinearMass
	case PrimaryLength:
		return &ps.Length
	}
	return nil
}

// Get returns the primary's value and whether it is known.
func (ps *ParameterSet) Get(p Primary) (float64, bool) {
	v := *ps.field(p)
	if v == nil {
		return 0, false
	}
	return *v, true
}

func (ps *ParameterSet) Set(p Primary, v float64) {
	*ps.field(p) = Float(v)
}

func (ps *ParameterSet) Clear(p Primary) {
	*ps.field(p) = nil
}

// Missing lists the primaries without a value, in resolution order.
func (ps *ParameterSet) Missing() []Primary {
	var missing []Primary
	for _, p := range Primaries {
		if _, ok := ps.Get(p); !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Clone returns a deep copy so callers can resolve variants independently.
func (ps *ParameterSet) Clone() *ParameterSet {
	c := &ParameterSet{}
	c.Frequency = cloneFloat(ps.Frequency)
	c.Tension = cloneFloat(ps.Tension)
	c.LinearMass = cloneFloat(ps.LinearMass)
	c.Length = cloneFloat(ps.Length)
	c.BaseFrequency = cloneFloat(ps.BaseFrequency)
	c.Diameter = cloneFloat(ps.Diameter)
	c.Radius = cloneFloat(ps.Radius)
	c.VolumicMass = cloneFloat(ps.VolumicMass)
	if ps.Note != nil {
		c.Note = String(*ps.Note)
	}
	if ps.Octave != nil {
		c.Octave = Int(*ps.Octave)
	}
	return c
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}
