package units

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SI unit symbols as displayed.
const (
	Hertz   = "Hz"
	Newton  = "N"
	KgPerM  = "kg/m"
	Metre   = "m"
	KgPerM3 = "kg/m³"

	// Auto asks Format to pick a compact unit.
	Auto = "auto"
)

// StandardGravity converts kilogram-force to newtons.
const StandardGravity = 9.80665

// ParamUnits maps each physical parameter to its SI unit.
var ParamUnits = map[string]string{
	"frequency":      Hertz,
	"tension":        Newton,
	"linear_mass":    KgPerM,
	"length":         Metre,
	"diameter":       Metre,
	"radius":         Metre,
	"volumic_mass":   KgPerM3,
	"base_frequency": Hertz,
}

// dimension groups the units sharing one SI base. factors hold the SI value
// of one unit; compact lists units from smallest to largest for Compact.
type dimension struct {
	si      string
	factors map[string]float64
	compact []string
}

const (
	pound = 0.45359237
	inch  = 0.0254
)

var dimensions = []*dimension{
	{
		si: Hertz,
		factors: map[string]float64{
			"Hz": 1, "mHz": 1e-3, "kHz": 1e3, "MHz": 1e6,
		},
		compact: []string{"mHz", "Hz", "kHz", "MHz"},
	},
	{
		si: Newton,
		factors: map[string]float64{
			"N": 1, "mN": 1e-3, "daN": 10, "kN": 1e3,
			"kgf": StandardGravity, "kp": StandardGravity, "gf": StandardGravity / 1000,
			"lbf": pound * StandardGravity,
		},
		compact: []string{"mN", "N", "kN"},
	},
	{
		si: KgPerM,
		factors: map[string]float64{
			"kg/m": 1, "g/m": 1e-3, "mg/m": 1e-6, "g/cm": 0.1, "g/mm": 1, "kg/km": 1e-3,
			"lb/in": pound / inch,
		},
		compact: []string{"mg/m", "g/m", "kg/m"},
	},
	{
		si: Metre,
		factors: map[string]float64{
			"m": 1, "dm": 0.1, "cm": 1e-2, "mm": 1e-3, "μm": 1e-6, "um": 1e-6, "km": 1e3,
			"in": inch, "ft": 12 * inch,
		},
		compact: []string{"μm", "mm", "m", "km"},
	},
	{
		si: KgPerM3,
		factors: map[string]float64{
			"kg/m3": 1, "g/m3": 1e-3, "g/cm3": 1e3, "kg/dm3": 1e3, "g/ml": 1e3, "kg/l": 1e3,
			"lb/in3": pound / (inch * inch * inch),
		},
		compact: []string{"g/m3", "kg/m3"},
	},
}

// normalize folds compatibility characters (³, µ) and strips spaces.
func normalize(unit string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(unit)), "")
}

var folder = cases.Fold()

// lookup finds the dimension and factor of unit. A case-insensitive match is
// accepted only when it is unique across all dimensions.
func lookup(unit string) (*dimension, string, float64, bool) {
	key := normalize(unit)
	for _, d := range dimensions {
		if f, ok := d.factors[key]; ok {
			return d, key, f, true
		}
	}

	folded := folder.String(key)
	var (
		found     *dimension
		foundName string
		foundF    float64
		matches   int
	)
	for _, d := range dimensions {
		for name, f := range d.factors {
			if folder.String(name) == folded {
				found, foundName, foundF = d, name, f
				matches++
			}
		}
	}
	if matches != 1 {
		return nil, "", 0, false
	}
	return found, foundName, foundF, true
}

func dimensionOf(si string) (*dimension, bool) {
	d, name, _, ok := lookup(si)
	if !ok || name != normalize(d.si) {
		return nil, false
	}
	return d, true
}
