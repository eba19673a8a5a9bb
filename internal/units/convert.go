package units

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrBadNumber        = errors.New("units: malformed number")
	ErrUnknownUnit      = errors.New("units: unknown unit")
	ErrIncompatibleUnit = errors.New("units: incompatible unit")
)

var quantityRe = regexp.MustCompile(`^([-+]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?)\s*(.*)$`)

// Parse reads a number with an optional unit and returns its magnitude in
// siUnit. A bare number is assumed to already be in siUnit.
func Parse(value, siUnit string) (float64, error) {
	m := quantityRe.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, value)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, value)
	}
	if m[2] == "" {
		return v, nil
	}
	return Convert(v, m[2], siUnit)
}

// Convert changes v from one unit to another of the same dimension.
func Convert(v float64, from, to string) (float64, error) {
	fd, _, ff, ok := lookup(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	td, _, tf, ok := lookup(to)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if fd != td {
		return 0, fmt.Errorf("%w: cannot convert %s to %s", ErrIncompatibleUnit, from, to)
	}
	if ff == tf {
		return v, nil
	}
	return v * ff / tf, nil
}

// Format renders an SI value in displayUnit. An empty display unit keeps
// siUnit; Auto picks a compact unit.
func Format(v float64, siUnit, displayUnit string) (string, error) {
	switch displayUnit {
	case "":
		displayUnit = siUnit
	case Auto:
		var err error
		if displayUnit, err = Compact(v, siUnit); err != nil {
			return "", err
		}
	}
	d, err := Convert(v, siUnit, displayUnit)
	if err != nil {
		return "", err
	}
	return FormatNumber(d) + " " + pretty(displayUnit), nil
}

// FormatNumber prints six significant digits without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Compact returns the unit of siUnit's dimension that gives v the smallest
// magnitude not below one.
func Compact(v float64, siUnit string) (string, error) {
	d, ok := dimensionOf(siUnit)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, siUnit)
	}
	abs := math.Abs(v)
	best := d.compact[0]
	for _, name := range d.compact {
		if abs/d.factors[name] >= 1 {
			best = name
		}
	}
	return best, nil
}

func pretty(unit string) string {
	return strings.Replace(normalize(unit), "m3", "m³", 1)
}

func NewtonToKgf(n float64) float64 {
	return n / StandardGravity
}

func KgfToNewton(k float64) float64 {
	return k * StandardGravity
}

// ParseParam parses value for the named parameter using its SI unit.
func ParseParam(param, value string) (float64, error) {
	si, ok := ParamUnits[param]
	if !ok {
		return 0, fmt.Errorf("units: no unit known for parameter %q", param)
	}
	return Parse(value, si)
}

// FormatParam formats an SI value of the named parameter in displayUnit.
func FormatParam(param string, v float64, displayUnit string) (string, error) {
	si, ok := ParamUnits[param]
	if !ok {
		return "", fmt.Errorf("units: no unit known for parameter %q", param)
	}
	return Format(v, si, displayUnit)
}
