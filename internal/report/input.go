package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/units"
)

// Raw is the flat name → value mapping read from flags or JSON. Physical
// values may carry a unit.
type Raw map[string]string

// aliases accepts the short names used by older scripts.
var aliases = map[string]string{
	"freq":     "frequency",
	"basefreq": "base_frequency",
}

// ParamNames lists every recognized parameter in display order.
var ParamNames = []string{
	"note", "octave", "base_frequency",
	"frequency", "tension", "length", "linear_mass",
	"diameter", "radius", "volumic_mass",
}

func canonical(name string) string {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if a, ok := aliases[name]; ok {
		return a
	}
	return name
}

// Decode normalizes raw values to SI and builds a parameter set.
func Decode(raw Raw) (*mersenne.ParameterSet, error) {
	ps := &mersenne.ParameterSet{}
	for name, value := range raw {
		name = canonical(name)
		switch name {
		case "note":
			ps.Note = mersenne.String(strings.TrimSpace(value))
		case "octave":
			o, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return nil, fmt.Errorf("octave: %q is not an integer", value)
			}
			ps.Octave = mersenne.Int(o)
		default:
			if _, ok := units.ParamUnits[name]; !ok {
				return nil, fmt.Errorf("unknown parameter: %s", name)
			}
			v, err := units.ParseParam(name, value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			*floatField(ps, name) = mersenne.Float(v)
		}
	}
	return ps, nil
}

func floatField(ps *mersenne.ParameterSet, name string) **float64 {
	switch name {
	case "frequency":
		return &ps.Frequency
	case "tension":
		return &ps.Tension
	case "linear_mass":
		return &ps.LinearMass
	case "length":
		return &ps.Length
	case "base_frequency":
		return &ps.BaseFrequency
	case "diameter":
		return &ps.Diameter
	case "radius":
		return &ps.Radius
	case "volumic_mass":
		return &ps.VolumicMass
	}
	return nil
}

// FloatValue returns a physical parameter by name.
func FloatValue(ps *mersenne.ParameterSet, name string) (float64, bool) {
	f := floatField(ps, name)
	if f == nil || *f == nil {
		return 0, false
	}
	return **f, true
}

// ReadJSON reads a flat JSON object. Numbers are taken as SI, strings may
// carry units, nulls are ignored.
func ReadJSON(r io.Reader) (Raw, error) {
	var m map[string]any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("json input: %w", err)
	}
	raw := make(Raw, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case nil:
		case string:
			raw[k] = v
		case json.Number:
			raw[k] = v.String()
		default:
			return nil, fmt.Errorf("json input: %s: unsupported value %v", k, v)
		}
	}
	return raw, nil
}

// Encode renders ps as a flat mapping: physical values formatted in their
// display unit, note and octave as is.
func Encode(ps *mersenne.ParameterSet, display map[string]string) (map[string]any, error) {
	out := map[string]any{}
	if ps.Note != nil {
		out["note"] = *ps.Note
	}
	if ps.Octave != nil {
		out["octave"] = *ps.Octave
	}
	for _, name := range ParamNames {
		v, ok := FloatValue(ps, name)
		if !ok {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: non-finite value", name)
		}
		s, err := units.FormatParam(name, v, display[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
}

func WriteJSON(w io.Writer, ps *mersenne.ParameterSet, display map[string]string) error {
	out, err := Encode(ps, display)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
