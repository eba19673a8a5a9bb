package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/units"
)

// Report is a resolved set ready for display.
type Report struct {
	Set *mersenne.ParameterSet
	// Units maps parameter names to display units; missing entries use SI.
	Units map[string]string
	// Computed is the primary the resolver solved for, if any.
	Computed *mersenne.Primary
	// BaseFrequency tunes the nearest-note annotation.
	BaseFrequency float64
}

func (r *Report) format(name string) (string, bool, error) {
	v, ok := FloatValue(r.Set, name)
	if !ok {
		return "", false, nil
	}
	s, err := units.FormatParam(name, v, r.Units[name])
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", name, err)
	}
	return s, true, nil
}

func (r *Report) value(p mersenne.Primary) (string, error) {
	s, ok, err := r.format(p.String())
	if err != nil {
		return "", err
	}
	if !ok {
		return Subtle.Render("?"), nil
	}
	if r.Computed != nil && *r.Computed == p {
		return Computed.Render(s), nil
	}
	return Value.Render(s), nil
}

// Text renders the report in four lines: frequency, tension, length and
// linear mass, each with its auxiliary details.
func (r *Report) Text() (string, error) {
	var b strings.Builder

	freq, err := r.value(mersenne.PrimaryFrequency)
	if err != nil {
		return "", err
	}
	b.WriteString(Label.Render("Frequency:") + freq + r.noteDetail() + "\n")

	tension, err := r.value(mersenne.PrimaryTension)
	if err != nil {
		return "", err
	}
	if t, ok := FloatValue(r.Set, "tension"); ok && r.Units["tension"] != "" && r.Units["tension"] != units.Newton {
		tension += Subtle.Render(fmt.Sprintf(" (%s N)", units.FormatNumber(t)))
	}
	b.WriteString(Label.Render("Tension:") + tension + "\n")

	length, err := r.value(mersenne.PrimaryLength)
	if err != nil {
		return "", err
	}
	b.WriteString(Label.Render("Length:") + length + "\n")

	mu, err := r.value(mersenne.PrimaryLinearMass)
	if err != nil {
		return "", err
	}
	geometry, err := r.geometryDetail()
	if err != nil {
		return "", err
	}
	b.WriteString(Label.Render("Linear mass:") + mu + geometry + "\n")

	return b.String(), nil
}

func (r *Report) noteDetail() string {
	ps := r.Set
	var parts []string
	if ps.Note != nil {
		parts = append(parts, "note: "+*ps.Note)
		if ps.Octave != nil {
			parts = append(parts, fmt.Sprintf("octave: %d", *ps.Octave))
		}
		if s, ok, err := r.format("base_frequency"); ok && err == nil {
			parts = append(parts, "base frequency: "+s)
		}
	} else if ps.Frequency != nil {
		base := r.BaseFrequency
		if ps.BaseFrequency != nil {
			base = *ps.BaseFrequency
		}
		if base <= 0 {
			base = mersenne.DefaultBaseFrequency
		}
		if p, err := mersenne.NearestNote(*ps.Frequency, base); err == nil {
			parts = append(parts, fmt.Sprintf("nearest: %s%d %+.0f cents", p.Note, p.Octave, p.Cents))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return Subtle.Render(" (" + strings.Join(parts, ", ") + ")")
}

func (r *Report) geometryDetail() (string, error) {
	var parts []string
	for _, name := range []string{"radius", "diameter", "volumic_mass"} {
		s, ok, err := r.format(name)
		if err != nil {
			return "", err
		}
		if ok {
			parts = append(parts, strings.ReplaceAll(name, "_", " ")+": "+s)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}
	return Subtle.Render(" (" + strings.Join(parts, ", ") + ")"), nil
}

func (r *Report) WriteText(w io.Writer) error {
	s, err := r.Text()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
