package automation

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mersenne/internal/config"
	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guitar = `
name: guitar
description: two strings of a standard tuning
defaults:
  length: 650mm
  material: steel
strings:
  - name: high e
    note: e
    octave: 4
    diameter: 0.25mm
  - name: b
    note: b
    octave: 3
    diameter: 0.33mm
    material: nylon
  - note: a
    tension: 70N
    linear_mass: 4g/m
`

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(guitar))
	require.NoError(t, err)
	assert.Equal(t, "guitar", sc.Name)
	require.Len(t, sc.Strings, 3)
	assert.Equal(t, "0.25mm", sc.Strings[0].Params["diameter"])
	assert.Equal(t, "4", sc.Strings[0].Params["octave"])

	out, err := RunScenario(sc, config.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, 3)

	e := out[0]
	assert.Equal(t, "high e", e.Name)
	require.NotNil(t, e.Computed)
	assert.Equal(t, mersenne.PrimaryTension, *e.Computed)
	mu, err := mersenne.RadiusToLinearMass(0.125e-3, 7850)
	require.NoError(t, err)
	assert.InDelta(t, mu, *e.Set.LinearMass, 1e-15)

	b := out[1]
	assert.Equal(t, 1140.0, *b.Set.VolumicMass)

	a := out[2]
	assert.Equal(t, "3", a.Name)
	// all four primaries given
	assert.Nil(t, a.Computed)
	assert.Equal(t, 440.0, *a.Set.Frequency)
	// no geometry back-fill without a computation
	assert.Nil(t, a.Set.Radius)

	total := TotalTension(out)
	assert.InDelta(t, *e.Set.Tension+*b.Set.Tension+70, total, 1e-9)
}

func TestRunScenario_ComputedAfterNote(t *testing.T) {
	sc, err := ParseScenario([]byte("strings:\n  - note: e\n    tension: 80\n    linear_mass: 0.005\n"))
	require.NoError(t, err)

	out, err := RunScenario(sc, config.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Computed)
	assert.Equal(t, mersenne.PrimaryLength, *out[0].Computed)
}

func TestRunScenario_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "unknown note",
			yaml: "strings:\n  - note: h\n    tension: 80\n    length: 0.65\n",
			want: mersenne.ErrUnknownNote,
		},
		{
			name: "two unknowns",
			yaml: "strings:\n  - note: a\n    tension: 80\n",
			want: mersenne.ErrUnderdetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := ParseScenario([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = RunScenario(sc, config.DefaultConfig())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestRunScenario_UnknownMaterial(t *testing.T) {
	sc, err := ParseScenario([]byte("strings:\n  - name: x\n    material: unobtainium\n"))
	require.NoError(t, err)
	_, err = RunScenario(sc, config.DefaultConfig())
	assert.ErrorContains(t, err, "string x")
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte(guitar), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, sc.Strings, 3)

	_, err = ParseScenario([]byte("name: empty\n"))
	assert.Error(t, err)
}

func TestTotalTension_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalTension(nil))
	assert.False(t, math.IsNaN(TotalTension([]Outcome{{Set: &mersenne.ParameterSet{}}})))
}
