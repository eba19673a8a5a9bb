package mersenne

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
)

const (
	DefaultOctave        = 4
	DefaultBaseFrequency = 440.0

	// referenceOffset is the semitone offset of A, the tuning reference.
	referenceOffset = 9
)

// noteOffsets maps pitch-class names to semitones above C. Read-only.
var noteOffsets = map[string]int{
	"c":  0,
	"c#": 1, "db": 1,
	"d":  2,
	"d#": 3, "eb": 3,
	"e":  4,
	"f":  5,
	"f#": 6, "gb": 6,
	"g":  7,
	"g#": 8, "ab": 8,
	"a":  9,
	"a#": 10, "bb": 10,
	"b": 11,
}

var noteNames = [12]string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

var accidentals = strings.NewReplacer("♯", "#", "♭", "b")

// NoteOffset returns the semitone offset of a pitch class relative to C.
// Lookup is case-insensitive and accepts ♯ and ♭.
func NoteOffset(note string) (int, error) {
	key := cases.Fold().String(accidentals.Replace(strings.TrimSpace(note)))
	offset, ok := noteOffsets[key]
	if !ok {
		return 0, &UnknownNoteError{Note: note}
	}
	return offset, nil
}

// NoteToFrequency returns the equal-tempered frequency of note in octave,
// with A4 tuned to base.
func NoteToFrequency(note string, octave int, base float64) (float64, error) {
	offset, err := NoteOffset(note)
	if err != nil {
		return 0, err
	}
	if err := checkPositive("base_frequency", base); err != nil {
		return 0, err
	}
	exp := float64(octave-DefaultOctave) + float64(offset-referenceOffset)/12
	return base * math.Pow(2, exp), nil
}

// Pitch is the equal-tempered note closest to a frequency.
type Pitch struct {
	Note   string
	Octave int
	Cents  float64
}

// NearestNote finds the closest note to frequency and how far off it is in
// cents (positive means sharp).
func NearestNote(frequency, base float64) (Pitch, error) {
	if err := checkPositive("frequency", frequency); err != nil {
		return Pitch{}, err
	}
	if err := checkPositive("base_frequency", base); err != nil {
		return Pitch{}, err
	}
	// semitones above C0
	semis := 12*math.Log2(frequency/base) + float64(DefaultOctave*12+referenceOffset)
	n := math.Round(semis)
	idx := int(n)
	octave := floorDiv(idx, 12)
	return Pitch{
		Note:   noteNames[idx-octave*12],
		Octave: octave,
		Cents:  (semis - n) * 100,
	}, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
