package mersenne

import (
	"errors"
	"math"
	"testing"
)

func TestNoteToFrequency_Reference(t *testing.T) {
	tests := []struct {
		note   string
		octave int
		base   float64
		want   float64
	}{
		{"a", 4, 440, 440},
		{"a", 5, 440, 880},
		{"a", 3, 440, 220},
		{"A", 4, 415, 415},
	}

	for _, tt := range tests {
		got, err := NoteToFrequency(tt.note, tt.octave, tt.base)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("NoteToFrequency(%q, %d, %v) = %v, want %v", tt.note, tt.octave, tt.base, got, tt.want)
		}
	}
}

func TestNoteToFrequency_MiddleC(t *testing.T) {
	got, err := NoteToFrequency("c", 4, DefaultBaseFrequency)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-261.6256) > 1e-3 {
		t.Errorf("C4 = %v, want 261.6256", got)
	}
}

func TestNoteToFrequency_Enharmonics(t *testing.T) {
	pairs := [][2]string{
		{"c#", "db"},
		{"d#", "eb"},
		{"f#", "gb"},
		{"g#", "ab"},
		{"a#", "bb"},
		{"C#", "D♭"},
		{"A♯", "Bb"},
	}

	for _, p := range pairs {
		a, err := NoteToFrequency(p[0], 4, 440)
		if err != nil {
			t.Fatal(err)
		}
		b, err := NoteToFrequency(p[1], 4, 440)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Errorf("%s = %v, %s = %v", p[0], a, p[1], b)
		}
	}
}

func TestNoteOffset_AllAliases(t *testing.T) {
	if len(noteOffsets) != 17 {
		t.Fatalf("expected 17 aliases, got %d", len(noteOffsets))
	}
	for name, want := range noteOffsets {
		got, err := NoteOffset(name)
		if err != nil || got != want {
			t.Errorf("NoteOffset(%q) = %d, %v", name, got, err)
		}
	}
}

func TestNoteToFrequency_Unknown(t *testing.T) {
	for _, note := range []string{"h", "", "cb", "e#", "do"} {
		_, err := NoteToFrequency(note, 4, 440)
		if !errors.Is(err, ErrUnknownNote) {
			t.Errorf("%q: expected ErrUnknownNote, got %v", note, err)
		}
		var ne *UnknownNoteError
		if !errors.As(err, &ne) || ne.Note != note {
			t.Errorf("%q: expected UnknownNoteError carrying the name, got %v", note, err)
		}
	}
}

func TestNoteToFrequency_BadBase(t *testing.T) {
	_, err := NoteToFrequency("a", 4, 0)
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestNearestNote(t *testing.T) {
	tests := []struct {
		freq   float64
		note   string
		octave int
	}{
		{440, "a", 4},
		{261.6256, "c", 4},
		{82.4069, "e", 2},
		{16.3516, "c", 0},
		{8.1758, "c", -1},
		{450, "a", 4},
	}

	for _, tt := range tests {
		p, err := NearestNote(tt.freq, 440)
		if err != nil {
			t.Fatal(err)
		}
		if p.Note != tt.note || p.Octave != tt.octave {
			t.Errorf("NearestNote(%v) = %s%d, want %s%d", tt.freq, p.Note, p.Octave, tt.note, tt.octave)
		}
		if math.Abs(p.Cents) > 50 {
			t.Errorf("NearestNote(%v) cents = %v out of range", tt.freq, p.Cents)
		}
	}

	p, _ := NearestNote(450, 440)
	if p.Cents <= 0 {
		t.Errorf("450 Hz should be sharp of A4, got %v cents", p.Cents)
	}
}
