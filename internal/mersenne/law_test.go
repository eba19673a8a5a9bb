package mersenne

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestFrequency_GuitarString(t *testing.T) {
	f, err := Frequency(0.65, 80, 0.005)
	if err != nil {
		t.Fatal(err)
	}
	want := 0.65 / 2 * math.Sqrt(80/0.005)
	if relErr(f, want) > 1e-12 {
		t.Errorf("Frequency = %v, want %v", f, want)
	}
	if math.Abs(f-41.1096) > 1e-3 {
		t.Errorf("Frequency = %v, want about 41.11 Hz", f)
	}
}

func TestLaw_Convention(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (float64, error)
		want float64
	}{
		{"length is 2f/sqrt(T/mu)", func() (float64, error) { return Length(0.005, 80, 440) }, 2 * 440 / math.Sqrt(16000)},
		{"tension is (2f/L)^2 mu", func() (float64, error) { return Tension(0.005, 0.65, 100) }, math.Pow(200/0.65, 2) * 0.005},
		{"linear mass is T/(2f/L)^2", func() (float64, error) { return LinearMass(80, 0.65, 100) }, 80 / math.Pow(200/0.65, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if err != nil {
				t.Fatal(err)
			}
			if relErr(got, tt.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if l, _ := Length(0.005, 80, 440); math.Abs(l-6.957011) > 1e-6 {
		t.Errorf("Length = %v, want about 6.957 m", l)
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		length := 0.05 + rng.Float64()*2
		tension := 1 + rng.Float64()*1000
		mu := 1e-5 + rng.Float64()*0.05

		f, err := Frequency(length, tension, mu)
		if err != nil {
			t.Fatal(err)
		}

		gotL, err := Length(mu, tension, f)
		if err != nil {
			t.Fatal(err)
		}
		gotT, err := Tension(mu, length, f)
		if err != nil {
			t.Fatal(err)
		}
		gotMu, err := LinearMass(tension, length, f)
		if err != nil {
			t.Fatal(err)
		}
		gotF, err := Frequency(gotL, gotT, gotMu)
		if err != nil {
			t.Fatal(err)
		}

		checks := []struct {
			name      string
			got, want float64
		}{
			{"length", gotL, length},
			{"tension", gotT, tension},
			{"linear_mass", gotMu, mu},
			{"frequency", gotF, f},
		}
		for _, c := range checks {
			if relErr(c.got, c.want) > 1e-9 {
				t.Fatalf("case %d %s: got %v, want %v", i, c.name, c.got, c.want)
			}
		}
	}
}

func TestLaw_InvalidInputs(t *testing.T) {
	tests := []struct {
		name  string
		fn    func() (float64, error)
		param string
	}{
		{"zero linear mass", func() (float64, error) { return Frequency(1, 10, 0) }, "linear_mass"},
		{"negative tension", func() (float64, error) { return Frequency(1, -10, 0.01) }, "tension"},
		{"zero length", func() (float64, error) { return Tension(0.01, 0, 100) }, "length"},
		{"NaN frequency", func() (float64, error) { return LinearMass(10, 1, math.NaN()) }, "frequency"},
		{"Inf tension", func() (float64, error) { return Length(0.01, math.Inf(1), 100) }, "tension"},
		{"zero frequency", func() (float64, error) { return Length(0.01, 10, 0) }, "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			if !errors.Is(err, ErrInvalidValue) {
				t.Fatalf("expected ErrInvalidValue, got %v", err)
			}
			var ve *ValueError
			if !errors.As(err, &ve) || ve.Param != tt.param {
				t.Errorf("expected ValueError on %s, got %v", tt.param, err)
			}
		})
	}
}

func TestSolve_Dispatch(t *testing.T) {
	full := &ParameterSet{
		Frequency:  Float(110),
		Tension:    Float(75),
		LinearMass: Float(0.006),
		Length:     Float(0.648),
	}
	// make the set self-consistent first
	f, _ := Frequency(*full.Length, *full.Tension, *full.LinearMass)
	full.Frequency = Float(f)

	for _, p := range Primaries {
		want, _ := full.Get(p)
		ps := full.Clone()
		ps.Clear(p)
		got, err := Solve(ps, p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if relErr(got, want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", p, got, want)
		}
	}
}

func TestSolve_NotAPrimary(t *testing.T) {
	ps := &ParameterSet{Tension: Float(1), LinearMass: Float(1), Length: Float(1)}
	if _, err := Solve(ps, Primary(42)); err == nil {
		t.Error("expected an error for an unknown target")
	}
}

func TestWaveSpeed(t *testing.T) {
	c, err := WaveSpeed(100, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if c != 100 {
		t.Errorf("WaveSpeed = %v, want 100", c)
	}
}
