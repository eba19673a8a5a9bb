package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/mersenne/internal/dynamo"
	"github.com/san-kum/mersenne/internal/mersenne"
	"github.com/san-kum/mersenne/internal/metrics"
	"github.com/san-kum/mersenne/internal/physics"
)

type PluckConfig struct {
	Points int
	// Cycles is the simulated duration in fundamental periods 2L/c.
	Cycles int
	// Position is where the string is plucked, as a fraction of its length.
	Position float64
	// Amplitude of the initial displacement in metres.
	Amplitude float64
	// Courant is c·dt/dx.
	Courant float64
}

func DefaultPluckConfig() PluckConfig {
	return PluckConfig{
		Points:    48,
		Cycles:    20,
		Position:  0.5,
		Amplitude: 0.002,
		Courant:   0.5,
	}
}

type PluckResult struct {
	Simulated float64
	// Predicted is the ideal-string fundamental c/2L.
	Predicted float64
	// Law is the frequency given by Mersenne's law in the convention of
	// mersenne.Frequency, reported alongside the simulation.
	Law         float64
	Deviation   float64 // relative, simulated vs predicted
	EnergyDrift float64
	// MaxEnergyDrift is the worst drift over the run, EnergyDrift the final one.
	MaxEnergyDrift   float64
	PeakDisplacement float64
	// Stability is the fraction of samples staying within twice the amplitude.
	Stability float64
	Steps     int
	Dt        float64
}

// Pluck simulates the resolved string ps and measures the fundamental at its
// midpoint. The measurement is compared with the wave-equation fundamental
// c/2L; the closed form of mersenne.Frequency is only reported.
func Pluck(ctx context.Context, ps *mersenne.ParameterSet, integ dynamo.Integrator, cfg PluckConfig) (*PluckResult, error) {
	if missing := ps.Missing(); len(missing) > 0 {
		return nil, &mersenne.UnderdeterminedError{Missing: missing}
	}
	if cfg.Points < 8 || cfg.Cycles < 2 || cfg.Courant <= 0 || cfg.Courant > 1 {
		return nil, fmt.Errorf("%w: points=%d cycles=%d courant=%g", dynamo.ErrInvalidConfig, cfg.Points, cfg.Cycles, cfg.Courant)
	}

	law, err := mersenne.Frequency(*ps.Length, *ps.Tension, *ps.LinearMass)
	if err != nil {
		return nil, err
	}

	str := physics.NewString(cfg.Points, *ps.Length, *ps.Tension, *ps.LinearMass)
	c := str.WaveSpeed()
	predicted := c / (2 * str.Length)
	dt := cfg.Courant * str.Dx() / c
	duration := float64(cfg.Cycles) * 2 * str.Length / c

	mid := cfg.Points / 2
	probe := func(x dynamo.State) float64 { return x[mid] }

	sim := dynamo.New(str, integ)
	drift := metrics.NewEnergyDrift(str)
	peak := metrics.NewPeakDisplacement(str.N)
	stability := metrics.NewStability(str.N, 2*cfg.Amplitude)
	sim.AddMetric(drift)
	sim.AddMetric(peak)
	sim.AddMetric(stability)

	res, err := sim.Run(ctx, str.Pluck(cfg.Position, cfg.Amplitude), probe, dynamo.Config{
		Dt:            dt,
		Duration:      duration,
		ValidateState: true,
	})
	if err != nil {
		return nil, err
	}

	simulated := DominantFrequency(res.Signal, dt)
	return &PluckResult{
		Simulated:   simulated,
		Predicted:   predicted,
		Law:         law,
		Deviation:   math.Abs(simulated-predicted) / predicted,
		EnergyDrift: res.EnergyDrift,

		MaxEnergyDrift:   drift.Value(),
		PeakDisplacement: peak.Value(),
		Stability:        stability.Value(),
		Steps:            res.StepsTaken,
		Dt:               dt,
	}, nil
}
