package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	dyn        System
	integrator Integrator
	metrics    []Metric
}

func New(dyn System, integrator Integrator) *Simulator {
	return &Simulator{dyn: dyn, integrator: integrator}
}

func (s *Simulator) AddMetric(m Metric) {
	s.metrics = append(s.metrics, m)
}

// Run integrates from x0 and records probe(x) at every step, including t=0.
func (s *Simulator) Run(ctx context.Context, x0 State, probe Probe, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 || cfg.Duration <= 0 {
		return nil, fmt.Errorf("%w: dt=%g duration=%g", ErrInvalidConfig, cfg.Dt, cfg.Duration)
	}
	if len(x0) != s.dyn.StateDim() {
		return nil, fmt.Errorf("%w: state %d, system %d", ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Signal: make([]float64, 0, steps+1),
		Times:  make([]float64, 0, steps+1),
	}

	for _, m := range s.metrics {
		m.Reset()
	}
	record := func(x State, t float64) {
		result.Signal = append(result.Signal, probe(x))
		result.Times = append(result.Times, t)
		for _, m := range s.metrics {
			m.Observe(x, t)
		}
	}

	x := x0.Clone()
	t := 0.0
	record(x, t)

	initialEnergy := s.energy(x)

	for i := 0; i < steps; i++ {
		if i%256 == 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}
		}

		newX := s.integrator.Step(s.dyn, x, t, cfg.Dt)
		if cfg.ValidateState && !newX.IsValid() {
			return result, &SimulationError{Step: i, Time: t, Wrapped: ErrInvalidState}
		}

		x = newX
		t += cfg.Dt
		result.StepsTaken++
		record(x, t)
	}

	result.Final = x
	if len(s.metrics) > 0 {
		result.Metrics = make(map[string]float64, len(s.metrics))
		for _, m := range s.metrics {
			result.Metrics[m.Name()] = m.Value()
		}
	}
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(s.energy(x)-initialEnergy) / math.Abs(initialEnergy)
	}
	return result, nil
}

func (s *Simulator) energy(x State) float64 {
	if h, ok := s.dyn.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}
