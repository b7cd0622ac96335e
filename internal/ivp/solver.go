package ivp

import (
	"context"
	"fmt"
	"math"
)

// Solver integrates a System over a fixed uniform grid, producing a
// Trajectory. Metrics and observers are invoked once per grid step.
type Solver struct {
	sys        System
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(sys System, integrator Integrator) *Solver {
	return &Solver{
		sys:        sys,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// MetricValues returns the accumulated metric values by name.
func (s *Solver) MetricValues() map[string]float64 {
	values := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		values[m.Name()] = m.Value()
	}
	return values
}

// Run integrates from v(0) = v0 to t = cfg.Horizon and returns the sampled
// trajectory. The grid is fixed even under an adaptive integrator; adaptive
// stepping happens inside each grid interval.
func (s *Solver) Run(ctx context.Context, v0 float64, cfg Config) (*Trajectory, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.sys.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Samples
	dt := cfg.Horizon / float64(n-1)

	tr := &Trajectory{
		Times: make([]float64, 0, n),
		Vels:  make([]float64, 0, n),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	v := v0
	t := 0.0
	tr.Times = append(tr.Times, t)
	tr.Vels = append(tr.Vels, v)

	adaptive, isAdaptive := s.integrator.(AdaptiveIntegrator)

	for i := 0; i < n-1; i++ {
		select {
		case <-ctx.Done():
			return tr, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(v, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(v, t)
		}

		if isAdaptive {
			var err error
			v, err = s.advanceAdaptive(adaptive, v, t, dt, cfg.Tolerance)
			if err != nil {
				return nil, err
			}
		} else {
			v = s.integrator.Step(s.sys, v, t, dt)
		}

		t = float64(i+1) * dt

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, DivergenceError{Time: t, Step: i + 1}
		}

		tr.Times = append(tr.Times, t)
		tr.Vels = append(tr.Vels, v)
	}

	return tr, nil
}

// advanceAdaptive carries the state across one grid interval, letting the
// integrator pick its own sub-steps but always landing exactly on t+dt.
func (s *Solver) advanceAdaptive(integ AdaptiveIntegrator, v, t, dt, tol float64) (float64, error) {
	target := t + dt
	h := dt
	for target-t > 1e-12*dt {
		if t+h > target {
			h = target - t
		}
		vNext, hNext, err := integ.StepAdaptive(s.sys, v, t, h, tol)
		if err != nil {
			return v, err
		}
		v = vNext
		t += h
		h = hNext
	}
	return v, nil
}

func (s *Solver) validateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, ok := s.integrator.(AdaptiveIntegrator); ok && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	return nil
}
