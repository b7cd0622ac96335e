package ivp

import "fmt"

const (
	DefaultHorizon   = 15.0
	DefaultSamples   = 10000
	DefaultTolerance = 1e-9
)

// System is the right-hand side of the scalar velocity IVP dv/dt = f(v, t).
// Validate runs before integration and rejects unusable parameters.
type System interface {
	Accel(v, t float64) float64
	Validate() error
}

// Integrator advances the velocity state by one step of size dt.
type Integrator interface {
	Step(sys System, v, t, dt float64) float64
}

// AdaptiveIntegrator additionally estimates its local error and suggests
// the next step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(sys System, v, t, dt, tol float64) (float64, float64, error)
}

// Metric accumulates a scalar statistic over the solve.
type Metric interface {
	Name() string
	Observe(v, t float64)
	Value() float64
	Reset()
}

// Observer is notified before every integration step.
type Observer interface {
	OnStep(v, t float64)
}

// Config fixes the sample grid: Samples uniform points spanning [0, Horizon].
// Tolerance applies only to adaptive integrators.
type Config struct {
	Horizon   float64
	Samples   int
	Tolerance float64
}

func DefaultConfig() Config {
	return Config{
		Horizon:   DefaultHorizon,
		Samples:   DefaultSamples,
		Tolerance: DefaultTolerance,
	}
}

// Validate checks the grid settings. Tolerance is checked by the solver,
// which knows whether the integrator is adaptive.
func (c Config) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %f", c.Horizon)
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be at least 2, got %d", c.Samples)
	}
	return nil
}

// Trajectory is the sampled velocity curve. Times[0] = 0 and
// Times[len-1] = Horizon, uniformly spaced.
type Trajectory struct {
	Times []float64
	Vels  []float64
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

func (tr *Trajectory) Dt() float64 {
	if len(tr.Times) < 2 {
		return 0
	}
	return tr.Times[1] - tr.Times[0]
}

// DivergenceError reports a non-finite velocity during integration.
type DivergenceError struct {
	Time float64
	Step int
}

func (e DivergenceError) Error() string {
	return fmt.Sprintf("numerical divergence at t=%.4f (step %d)", e.Time, e.Step)
}
