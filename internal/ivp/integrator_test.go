package ivp

import (
	"math"
	"testing"
)

// decay is dv/dt = -v, with exact solution v0*exp(-t).
type decay struct{}

func (decay) Accel(v, t float64) float64 { return -v }
func (decay) Validate() error            { return nil }

func TestEulerStep(t *testing.T) {
	integ := NewEuler()
	got := integ.Step(decay{}, 1.0, 0, 0.1)
	if math.Abs(got-0.9) > 1e-12 {
		t.Errorf("Step() = %g, want 0.9", got)
	}
}

func TestRK4Accuracy(t *testing.T) {
	integ := NewRK4()

	v := 1.0
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		v = integ.Step(decay{}, v, float64(i)*dt, dt)
	}

	expected := math.Exp(-1.0)
	if math.Abs(v-expected) > 1e-8 {
		t.Errorf("final value error too large: got %.10f, expected %.10f", v, expected)
	}
}

func TestRK45Accuracy(t *testing.T) {
	integ := NewRK45()

	v := 1.0
	t0 := 0.0
	h := 0.1
	for t0 < 1.0 {
		if t0+h > 1.0 {
			h = 1.0 - t0
		}
		vNext, hNext, err := integ.StepAdaptive(decay{}, v, t0, h, 1e-9)
		if err != nil {
			t.Fatalf("StepAdaptive failed: %v", err)
		}
		v = vNext
		t0 += h
		h = hNext
	}

	expected := math.Exp(-1.0)
	if math.Abs(v-expected) > 1e-6 {
		t.Errorf("final value error too large: got %.10f, expected %.10f", v, expected)
	}
}

func TestRK45SuggestsSmallerStepOnLargeError(t *testing.T) {
	integ := NewRK45()
	// A large step over a stiff decay should trip the error estimate.
	_, dtNew, err := integ.StepAdaptive(stiffDecay{}, 1.0, 0, 1.0, 1e-12)
	if err != nil {
		t.Fatalf("StepAdaptive failed: %v", err)
	}
	if dtNew >= 1.0 {
		t.Errorf("expected reduced step suggestion, got %g", dtNew)
	}
}

type stiffDecay struct{}

func (stiffDecay) Accel(v, t float64) float64 { return -50 * v }
func (stiffDecay) Validate() error            { return nil }
