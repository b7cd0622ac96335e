package apogee

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/apogee/internal/ivp"
)

// makeTrajectory samples v(t) on n uniform points over [0, horizon].
func makeTrajectory(v func(float64) float64, horizon float64, n int) *ivp.Trajectory {
	tr := &ivp.Trajectory{
		Times: make([]float64, n),
		Vels:  make([]float64, n),
	}
	dt := horizon / float64(n-1)
	for i := 0; i < n; i++ {
		tr.Times[i] = float64(i) * dt
		tr.Vels[i] = v(tr.Times[i])
	}
	return tr
}

func TestExtractLinearDeceleration(t *testing.T) {
	// v = v0 - g*t: crossing at v0/g, apogee v0^2/(2g).
	v0, g := 100.0, 9.8
	tr := makeTrajectory(func(tt float64) float64 { return v0 - g*tt }, 15.0, 10000)

	res, err := Extract(tr)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	expected := v0 * v0 / (2 * g) // 510.2 m
	if math.Abs(res.Height-expected) > 0.1 {
		t.Errorf("Height = %.4f, want %.4f", res.Height, expected)
	}

	if math.Abs(res.CrossingTime-v0/g) > 2*tr.Dt() {
		t.Errorf("CrossingTime = %.4f, want ~%.4f", res.CrossingTime, v0/g)
	}
}

func TestExtractCosine(t *testing.T) {
	// v = cos(t) crosses zero at pi/2; apogee = sin(pi/2) = 1.
	tr := makeTrajectory(math.Cos, math.Pi, 2001)

	res, err := Extract(tr)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if math.Abs(res.Height-1.0) > 1e-3 {
		t.Errorf("Height = %.6f, want 1.0", res.Height)
	}
}

func TestCrossingIndexExactZero(t *testing.T) {
	tr := &ivp.Trajectory{
		Times: []float64{0, 1, 2, 3, 4},
		Vels:  []float64{3, 2, 1, 0, -1},
	}

	res, err := Extract(tr)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if res.CrossingIndex != 3 {
		t.Errorf("CrossingIndex = %d, want 3", res.CrossingIndex)
	}
	if res.CrossingTime != 3 {
		t.Errorf("CrossingTime = %g, want 3", res.CrossingTime)
	}
}

func TestExtractNonPositiveLaunch(t *testing.T) {
	for _, v0 := range []float64{0, -5} {
		tr := &ivp.Trajectory{
			Times: []float64{0, 1, 2},
			Vels:  []float64{v0, v0 - 1, v0 - 2},
		}
		_, err := Extract(tr)

		var nerr NotReachedError
		if !errors.As(err, &nerr) {
			t.Errorf("v0=%g: expected NotReachedError, got %v", v0, err)
		}
	}
}

func TestExtractNoCrossing(t *testing.T) {
	// Horizon too short: velocity stays positive.
	tr := makeTrajectory(func(tt float64) float64 { return 100 - tt }, 10.0, 100)

	_, err := Extract(tr)
	var nerr NotReachedError
	if !errors.As(err, &nerr) {
		t.Fatalf("expected NotReachedError, got %v", err)
	}
	if nerr.Horizon != 10.0 {
		t.Errorf("Horizon = %g, want 10.0", nerr.Horizon)
	}
}

func TestExtractShortTrajectory(t *testing.T) {
	if _, err := Extract(nil); err == nil {
		t.Error("expected error for nil trajectory")
	}
	if _, err := Extract(&ivp.Trajectory{Times: []float64{0}, Vels: []float64{1}}); err == nil {
		t.Error("expected error for single-sample trajectory")
	}
}

func TestIntegrateOddIntervalCount(t *testing.T) {
	// Crossing at index 1 leaves a single trapezoid panel.
	tr := &ivp.Trajectory{
		Times: []float64{0, 1, 2},
		Vels:  []float64{1, 0, -1},
	}

	res, err := Extract(tr)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if math.Abs(res.Height-0.5) > 1e-12 {
		t.Errorf("Height = %g, want 0.5", res.Height)
	}
}
