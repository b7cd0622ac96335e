// Package apogee extracts the peak displacement from a velocity trajectory:
// it locates the first zero crossing of the velocity and integrates the
// velocity curve up to that point.
package apogee

import (
	"fmt"

	"github.com/san-kum/apogee/internal/ivp"
)

// Result is the extracted apogee: the displacement in meters and the
// sample at which the velocity first became non-positive.
type Result struct {
	Height        float64
	CrossingIndex int
	CrossingTime  float64
}

// NotReachedError means the trajectory never exhibits a positive-to-zero
// velocity transition: either the launch velocity was not positive, or the
// horizon ended before the projectile stopped rising.
type NotReachedError struct {
	Horizon float64
	Reason  string
}

func (e NotReachedError) Error() string {
	return fmt.Sprintf("apogee not reached within %.2fs horizon: %s", e.Horizon, e.Reason)
}

// Extract finds the zero crossing and integrates velocity over [0, t_k]
// with composite Simpson quadrature. The sample at the crossing is
// included in the quadrature range; its velocity is at most one sample
// interval below zero, so the bias is below one grid cell of displacement.
func Extract(tr *ivp.Trajectory) (*Result, error) {
	if tr == nil || tr.Len() < 2 {
		return nil, fmt.Errorf("trajectory too short for extraction")
	}

	horizon := tr.Times[tr.Len()-1]

	if tr.Vels[0] <= 0 {
		return nil, NotReachedError{Horizon: horizon, Reason: "launch velocity is not positive"}
	}

	k := crossingIndex(tr.Vels)
	if k < 0 {
		return nil, NotReachedError{Horizon: horizon, Reason: "velocity never crosses zero"}
	}

	return &Result{
		Height:        integrate(tr, k),
		CrossingIndex: k,
		CrossingTime:  tr.Times[k],
	}, nil
}

// crossingIndex returns the first index whose velocity is non-positive
// after a positive sample, or -1 if no such transition exists.
func crossingIndex(vels []float64) int {
	for i := 0; i+1 < len(vels); i++ {
		if vels[i] > 0 && vels[i+1] <= 0 {
			return i + 1
		}
	}
	return -1
}

// integrate applies composite Simpson's rule over samples 0..k on the
// uniform grid. An odd interval count closes with a single trapezoid panel.
func integrate(tr *ivp.Trajectory, k int) float64 {
	dt := tr.Dt()

	end := k
	if k%2 == 1 {
		end = k - 1
	}

	sum := 0.0
	if end > 0 {
		sum = tr.Vels[0] + tr.Vels[end]
		for i := 1; i < end; i++ {
			if i%2 == 1 {
				sum += 4 * tr.Vels[i]
			} else {
				sum += 2 * tr.Vels[i]
			}
		}
		sum *= dt / 3
	}

	if end != k {
		sum += 0.5 * dt * (tr.Vels[k-1] + tr.Vels[k])
	}

	return sum
}
