// Package metrics provides solver metrics observed during an ascent.
package metrics

import (
	"math"

	"github.com/san-kum/apogee/internal/forces"
)

// PeakDecel tracks the largest magnitude of acceleration seen along the
// trajectory. For a decelerating launch this occurs at t=0 where drag is
// strongest.
type PeakDecel struct {
	name  string
	model forces.Model
	max   float64
}

func NewPeakDecel(model forces.Model) *PeakDecel {
	return &PeakDecel{
		name:  "peak_decel",
		model: model,
	}
}

func (p *PeakDecel) Name() string { return p.name }

func (p *PeakDecel) Observe(v, t float64) {
	a := math.Abs(p.model.Accel(v, t))
	if a > p.max {
		p.max = a
	}
}

func (p *PeakDecel) Value() float64 { return p.max }

func (p *PeakDecel) Reset() { p.max = 0 }

// MeanSpeed is the running average of |v| over the observed samples.
type MeanSpeed struct {
	name    string
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(v, t float64) {
	m.total += math.Abs(v)
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}
