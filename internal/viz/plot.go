// Package viz renders trajectories and run summaries for the terminal.
package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/apogee/internal/ivp"
)

const (
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 12
)

// PlotVelocity renders the velocity curve as an ASCII chart.
func PlotVelocity(tr *ivp.Trajectory, width, height int) string {
	return asciigraph.Plot(tr.Vels,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("velocity (m/s) vs time"),
	)
}

// PlotAltitude renders the running displacement obtained by trapezoidal
// accumulation of the velocity samples.
func PlotAltitude(tr *ivp.Trajectory, width, height int) string {
	heights := make([]float64, tr.Len())
	dt := tr.Dt()
	for i := 1; i < tr.Len(); i++ {
		heights[i] = heights[i-1] + 0.5*dt*(tr.Vels[i-1]+tr.Vels[i])
	}
	return asciigraph.Plot(heights,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("altitude (m) vs time"),
	)
}
