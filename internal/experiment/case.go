// Package experiment runs the force-model cases end to end: it wires a
// force model and integrator into the IVP solver, extracts the apogee
// from the resulting trajectory, and compares the two physical cases.
package experiment

import (
	"context"

	"github.com/san-kum/apogee/internal/apogee"
	"github.com/san-kum/apogee/internal/forces"
	"github.com/san-kum/apogee/internal/ivp"
)

// Case is one solvable configuration: a force model, an integrator, and
// the grid settings.
type Case struct {
	Model      forces.Model
	Integrator ivp.Integrator
	Config     ivp.Config
	Metrics    []ivp.Metric
}

// Outcome bundles everything a single run produces.
type Outcome struct {
	Model      string
	Trajectory *ivp.Trajectory
	Apogee     *apogee.Result
	Metrics    map[string]float64
}

// Run integrates the case and extracts its apogee. Each run is
// independent and deterministic for a given parameter set.
func (c *Case) Run(ctx context.Context) (*Outcome, error) {
	solver := ivp.New(c.Model, c.Integrator)
	for _, m := range c.Metrics {
		solver.AddMetric(m)
	}

	tr, err := solver.Run(ctx, c.Model.Params().V0, c.Config)
	if err != nil {
		return nil, err
	}

	res, err := apogee.Extract(tr)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Model:      c.Model.Name(),
		Trajectory: tr,
		Apogee:     res,
		Metrics:    solver.MetricValues(),
	}, nil
}

// Comparison holds both case outcomes and the relative apogee change
// caused by viscous damping, in percent.
type Comparison struct {
	Inviscid    *Outcome
	Viscous     *Outcome
	PercentDiff float64
}

// Compare runs the inviscid and viscous cases with identical numerics and
// reports (1 - h_viscous/h_inviscid) * 100.
func Compare(ctx context.Context, reg *Registry, integrator string, p forces.Projectile, cfg ivp.Config) (*Comparison, error) {
	runOne := func(modelName string) (*Outcome, error) {
		model, err := reg.GetModel(modelName, p)
		if err != nil {
			return nil, err
		}
		integ, err := reg.GetIntegrator(integrator)
		if err != nil {
			return nil, err
		}
		c := &Case{
			Model:      model,
			Integrator: integ,
			Config:     cfg,
			Metrics:    reg.DefaultMetrics(model),
		}
		return c.Run(ctx)
	}

	inviscid, err := runOne("inviscid")
	if err != nil {
		return nil, err
	}
	viscous, err := runOne("viscous")
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Inviscid:    inviscid,
		Viscous:     viscous,
		PercentDiff: (1 - viscous.Apogee.Height/inviscid.Apogee.Height) * 100,
	}, nil
}
