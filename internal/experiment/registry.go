package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/apogee/internal/forces"
	"github.com/san-kum/apogee/internal/ivp"
	"github.com/san-kum/apogee/internal/metrics"
)

// Registry maps names to force-model and integrator constructors.
type Registry struct {
	models      map[string]func(forces.Projectile) forces.Model
	integrators map[string]func() ivp.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		models:      make(map[string]func(forces.Projectile) forces.Model),
		integrators: make(map[string]func() ivp.Integrator),
	}

	r.models["inviscid"] = func(p forces.Projectile) forces.Model { return forces.NewInviscid(p) }
	r.models["viscous"] = func(p forces.Projectile) forces.Model { return forces.NewViscous(p) }

	r.integrators["euler"] = func() ivp.Integrator { return ivp.NewEuler() }
	r.integrators["rk4"] = func() ivp.Integrator { return ivp.NewRK4() }
	r.integrators["rk45"] = func() ivp.Integrator { return ivp.NewRK45() }

	return r
}

func (r *Registry) GetModel(name string, p forces.Projectile) (forces.Model, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(p), nil
}

func (r *Registry) GetIntegrator(name string) (ivp.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns the standard solver metrics for a model.
func (r *Registry) DefaultMetrics(model forces.Model) []ivp.Metric {
	return []ivp.Metric{
		metrics.NewPeakDecel(model),
		metrics.NewMeanSpeed(),
	}
}
