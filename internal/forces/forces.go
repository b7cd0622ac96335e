package forces

import (
	"fmt"
	"math"
)

const (
	DefaultGravity   = 9.8
	DefaultDensity   = 1.225
	DefaultViscosity = 1.81e-5
)

// ParameterError reports a physical parameter that fails validation.
type ParameterError struct {
	Name  string
	Value float64
}

func (e ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %g", e.Name, e.Value)
}

// Projectile holds the physical parameters of a vertical launch.
// Viscosity and Length are only consulted by the viscous model, where
// they derive the linear damping coefficient b = mu*A/L.
type Projectile struct {
	Gravity   float64
	V0        float64
	Mass      float64
	DragCoeff float64
	Area      float64
	Density   float64
	Viscosity float64
	Length    float64
}

// Validate checks the parameters shared by both force models. DragCoeff
// may be zero (drag-free launch) but not negative; V0 is not checked here
// since a non-positive launch velocity is an apogee-extraction failure,
// not a force-model one.
func (p Projectile) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"gravity", p.Gravity},
		{"mass", p.Mass},
		{"area", p.Area},
		{"density", p.Density},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return ParameterError{Name: c.name, Value: c.value}
		}
	}
	if p.DragCoeff < 0 {
		return ParameterError{Name: "drag_coeff", Value: p.DragCoeff}
	}
	return nil
}

// Damping returns the linear damping coefficient b = mu*A/L.
func (p Projectile) Damping() float64 {
	return p.Viscosity * p.Area / p.Length
}

// dragConst is rho*cd*A/(2m), the coefficient of the v*|v| drag term.
func (p Projectile) dragConst() float64 {
	return p.Density * p.DragCoeff * p.Area / (2 * p.Mass)
}

// Model is the closed set of force-model variants. Accel evaluates the
// right-hand side dv/dt at velocity v and time t.
type Model interface {
	Accel(v, t float64) float64
	Name() string
	Validate() error
	Params() Projectile
}

// Inviscid is gravity plus quadratic drag.
type Inviscid struct {
	P Projectile
}

func NewInviscid(p Projectile) Inviscid { return Inviscid{P: p} }

func (m Inviscid) Name() string { return "inviscid" }

func (m Inviscid) Params() Projectile { return m.P }

func (m Inviscid) Validate() error { return m.P.Validate() }

func (m Inviscid) Accel(v, t float64) float64 {
	return -m.P.Gravity - m.P.dragConst()*v*math.Abs(v)
}

// Viscous is the inviscid model plus linear damping (b/m)*v.
type Viscous struct {
	P Projectile
}

func NewViscous(p Projectile) Viscous { return Viscous{P: p} }

func (m Viscous) Name() string { return "viscous" }

func (m Viscous) Params() Projectile { return m.P }

func (m Viscous) Validate() error {
	if err := m.P.Validate(); err != nil {
		return err
	}
	if m.P.Viscosity <= 0 {
		return ParameterError{Name: "viscosity", Value: m.P.Viscosity}
	}
	if m.P.Length <= 0 {
		return ParameterError{Name: "length", Value: m.P.Length}
	}
	return nil
}

func (m Viscous) Accel(v, t float64) float64 {
	return -m.P.Gravity - m.P.dragConst()*v*math.Abs(v) - m.P.Damping()/m.P.Mass*v
}
