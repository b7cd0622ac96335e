// Package forces provides the vertical force models for the apogee problem.
//
// Each model implements the [Model] interface, exposing the acceleration
// dv/dt acting on the projectile:
//
//   - [Inviscid]: gravity plus quadratic aerodynamic drag
//   - [Viscous]: gravity, quadratic drag, and a linear viscous term
//
// The quadratic drag term uses v*|v| so it opposes the direction of motion
// on both sides of the zero crossing.
package forces
