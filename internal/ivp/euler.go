package ivp

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys System, v, t, dt float64) float64 {
	return v + dt*sys.Accel(v, t)
}
