package ivp

// RK4 is the classical fourth-order Runge-Kutta scheme.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(sys System, v, t, dt float64) float64 {
	k1 := sys.Accel(v, t)
	k2 := sys.Accel(v+dt*0.5*k1, t+dt*0.5)
	k3 := sys.Accel(v+dt*0.5*k2, t+dt*0.5)
	k4 := sys.Accel(v+dt*k3, t+dt)
	return v + dt/6.0*(k1+2*k2+2*k3+k4)
}
