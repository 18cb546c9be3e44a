// Package integrate provides generic single-step methods for first-order
// ordinary differential equations.
//
// All methods are pure functions with no shared state; they are safe to
// call concurrently on independent states.
package integrate

// State is any vector-valued quantity closed under addition and scalar
// multiplication.
type State[S any] interface {
	Add(S) S
	Scale(float64) S
}

// Derivative evaluates dy/dt at time t.
type Derivative[S State[S]] func(t float64, y S) S

// Euler advances y by one explicit Euler step of size dt.
func Euler[S State[S]](f Derivative[S], t float64, y S, dt float64) S {
	return y.Add(f(t, y).Scale(dt))
}

// Heun advances y by one improved-Euler (predictor/corrector) step of
// size dt.
func Heun[S State[S]](f Derivative[S], t float64, y S, dt float64) S {
	k1 := f(t, y)
	k2 := f(t+dt, y.Add(k1.Scale(dt)))
	return y.Add(k1.Add(k2).Scale(dt / 2))
}

// RK4 advances y by one classical fourth-order Runge-Kutta step of
// size dt.
func RK4[S State[S]](f Derivative[S], t float64, y S, dt float64) S {
	k1 := f(t, y)
	k2 := f(t+dt/2, y.Add(k1.Scale(dt/2)))
	k3 := f(t+dt/2, y.Add(k2.Scale(dt/2)))
	k4 := f(t+dt, y.Add(k3.Scale(dt)))
	return y.Add(k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4).Scale(dt / 6))
}
