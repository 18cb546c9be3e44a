package trajectory

import (
	"math"

	"github.com/truescope/go-trajectory/bmath/vector"
	"github.com/truescope/go-trajectory/integrate"
)

// physicalState is the integrated state of the projectile: position and
// velocity in the shooter-fixed frame (X down-range, Y vertical, Z cross).
// It is owned by one solver run and never escapes it.
type physicalState struct {
	position vector.Vector
	velocity vector.Vector
}

func (s physicalState) Add(o physicalState) physicalState {
	return physicalState{
		position: s.position.Add(o.position),
		velocity: s.velocity.Add(o.velocity),
	}
}

func (s physicalState) Scale(k float64) physicalState {
	return physicalState{
		position: s.position.Scale(k),
		velocity: s.velocity.Scale(k),
	}
}

// step advances the state by one Heun step of the equations of motion and
// returns the new state together with the step duration.
//
// The drag coefficient is sampled once per step at the wind-relative Mach
// number, not re-sampled inside the predictor/corrector pair; the
// coefficient varies slowly enough over one step that the extra lookups
// would buy nothing.
//
// dt <= 0 selects the adaptive step of 1/vx seconds (about one foot of
// down-range travel, so step density follows the flight phase). Callers
// must ensure vx > 0 before taking the adaptive path.
func step(in *SimulationInput, s physicalState, t, dt float64) (physicalState, float64) {
	wind := vector.New(in.windX, 0, in.windZ)
	coef := in.tableCoefficient * in.table.Lookup(s.velocity.Subtract(wind).Magnitude()/in.mach1)
	if dt <= 0 {
		dt = 1.0 / s.velocity.X
	}

	deriv := func(_ float64, y physicalState) physicalState {
		rel := y.velocity.Subtract(wind)
		acc := rel.Scale(-coef * rel.Magnitude())
		acc.X += in.gravityX
		acc.Y += in.gravityY + in.coriolisVertical*y.velocity.X
		acc.Z += in.coriolisCross * y.velocity.X
		return physicalState{position: y.velocity, velocity: acc}
	}

	return integrate.Heun(deriv, t, s, dt), dt
}

// launchState builds the initial state: position at the muzzle under the
// sight line, velocity along the resolved launch elevation (zero angle
// plus aerodynamic jump).
func launchState(in *SimulationInput) physicalState {
	elevation := in.zeroAngle + in.jumpAngle
	return physicalState{
		position: vector.New(0, -in.sightHeight, 0),
		velocity: vector.New(math.Cos(elevation), math.Sin(elevation), 0).Scale(in.muzzleSpeed),
	}
}
