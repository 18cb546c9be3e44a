package trajectory

import (
	"github.com/truescope/go-trajectory/bmath/unit"
	"github.com/truescope/go-trajectory/drag"
)

// SimulationInput is the frozen product of Builder.Build. All fields are
// resolved; the spin-drift and aerodynamic-jump factors may be zero,
// meaning no correction is applied. The value is never mutated after
// Build returns and is safe to share read-only between concurrent Solve
// calls.
type SimulationInput struct {
	table            drag.Table
	tableCoefficient float64 // folds ballistic coefficient and air density into the lookup result, 1/ft
	muzzleSpeed      float64 // fps
	weight           float64 // grains
	gravityX         float64 // ft/s², down-range component from launch-plane tilt
	gravityY         float64 // ft/s², vertical component
	windX            float64 // fps, down-range wind component
	windZ            float64 // fps, cross wind component
	coriolisVertical float64 // 1/s, vertical acceleration per unit down-range speed
	coriolisCross    float64 // 1/s, cross acceleration per unit down-range speed
	zeroAngle        float64 // radians
	jumpAngle        float64 // radians, 0 when no aerodynamic jump applies
	stability        float64 // gyroscopic stability factor, 0 when unknown
	driftScale       float64 // deflection per unit elevation magnitude, signed by twist, 0 when absent
	twistSign        float64 // +1 right-hand twist, -1 left-hand, 0 unknown
	sightHeight      float64 // ft
	mach1            float64 // fps, speed of sound
}

// DragTable returns the drag curve the simulation samples.
func (in *SimulationInput) DragTable() drag.Table {
	return in.table
}

// TableCoefficient returns the scalar that folds ballistic coefficient and
// air density into the drag-table lookup result.
func (in *SimulationInput) TableCoefficient() float64 {
	return in.tableCoefficient
}

// MuzzleVelocity returns the resolved muzzle velocity.
func (in *SimulationInput) MuzzleVelocity() unit.Velocity {
	return unit.MustCreate(in.muzzleSpeed, unit.VelocityFPS)
}

// ZeroAngle returns the resolved launch angle, explicit or found by the
// zero search.
func (in *SimulationInput) ZeroAngle() unit.Angular {
	return unit.MustCreate(in.zeroAngle, unit.AngularRadian)
}

// AerodynamicJump returns the resolved aerodynamic-jump angle; zero when
// no jump model applied.
func (in *SimulationInput) AerodynamicJump() unit.Angular {
	return unit.MustCreate(in.jumpAngle, unit.AngularRadian)
}

// StabilityFactor returns the gyroscopic stability factor, or 0 when the
// inputs required to compute it were not supplied.
func (in *SimulationInput) StabilityFactor() float64 {
	return in.stability
}

// SpeedOfSound returns the resolved speed of sound for the firing
// conditions.
func (in *SimulationInput) SpeedOfSound() unit.Velocity {
	return unit.MustCreate(in.mach1, unit.VelocityFPS)
}

// SightHeight returns the sight line offset over the bore.
func (in *SimulationInput) SightHeight() unit.Distance {
	return unit.MustCreate(in.sightHeight, unit.DistanceFoot)
}
