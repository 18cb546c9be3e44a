package trajectory

import (
	"math"
	"time"

	"github.com/truescope/go-trajectory/bmath/unit"
)

const cGravityConstant float64 = -32.17405
const cMinimumSpeed float64 = 50.0
const cEnergyConstant float64 = 450400
const cDefaultMaximumTime float64 = 90.0
const cDefaultMaxSteps int = 2000000

// cSteepFallRatio terminates a run once the vertical speed exceeds this
// multiple of the down-range speed: the projectile has turned over and is
// long past any range worth sampling.
const cSteepFallRatio float64 = 3.0

// Options control the termination thresholds and the integration step of
// a Solve call. The zero value selects the defaults: a 50 fps speed
// floor, no energy floor, a 90 s flight-time ceiling and the adaptive
// one-foot step.
type Options struct {
	// MinimumSpeed ends the run once the projectile decelerates through
	// it.
	MinimumSpeed unit.Velocity

	// MinimumEnergy ends the run once the kinetic energy falls below it;
	// the effective speed floor is the greater of the two thresholds.
	MinimumEnergy unit.Energy

	// MaximumTime ends the run once the flight time exceeds it.
	MaximumTime time.Duration

	// TimeStep fixes the integration step. When zero, the step adapts to
	// the down-range speed (about one foot of travel per step).
	TimeStep time.Duration

	// MaxSteps bounds the stepping loop against pathological inputs that
	// never meet a termination condition. Well-formed inputs terminate
	// far earlier through the range, time and speed rules.
	MaxSteps int
}

// Solve runs the simulation described by in against the requested ranges,
// which must be ascending. It returns one sample per satisfied range, in
// order, plus at most one final sample for an early termination; the
// result is shorter than ranges when the flight ends early.
func Solve(in *SimulationInput, ranges []unit.Distance, opts Options) []Sample {
	maxTime := opts.MaximumTime.Seconds()
	if maxTime <= 0 {
		maxTime = cDefaultMaximumTime
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = cDefaultMaxSteps
	}
	fixedStep := opts.TimeStep.Seconds()

	minSpeed := opts.MinimumSpeed.In(unit.VelocityFPS)
	if e := opts.MinimumEnergy.In(unit.EnergyFootPound); e > 0 && in.weight > 0 {
		if v := math.Sqrt(e * cEnergyConstant / in.weight); v > minSpeed {
			minSpeed = v
		}
	}
	if minSpeed <= 0 {
		minSpeed = cMinimumSpeed
	}

	rangesFt := make([]float64, len(ranges))
	for i, r := range ranges {
		rangesFt[i] = r.In(unit.DistanceFoot)
	}

	samples := make([]Sample, 0, len(ranges))
	state := launchState(in)
	t := 0.0
	next := 0

	for steps := 0; steps < maxSteps; steps++ {
		if next >= len(rangesFt) || state.velocity.X <= 0 {
			break
		}
		prev, prevT := state, t
		var dt float64
		state, dt = step(in, state, t, fixedStep)
		t += dt

		// range crossings; a fast step may satisfy several at once
		for next < len(rangesFt) && state.position.X >= rangesFt[next] {
			alpha := (rangesFt[next] - prev.position.X) / (state.position.X - prev.position.X)
			samples = append(samples, in.sampleAt(lerpState(prev, state, alpha), lerp(prevT, t, alpha), StopNone))
			next++
		}
		if next >= len(rangesFt) {
			break
		}

		if t >= maxTime {
			alpha := (maxTime - prevT) / (t - prevT)
			samples = append(samples, in.sampleAt(lerpState(prev, state, alpha), maxTime, StopMaxTime))
			break
		}

		preSpeed := prev.velocity.Magnitude()
		postSpeed := state.velocity.Magnitude()
		if postSpeed <= minSpeed {
			// clamped: a floor above the muzzle speed samples the launch
			// state instead of extrapolating behind it
			alpha := clamp01((minSpeed - preSpeed) / (postSpeed - preSpeed))
			samples = append(samples, in.sampleAt(lerpState(prev, state, alpha), lerp(prevT, t, alpha), StopMinSpeed))
			break
		}

		preFall := prev.velocity.Y + cSteepFallRatio*prev.velocity.X
		postFall := state.velocity.Y + cSteepFallRatio*state.velocity.X
		if postFall <= 0 {
			alpha := clamp01((0 - preFall) / (postFall - preFall))
			samples = append(samples, in.sampleAt(lerpState(prev, state, alpha), lerp(prevT, t, alpha), StopSteepFall))
			break
		}
	}

	applySpinDrift(in, samples)
	return samples
}

// sampleAt converts an interpolated state into an output sample. Energy is
// recomputed from the interpolated velocity rather than interpolated
// itself.
func (in *SimulationInput) sampleAt(s physicalState, t float64, reason StopReason) Sample {
	speed := s.velocity.Magnitude()
	return Sample{
		Range:      unit.MustCreate(s.position.X, unit.DistanceFoot),
		Velocity:   unit.MustCreate(speed, unit.VelocityFPS),
		Energy:     unit.MustCreate(calculateEnergy(in.weight, speed), unit.EnergyFootPound),
		Elevation:  unit.MustCreate(s.position.Y, unit.DistanceFoot),
		Deflection: unit.MustCreate(s.position.Z, unit.DistanceFoot),
		Time:       Timespan{time: t},
		Reason:     reason,
	}
}

// applySpinDrift adds the spin-drift correction to every sample's
// deflection. The precomputed scale factor (deflection per unit of
// elevation magnitude) takes precedence; without it the closed-form
// drift-vs-time formula keyed on the stability factor applies; with
// neither, deflection stays as the wind produced it.
func applySpinDrift(in *SimulationInput, samples []Sample) {
	for i := range samples {
		var driftFt float64
		switch {
		case in.driftScale != 0:
			driftFt = in.driftScale * math.Abs(samples[i].Elevation.In(unit.DistanceFoot))
		case in.stability != 0 && in.twistSign != 0:
			driftFt = in.twistSign * spinDriftInches(in.stability, samples[i].Time.TotalSeconds()) / 12
		default:
			continue
		}
		d := samples[i].Deflection.In(unit.DistanceFoot) + driftFt
		samples[i].Deflection = unit.MustCreate(d, unit.DistanceFoot)
	}
}

func calculateEnergy(weightGrains, speedFps float64) float64 {
	return weightGrains * speedFps * speedFps / cEnergyConstant
}

func lerp(a, b, alpha float64) float64 {
	return a + (b-a)*alpha
}

// clamp01 keeps an interpolation fraction inside the step; a
// non-finite fraction (flat bracket) collapses to the pre-step state.
func clamp01(a float64) float64 {
	if !(a > 0) {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

func lerpState(a, b physicalState, alpha float64) physicalState {
	return physicalState{
		position: a.position.Add(b.position.Subtract(a.position).Scale(alpha)),
		velocity: a.velocity.Add(b.velocity.Subtract(a.velocity).Scale(alpha)),
	}
}
