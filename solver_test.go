package trajectory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truescope/go-trajectory/bmath/unit"
	"github.com/truescope/go-trajectory/drag"
)

// dragFree is a well-formed table whose coefficient is zero everywhere,
// turning the simulation into ballistics in a vacuum.
func dragFree() drag.Table {
	return drag.Table{{Mach: 0, Drag: 0}, {Mach: 5, Drag: 0}}
}

func vacuumInput(muzzleSpeed, angle float64) *SimulationInput {
	return &SimulationInput{
		table:            dragFree(),
		tableCoefficient: 1,
		muzzleSpeed:      muzzleSpeed,
		weight:           150,
		gravityY:         cGravityConstant,
		zeroAngle:        angle,
		mach1:            1116.45,
	}
}

func yards(values ...float64) []unit.Distance {
	out := make([]unit.Distance, len(values))
	for i, v := range values {
		out[i] = unit.MustCreate(v, unit.DistanceYard)
	}
	return out
}

func TestVacuumParabola(t *testing.T) {
	in := vacuumInput(1000, 0)
	samples := Solve(in, []unit.Distance{unit.MustCreate(500, unit.DistanceFoot)},
		Options{TimeStep: time.Millisecond})
	require.Len(t, samples, 1)

	s := samples[0]
	assert.Equal(t, StopNone, s.Reason)
	assert.InDelta(t, 0.5, s.Time.TotalSeconds(), 1e-4)
	// drop = g t^2 / 2
	assert.InDelta(t, -4.0218, s.Elevation.In(unit.DistanceFoot), 1e-3)
	assert.InDelta(t, 1000.13, s.Velocity.In(unit.VelocityFPS), 0.01)
	assert.InDelta(t, 0, s.Deflection.In(unit.DistanceFoot), 1e-9)
	assert.InDelta(t, 150*1000.13*1000.13/450400, s.Energy.In(unit.EnergyFootPound), 0.5)
}

func TestSamplesAscendWithRanges(t *testing.T) {
	in := vacuumInput(2800, 0)
	samples := Solve(in, yards(10, 20, 30, 40, 50), Options{TimeStep: 10 * time.Millisecond})
	require.Len(t, samples, 5)
	for i := 1; i < len(samples); i++ {
		assert.Greater(t, samples[i].Range.In(unit.DistanceYard), samples[i-1].Range.In(unit.DistanceYard))
		assert.Greater(t, samples[i].Time.TotalSeconds(), samples[i-1].Time.TotalSeconds())
	}
	// a 10 ms step travels 28 ft, crossing each 30 ft mark close to once;
	// every requested range still gets exactly one interpolated sample
	for i, s := range samples {
		assert.InDelta(t, float64(10*(i+1)), s.Range.In(unit.DistanceYard), 1e-6)
	}
}

func TestMaxTimeTermination(t *testing.T) {
	in := vacuumInput(1000, 0.5)
	samples := Solve(in, yards(1e6), Options{MaximumTime: 100 * time.Millisecond})
	require.Len(t, samples, 1)
	assert.Equal(t, StopMaxTime, samples[0].Reason)
	assert.InDelta(t, 0.1, samples[0].Time.TotalSeconds(), 1e-6)
}

func TestMinSpeedTermination(t *testing.T) {
	in := &SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		mach1:            1116.45,
	}
	samples := Solve(in, yards(5000), Options{
		MinimumSpeed: unit.MustCreate(2000, unit.VelocityFPS),
	})
	require.Len(t, samples, 1)
	assert.Equal(t, StopMinSpeed, samples[0].Reason)
	assert.InDelta(t, 2000, samples[0].Velocity.In(unit.VelocityFPS), 1)
}

func TestMinSpeedAboveMuzzleSamplesLaunch(t *testing.T) {
	in := &SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		mach1:            1116.45,
	}
	samples := Solve(in, yards(1000), Options{
		MinimumSpeed: unit.MustCreate(3000, unit.VelocityFPS),
	})
	require.Len(t, samples, 1)

	// the floor is violated before the first step; the sample must stay
	// on the trajectory rather than extrapolate behind the muzzle
	s := samples[0]
	assert.Equal(t, StopMinSpeed, s.Reason)
	assert.InDelta(t, 0, s.Range.In(unit.DistanceFoot), 1e-9)
	assert.InDelta(t, 0, s.Time.TotalSeconds(), 1e-9)
	assert.InDelta(t, 2800, s.Velocity.In(unit.VelocityFPS), 1e-6)
}

func TestSteepFallViolatedAtLaunchSamplesLaunch(t *testing.T) {
	// fired steeply downward, the fall criterion holds from the muzzle
	in := vacuumInput(300, -1.4)
	samples := Solve(in, yards(1e6), Options{})
	require.Len(t, samples, 1)

	s := samples[0]
	assert.Equal(t, StopSteepFall, s.Reason)
	assert.InDelta(t, 0, s.Range.In(unit.DistanceFoot), 1e-9)
	assert.InDelta(t, 0, s.Time.TotalSeconds(), 1e-9)
	assert.InDelta(t, 300, s.Velocity.In(unit.VelocityFPS), 1e-6)
}

func TestMinEnergyRaisesSpeedFloor(t *testing.T) {
	in := &SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		mach1:            1116.45,
	}
	// 1500 ft·lb of 155 gr needs sqrt(1500*450400/155) ≈ 2088 fps
	samples := Solve(in, yards(5000), Options{
		MinimumEnergy: unit.MustCreate(1500, unit.EnergyFootPound),
	})
	require.Len(t, samples, 1)
	assert.Equal(t, StopMinSpeed, samples[0].Reason)
	assert.InDelta(t, 2088, samples[0].Velocity.In(unit.VelocityFPS), 2)
	assert.InDelta(t, 1500, samples[0].Energy.In(unit.EnergyFootPound), 5)
}

func TestSteepFallTermination(t *testing.T) {
	// a slow lobbed shot in vacuum turns over until vy = -3 vx
	in := vacuumInput(300, 0.785)
	samples := Solve(in, yards(1e6), Options{})
	require.Len(t, samples, 1)
	assert.Equal(t, StopSteepFall, samples[0].Reason)

	vx := 300 * 0.7074 // cos(0.785)
	wantT := (300*0.7068 + 3*vx) / -cGravityConstant
	assert.InDelta(t, wantT, samples[0].Time.TotalSeconds(), 0.05)
}

func TestMaxStepsBoundsRunawayInputs(t *testing.T) {
	in := vacuumInput(1000, 0)
	in.gravityY = 0 // never terminates on its own before max time
	samples := Solve(in, yards(1e9), Options{MaxSteps: 100, TimeStep: time.Millisecond})
	assert.Empty(t, samples)
}

func TestCrosswindDeflectsDownwind(t *testing.T) {
	in := &SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		windZ:            14.67, // 10 mph from the left
		mach1:            1116.45,
	}
	samples := Solve(in, yards(500), Options{})
	require.Len(t, samples, 1)
	assert.Positive(t, samples[0].Deflection.In(unit.DistanceInch))

	in.windZ = -in.windZ
	mirrored := Solve(in, yards(500), Options{})
	require.Len(t, mirrored, 1)
	assert.InDelta(t,
		-samples[0].Deflection.In(unit.DistanceInch),
		mirrored[0].Deflection.In(unit.DistanceInch), 1e-6)
}

func TestSpinDriftSignFollowsTwist(t *testing.T) {
	base := SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		stability:        1.74,
		mach1:            1116.45,
	}

	right := base
	right.twistSign = 1
	left := base
	left.twistSign = -1

	rs := Solve(&right, yards(1000), Options{})
	ls := Solve(&left, yards(1000), Options{})
	require.Len(t, rs, 1)
	require.Len(t, ls, 1)

	assert.Positive(t, rs[0].Deflection.In(unit.DistanceInch))
	assert.Negative(t, ls[0].Deflection.In(unit.DistanceInch))
	assert.InDelta(t,
		rs[0].Deflection.In(unit.DistanceInch),
		-ls[0].Deflection.In(unit.DistanceInch), 1e-6)
}

func TestDriftScaleTakesPrecedence(t *testing.T) {
	in := vacuumInput(1000, 0)
	in.stability = 1.74
	in.twistSign = 1
	in.driftScale = 0.01

	samples := Solve(in, []unit.Distance{unit.MustCreate(500, unit.DistanceFoot)},
		Options{TimeStep: time.Millisecond})
	require.Len(t, samples, 1)
	wantFt := 0.01 * 4.0218
	assert.InDelta(t, wantFt, samples[0].Deflection.In(unit.DistanceFoot), 1e-4)
}

// The reference load for the end-to-end checks: a 155 gr .308 bullet at
// 2800 fps against the G7 curve with a coefficient of 0.232, standard
// atmosphere, sighted 1.5 inches over bore and launched 3.66 MOA up.
func referenceInput() *SimulationInput {
	return &SimulationInput{
		table:            drag.G7(),
		tableCoefficient: 2.08551e-04 / 0.232,
		muzzleSpeed:      2800,
		weight:           155,
		gravityY:         cGravityConstant,
		zeroAngle:        unit.MustCreate(3.66, unit.AngularMOA).In(unit.AngularRadian),
		sightHeight:      1.5 / 12,
		mach1:            1116.45,
	}
}

func TestReferenceTrajectory(t *testing.T) {
	in := referenceInput()
	samples := Solve(in, yards(100, 1000), Options{TimeStep: 100 * time.Microsecond})
	require.Len(t, samples, 2)

	near := samples[0]
	assert.InDelta(t, 2600.4, near.Velocity.In(unit.VelocityFPS), 5)
	assert.InDelta(t, 0.1112, near.Time.TotalSeconds(), 0.01)
	assert.InDelta(t, 0, near.Elevation.In(unit.DistanceInch), 0.3)

	far := samples[1]
	assert.InDelta(t, 1149.9, far.Velocity.In(unit.VelocityFPS), 5)
	assert.InDelta(t, 1.672, far.Time.TotalSeconds(), 0.01)
	assert.InDelta(t, -372.7, far.Elevation.In(unit.DistanceInch), 8)
}

func TestAdaptiveAndFixedStepAgree(t *testing.T) {
	adaptive := Solve(referenceInput(), yards(600), Options{})
	fixed := Solve(referenceInput(), yards(600), Options{TimeStep: 100 * time.Microsecond})
	require.Len(t, adaptive, 1)
	require.Len(t, fixed, 1)

	assert.InDelta(t,
		fixed[0].Velocity.In(unit.VelocityFPS),
		adaptive[0].Velocity.In(unit.VelocityFPS), 2)
	assert.InDelta(t,
		fixed[0].Elevation.In(unit.DistanceInch),
		adaptive[0].Elevation.In(unit.DistanceInch), 0.5)
}

func TestTimespan(t *testing.T) {
	ts := Timespan{time: 125.75}
	assert.InDelta(t, 125.75, ts.TotalSeconds(), 1e-12)
	assert.InDelta(t, 5, ts.Seconds(), 1e-12)
	assert.InDelta(t, 2, ts.Minutes(), 1e-12)
}

func TestStopReasonString(t *testing.T) {
	assert.Equal(t, "range", StopNone.String())
	assert.Equal(t, "max-time", StopMaxTime.String())
	assert.Equal(t, "min-speed", StopMinSpeed.String())
	assert.Equal(t, "steep-fall", StopSteepFall.String())
}
