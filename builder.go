package trajectory

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/truescope/go-trajectory/bmath/unit"
	"github.com/truescope/go-trajectory/bmath/vector"
	"github.com/truescope/go-trajectory/drag"
)

// cDragConversionFactor converts a drag-table coefficient scaled by air
// density and ballistic coefficient into the retardation per foot of a
// standard-atmosphere reference projectile.
const cDragConversionFactor float64 = 2.08551e-04

// cArmyToIcaoFactor rescales a ballistic coefficient referenced to the
// Army Standard Metro atmosphere into the ICAO reference used internally.
const cArmyToIcaoFactor float64 = 0.982

// cZeroFindingTolerance is the zero-angle bisection convergence bound,
// 0.01 minute of angle in radians.
const cZeroFindingTolerance float64 = 0.01 * math.Pi / 10800

// cMaxZeroAngle bounds the zero search bracket at 45 degrees.
const cMaxZeroAngle float64 = math.Pi / 4

// cSubSimulationMaxSteps guards the Mach-threshold sub-simulation against
// inputs that never decelerate through the threshold.
const cSubSimulationMaxSteps int = 100000

// AtmosphereReference identifies the standard atmosphere a ballistic
// coefficient was measured against.
type AtmosphereReference byte

const (
	// ReferenceICAO is the default reference atmosphere.
	ReferenceICAO AtmosphereReference = iota
	// ReferenceArmyStandardMetro marks a coefficient referenced to the
	// Army Standard Metro atmosphere; it is rescaled to ICAO before use.
	ReferenceArmyStandardMetro
)

// TwistDirection is the hand of the barrel rifling.
type TwistDirection byte

const (
	TwistRight TwistDirection = iota
	TwistLeft
)

// Builder accumulates raw shot inputs and resolves them, in a fixed stage
// order, into a frozen SimulationInput. Missing optional inputs resolve to
// neutral values (no wind, no Coriolis, no spin corrections); only the
// minimal preconditions checked by Build produce an error.
type Builder struct {
	log zerolog.Logger

	table    drag.Table
	hasTable bool

	ballisticCoefficient    float64
	hasBallisticCoefficient bool
	atmosphereReference     AtmosphereReference

	muzzleVelocity    unit.Velocity
	hasMuzzleVelocity bool
	weight            unit.Weight
	hasWeight         bool
	diameter          unit.Distance
	hasDiameter       bool
	length            unit.Distance
	hasLength         bool
	twist             unit.Distance
	twistDirection    TwistDirection
	hasTwist          bool

	altitude               unit.Distance
	hasAltitude            bool
	pressure               unit.Pressure
	hasPressure            bool
	barometerAltitude      unit.Distance
	hasBarometerAltitude   bool
	temperature            unit.Temperature
	hasTemperature         bool
	thermometerAltitude    unit.Distance
	hasThermometerAltitude bool
	humidity               float64

	windSpeed      unit.Velocity
	hasWindSpeed   bool
	windHeading    unit.Angular
	hasWindHeading bool

	latitude    unit.Angular
	hasLatitude bool
	azimuth     unit.Angular
	hasAzimuth  bool

	rangeAngle    unit.Angular
	hasRangeAngle bool

	sightHeight    unit.Distance
	hasSightHeight bool

	zeroDistance    unit.Distance
	hasZeroDistance bool
	zeroHeight      unit.Distance
	hasZeroHeight   bool
	zeroAngle       unit.Angular
	hasZeroAngle    bool

	noseLength     unit.Distance
	tailLength     unit.Distance
	meplatDiameter unit.Distance
	baseDiameter   unit.Distance
	hasShape       bool
}

// NewBuilder creates an empty builder. Logging is disabled until
// WithLogger is called.
func NewBuilder() *Builder {
	return &Builder{log: zerolog.Nop()}
}

// WithLogger attaches a logger; each resolution stage emits one Debug
// event with its resolved quantities.
func (b *Builder) WithLogger(log zerolog.Logger) *Builder {
	b.log = log
	return b
}

// SetDragTable selects the drag curve. Without it, Build uses the G1
// standard table.
func (b *Builder) SetDragTable(table drag.Table) *Builder {
	b.table = table
	b.hasTable = true
	return b
}

// SetBallisticCoefficient sets the ballistic coefficient referenced to
// the selected drag curve and atmosphere reference.
func (b *Builder) SetBallisticCoefficient(value float64) *Builder {
	b.ballisticCoefficient = value
	b.hasBallisticCoefficient = true
	return b
}

// SetAtmosphereReference declares which standard atmosphere the ballistic
// coefficient was measured against.
func (b *Builder) SetAtmosphereReference(ref AtmosphereReference) *Builder {
	b.atmosphereReference = ref
	return b
}

// SetMuzzleVelocity sets the projectile speed at the muzzle.
func (b *Builder) SetMuzzleVelocity(v unit.Velocity) *Builder {
	b.muzzleVelocity = v
	b.hasMuzzleVelocity = true
	return b
}

// SetWeight sets the projectile mass.
func (b *Builder) SetWeight(w unit.Weight) *Builder {
	b.weight = w
	b.hasWeight = true
	return b
}

// SetDiameter sets the projectile caliber.
func (b *Builder) SetDiameter(d unit.Distance) *Builder {
	b.diameter = d
	b.hasDiameter = true
	return b
}

// SetLength sets the projectile length.
func (b *Builder) SetLength(l unit.Distance) *Builder {
	b.length = l
	b.hasLength = true
	return b
}

// SetTwist sets the rifling twist pitch and hand. Twist, diameter, length
// and weight together enable the stability and spin-drift models.
func (b *Builder) SetTwist(twist unit.Distance, direction TwistDirection) *Builder {
	b.twist = twist
	b.twistDirection = direction
	b.hasTwist = true
	return b
}

// SetAltitude sets the firing site altitude over sea level.
func (b *Builder) SetAltitude(a unit.Distance) *Builder {
	b.altitude = a
	b.hasAltitude = true
	return b
}

// SetPressure sets a barometric pressure reading taken at the firing
// site.
func (b *Builder) SetPressure(p unit.Pressure) *Builder {
	b.pressure = p
	b.hasPressure = true
	b.hasBarometerAltitude = false
	return b
}

// SetPressureAtAltitude sets a barometric pressure reading taken at an
// altitude other than the firing site; the reading is shifted to the site
// along the standard lapse.
func (b *Builder) SetPressureAtAltitude(p unit.Pressure, altitude unit.Distance) *Builder {
	b.pressure = p
	b.hasPressure = true
	b.barometerAltitude = altitude
	b.hasBarometerAltitude = true
	return b
}

// SetTemperature sets an air temperature reading taken at the firing
// site.
func (b *Builder) SetTemperature(t unit.Temperature) *Builder {
	b.temperature = t
	b.hasTemperature = true
	b.hasThermometerAltitude = false
	return b
}

// SetTemperatureAtAltitude sets an air temperature reading taken at an
// altitude other than the firing site.
func (b *Builder) SetTemperatureAtAltitude(t unit.Temperature, altitude unit.Distance) *Builder {
	b.temperature = t
	b.hasTemperature = true
	b.thermometerAltitude = altitude
	b.hasThermometerAltitude = true
	return b
}

// SetHumidity sets the relative humidity, accepted in either the 0..1 or
// the 0..100 range; out-of-range values are clamped.
func (b *Builder) SetHumidity(h float64) *Builder {
	if h > 1 {
		h = h / 100
	}
	b.humidity = math.Max(0, math.Min(1, h))
	return b
}

// SetWind sets the wind speed and heading: 0 blows down-range with the
// bullet (tailwind), 90° blows left to right.
func (b *Builder) SetWind(speed unit.Velocity, heading unit.Angular) *Builder {
	b.windSpeed = speed
	b.hasWindSpeed = true
	b.windHeading = heading
	b.hasWindHeading = true
	return b
}

// SetLatitude sets the firing site latitude, negative in the southern
// hemisphere. Latitude and azimuth together enable the Coriolis terms.
func (b *Builder) SetLatitude(lat unit.Angular) *Builder {
	b.latitude = lat
	b.hasLatitude = true
	return b
}

// SetAzimuth sets the firing azimuth, clockwise from north.
func (b *Builder) SetAzimuth(az unit.Angular) *Builder {
	b.azimuth = az
	b.hasAzimuth = true
	return b
}

// SetRangeAngle sets the launch-plane tilt for shots up or down a slope.
func (b *Builder) SetRangeAngle(a unit.Angular) *Builder {
	b.rangeAngle = a
	b.hasRangeAngle = true
	return b
}

// SetSightHeight sets the sight line offset over the bore centerline.
func (b *Builder) SetSightHeight(h unit.Distance) *Builder {
	b.sightHeight = h
	b.hasSightHeight = true
	return b
}

// SetZeroDistance sets the distance at which the zero search makes the
// trajectory cross the target height (see SetZeroHeight).
func (b *Builder) SetZeroDistance(d unit.Distance) *Builder {
	b.zeroDistance = d
	b.hasZeroDistance = true
	return b
}

// SetZeroHeight sets the target impact height over the sight line at the
// zero distance; default 0.
func (b *Builder) SetZeroHeight(h unit.Distance) *Builder {
	b.zeroHeight = h
	b.hasZeroHeight = true
	return b
}

// SetZeroAngle sets the launch angle explicitly, skipping the zero
// search.
func (b *Builder) SetZeroAngle(a unit.Angular) *Builder {
	b.zeroAngle = a
	b.hasZeroAngle = true
	return b
}

// SetShape supplies the projectile nose and boat-tail lengths and the
// meplat and base diameters, enabling the geometry-driven jump and drift
// model.
func (b *Builder) SetShape(noseLength, tailLength, meplatDiameter, baseDiameter unit.Distance) *Builder {
	b.noseLength = noseLength
	b.tailLength = tailLength
	b.meplatDiameter = meplatDiameter
	b.baseDiameter = baseDiameter
	b.hasShape = true
	return b
}

// environment carries the intermediate results of the environment stage
// consumed by the later stages.
type environment struct {
	temperatureF float64
	pressureInHg float64
	densityRatio float64
	speedOfSound float64
}

// Build resolves the accumulated inputs into a frozen SimulationInput.
// Stage order matters: later stages consume earlier results. Build fails
// only when a minimal precondition is unmet: the ballistic coefficient
// must be set, the muzzle velocity positive, and a zero distance or
// explicit angle present.
func (b *Builder) Build() (*SimulationInput, error) {
	if !b.hasBallisticCoefficient || b.ballisticCoefficient <= 0 {
		return nil, fmt.Errorf("build: ballistic coefficient must be set and positive")
	}
	if !b.hasMuzzleVelocity || b.muzzleVelocity.In(unit.VelocityFPS) <= 0 {
		return nil, fmt.Errorf("build: muzzle velocity must be set and positive")
	}
	if !b.hasZeroDistance && !b.hasZeroAngle {
		return nil, fmt.Errorf("build: either a zero distance or an explicit zero angle is required")
	}

	in := &SimulationInput{
		muzzleSpeed: b.muzzleVelocity.In(unit.VelocityFPS),
	}
	if b.hasWeight {
		in.weight = b.weight.In(unit.WeightGrain)
	}
	if b.hasSightHeight {
		in.sightHeight = b.sightHeight.In(unit.DistanceFoot)
	}

	env := b.resolveEnvironment(in)
	b.resolveTable(in, env)
	b.resolveWind(in)
	b.resolveStability(in, env)
	b.resolveDriftModel(in)
	b.resolveCoriolis(in)
	b.resolveZeroAngle(in)

	return in, nil
}

func (b *Builder) resolveEnvironment(in *SimulationInput) environment {
	siteAltFt := 0.0
	if b.hasAltitude {
		siteAltFt = b.altitude.In(unit.DistanceFoot)
	}

	var tF float64
	if b.hasTemperature {
		readingAltFt := siteAltFt
		if b.hasThermometerAltitude {
			readingAltFt = b.thermometerAltitude.In(unit.DistanceFoot)
		}
		tF = b.temperature.In(unit.TemperatureFahrenheit) + (siteAltFt-readingAltFt)*cTemperatureGradient
	} else {
		tF = icaoTemperatureF(siteAltFt)
	}

	var pInHg float64
	if b.hasPressure {
		readingAltFt := siteAltFt
		if b.hasBarometerAltitude {
			readingAltFt = b.barometerAltitude.In(unit.DistanceFoot)
		}
		tAtReading := tF + (readingAltFt-siteAltFt)*cTemperatureGradient
		shifted := BarometricPressure(
			unit.MustCreate(siteAltFt-readingAltFt, unit.DistanceFoot),
			b.pressure,
			unit.MustCreate(tAtReading, unit.TemperatureFahrenheit))
		pInHg = shifted.In(unit.PressureInHg)
	} else {
		pInHg = icaoPressureInHg(siteAltFt)
	}

	env := environment{
		temperatureF: tF,
		pressureInHg: pInHg,
		densityRatio: AirDensityRatio(
			unit.MustCreate(pInHg, unit.PressureInHg),
			unit.MustCreate(tF, unit.TemperatureFahrenheit),
			b.humidity),
		speedOfSound: SpeedOfSound(unit.MustCreate(tF, unit.TemperatureFahrenheit)).In(unit.VelocityFPS),
	}
	in.mach1 = env.speedOfSound

	tilt := 0.0
	if b.hasRangeAngle {
		tilt = b.rangeAngle.In(unit.AngularRadian)
	}
	in.gravityX = cGravityConstant * math.Sin(tilt)
	in.gravityY = cGravityConstant * math.Cos(tilt)

	b.log.Debug().
		Float64("altitudeFt", siteAltFt).
		Float64("temperatureF", tF).
		Float64("pressureInHg", pInHg).
		Float64("densityRatio", env.densityRatio).
		Float64("speedOfSoundFps", env.speedOfSound).
		Msg("environment resolved")
	return env
}

func (b *Builder) resolveTable(in *SimulationInput, env environment) {
	bc := b.ballisticCoefficient
	if b.atmosphereReference == ReferenceArmyStandardMetro {
		bc *= cArmyToIcaoFactor
	}
	if b.hasTable {
		in.table = b.table
	} else {
		in.table = drag.G1()
	}
	in.tableCoefficient = env.densityRatio * cDragConversionFactor / bc

	b.log.Debug().
		Float64("ballisticCoefficient", bc).
		Float64("tableCoefficient", in.tableCoefficient).
		Int("tablePoints", len(in.table)).
		Msg("drag table resolved")
}

func (b *Builder) resolveWind(in *SimulationInput) {
	speed, heading := 0.0, 0.0
	if b.hasWindSpeed {
		speed = b.windSpeed.In(unit.VelocityFPS)
	}
	if b.hasWindHeading {
		heading = b.windHeading.In(unit.AngularRadian)
	}
	in.windX = speed * math.Cos(heading)
	in.windZ = speed * math.Sin(heading)

	b.log.Debug().
		Float64("windDownRangeFps", in.windX).
		Float64("windCrossFps", in.windZ).
		Msg("wind resolved")
}

func (b *Builder) resolveStability(in *SimulationInput, env environment) {
	if !(b.hasDiameter && b.hasLength && b.hasTwist && b.hasWeight) {
		return
	}
	in.stability = millerStability(
		b.diameter.In(unit.DistanceInch),
		b.length.In(unit.DistanceInch),
		b.twist.In(unit.DistanceInch),
		b.weight.In(unit.WeightGrain),
		in.muzzleSpeed,
		env.temperatureF,
		env.pressureInHg)
	if b.twistDirection == TwistLeft {
		in.twistSign = -1
	} else {
		in.twistSign = 1
	}

	b.log.Debug().
		Float64("stabilityFactor", in.stability).
		Float64("twistSign", in.twistSign).
		Msg("stability resolved")
}

func (b *Builder) resolveDriftModel(in *SimulationInput) {
	switch {
	case b.hasShape && b.hasDiameter && in.stability != 0:
		d := b.diameter.In(unit.DistanceInch)
		params := shapeParams{
			noseLength:     b.noseLength.In(unit.DistanceInch) / d,
			tailLength:     b.tailLength.In(unit.DistanceInch) / d,
			meplatDiameter: b.meplatDiameter.In(unit.DistanceInch) / d,
			baseDiameter:   b.baseDiameter.In(unit.DistanceInch) / d,
			lengthCalibers: b.length.In(unit.DistanceInch) / d,
			twistCalibers:  b.twist.In(unit.DistanceInch) / d,
		}
		told := b.timeToMachThreshold(in)
		jump, scale := shapeJumpAndDrift(params, in.stability, in.windZ, told)
		in.jumpAngle = in.twistSign * jump
		in.driftScale = in.twistSign * scale
		b.log.Debug().
			Float64("timeToMachThreshold", told).
			Float64("jumpAngleRad", in.jumpAngle).
			Float64("driftScale", in.driftScale).
			Msg("geometry drift model resolved")
	case in.stability != 0 && b.hasDiameter && b.hasLength:
		l := b.length.In(unit.DistanceInch) / b.diameter.In(unit.DistanceInch)
		in.jumpAngle = in.twistSign * simpleAerodynamicJump(in.stability, l, in.windZ)
		b.log.Debug().
			Float64("jumpAngleRad", in.jumpAngle).
			Msg("simple jump model resolved")
	}
}

// timeToMachThreshold runs a short flat-launch forward simulation until
// the projectile decelerates through cMachThreshold and returns the
// elapsed time. The loop is bounded: a projectile that never slows
// through the threshold yields the time at the iteration cap.
func (b *Builder) timeToMachThreshold(in *SimulationInput) float64 {
	state := physicalState{
		position: vector.New(0, -in.sightHeight, 0),
		velocity: vector.New(in.muzzleSpeed, 0, 0),
	}
	t := 0.0
	for i := 0; i < cSubSimulationMaxSteps; i++ {
		if state.velocity.Magnitude() <= cMachThreshold*in.mach1 {
			break
		}
		if state.velocity.X <= 0 {
			break
		}
		var dt float64
		state, dt = step(in, state, t, 0)
		t += dt
	}
	return t
}

func (b *Builder) resolveCoriolis(in *SimulationInput) {
	if !(b.hasLatitude && b.hasAzimuth) {
		return
	}
	lat := b.latitude.In(unit.AngularRadian)
	az := b.azimuth.In(unit.AngularRadian)
	in.coriolisVertical = 2 * cEarthRotationRate * math.Cos(lat) * math.Sin(az)
	in.coriolisCross = 2 * cEarthRotationRate * math.Sin(lat)

	b.log.Debug().
		Float64("coriolisVertical", in.coriolisVertical).
		Float64("coriolisCross", in.coriolisCross).
		Msg("coriolis resolved")
}

// resolveZeroAngle finds the launch angle that makes the trajectory cross
// the target height at the zero distance, by bisection over [0°, 45°].
// Drop versus angle is monotonic over the bracket for physically valid
// inputs, so the search converges unconditionally.
func (b *Builder) resolveZeroAngle(in *SimulationInput) {
	if b.hasZeroAngle {
		in.zeroAngle = b.zeroAngle.In(unit.AngularRadian)
		return
	}

	targetFt := 0.0
	if b.hasZeroHeight {
		targetFt = b.zeroHeight.In(unit.DistanceFoot)
	}
	ranges := []unit.Distance{b.zeroDistance}

	lo, hi := 0.0, cMaxZeroAngle
	for hi-lo > cZeroFindingTolerance {
		mid := (lo + hi) / 2
		probe := *in
		probe.zeroAngle = mid
		samples := Solve(&probe, ranges, Options{})
		if len(samples) == 0 || samples[0].Reason != StopNone {
			// fell short of the zero distance: needs more elevation
			lo = mid
			continue
		}
		if samples[0].Elevation.In(unit.DistanceFoot) > targetFt {
			hi = mid
		} else {
			lo = mid
		}
	}
	in.zeroAngle = (lo + hi) / 2

	b.log.Debug().
		Float64("zeroAngleMoa", unit.MustCreate(in.zeroAngle, unit.AngularRadian).In(unit.AngularMOA)).
		Msg("zero angle resolved")
}
