package trajectory

import "math"

// cEarthRotationRate is the angular speed of Earth's rotation, rad/s.
const cEarthRotationRate = 7.292e-5

// cMachThreshold is the Mach number at which the geometry-driven drift
// model samples the time of flight.
const cMachThreshold = 1.2

// millerStability computes the gyroscopic stability factor by the Miller
// twist rule with velocity and atmospheric corrections. Inputs are in
// inches, grains, fps, °F and inHg.
func millerStability(diameter, length, twist, weight, muzzleVelocity, temperature, pressure float64) float64 {
	t := twist / diameter
	l := length / diameter
	sd := 30 * weight / (t * t * diameter * diameter * diameter * l * (1 + l*l))
	fv := math.Pow(muzzleVelocity/2800, 1.0/3.0)
	ftp := (temperature + 460) / (59 + 460) * (29.92 / pressure)
	return sd * fv * ftp
}

// spinDriftInches is the closed-form lateral drift (inches, unsigned) of a
// stabilized projectile after t seconds of flight.
func spinDriftInches(stability, t float64) float64 {
	return 1.25 * (stability + 1.2) * math.Pow(t, 1.83)
}

// simpleAerodynamicJump is the fallback jump model: the vertical angular
// deflection (radians, unsigned for a unit right-hand twist) imparted by
// crosswind shortly after launch, keyed on the stability factor, the
// projectile length in calibers and the crosswind component in fps.
func simpleAerodynamicJump(stability, lengthCalibers, crosswind float64) float64 {
	moaPerMph := 0.01*stability - 0.0024*lengthCalibers + 0.032
	crossMph := crosswind * 3600 / 5280
	return moaPerMph * crossMph * math.Pi / 10800
}

// shapeParams carries the full projectile geometry consumed by the
// geometry-driven drift model. All lengths and diameters are expressed in
// calibers.
type shapeParams struct {
	noseLength     float64
	tailLength     float64
	meplatDiameter float64
	baseDiameter   float64
	lengthCalibers float64
	twistCalibers  float64
}

// shapeJumpAndDrift is the higher-fidelity drift/jump model. Along with
// the geometry it takes the stability factor, the crosswind component
// (fps) and the time (s) the projectile needs to decelerate through
// cMachThreshold, obtained by the caller from a forward sub-simulation.
// It returns the aerodynamic jump angle (radians) and a dimensionless
// spin-drift scale factor applied as deflection per unit of elevation
// magnitude; both are unsigned for a unit right-hand twist.
func shapeJumpAndDrift(p shapeParams, stability, crosswind, timeToThreshold float64) (jump, scale float64) {
	// The body shape enters through the boat-tail and meplat fractions:
	// a longer tail and a blunter meplat both shift the center of
	// pressure and strengthen the yaw of repose.
	form := 1 + 0.5*p.tailLength/p.lengthCalibers + 0.25*p.meplatDiameter
	if p.baseDiameter > 0 {
		form *= p.baseDiameter
	}

	jump = simpleAerodynamicJump(stability, p.lengthCalibers, crosswind) * form

	// Drift grows with stability and with the supersonic portion of the
	// flight; the sampled time to the Mach threshold stands in for the
	// latter. The factor multiplies the magnitude of each sample's
	// elevation, an empirical proxy for drop-dependent drift.
	scale = 0.01 * (stability + 1.2) * form * (1 + 0.25*math.Sqrt(timeToThreshold))
	if p.twistCalibers > 0 {
		scale *= 25 / p.twistCalibers
	}
	return jump, scale
}
