// Package trajectory computes a projectile's flight path (range, velocity,
// energy, elevation and deflection offsets, time of flight) from muzzle
// conditions, environment and aiming geometry.
//
// A Builder resolves raw inputs into a frozen SimulationInput; Solve runs
// the simulation against a set of requested ranges. A SimulationInput is
// immutable after Build and safe to share between concurrent Solve calls.
package trajectory

import (
	"math"

	"github.com/truescope/go-trajectory/bmath/unit"
)

const cIcaoStandardTemperatureR float64 = 518.67
const cIcaoFreezingPointTemperatureR float64 = 459.67
const cTemperatureGradient float64 = -3.56616e-03
const cPressureExponent float64 = -5.255876
const cSpeedOfSound float64 = 49.0223
const cA0 float64 = 1.24871
const cA1 float64 = 0.0988438
const cA2 float64 = 0.00152907
const cA3 float64 = -3.07031e-06
const cA4 float64 = 4.21329e-07
const cA5 float64 = 3.342e-04
const cStandardTemperature float64 = 59.0
const cStandardPressure float64 = 29.92
const cStandardDensity float64 = 0.076474

// TemperatureAtAltitude extrapolates a sea-level temperature to the given
// altitude along the ICAO lapse rate.
func TemperatureAtAltitude(altitude unit.Distance, seaLevel unit.Temperature) unit.Temperature {
	t := seaLevel.In(unit.TemperatureFahrenheit) + altitude.In(unit.DistanceFoot)*cTemperatureGradient
	return unit.MustCreate(t, unit.TemperatureFahrenheit)
}

// BarometricPressure shifts a station pressure reading to the given
// altitude above the station, assuming the ICAO lapse rate from the
// supplied station temperature.
func BarometricPressure(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature) unit.Pressure {
	t0 := temperature.In(unit.TemperatureFahrenheit) + cIcaoFreezingPointTemperatureR
	t := t0 + altitude.In(unit.DistanceFoot)*cTemperatureGradient
	p := pressure.In(unit.PressureInHg) * math.Pow(t0/t, cPressureExponent)
	return unit.MustCreate(p, unit.PressureInHg)
}

// AirDensityRatio returns the ratio of the air density under the given
// conditions to the ICAO standard density. humidity is relative humidity
// in the 0..1 range; it lowers the effective density through the water
// vapor partial pressure.
func AirDensityRatio(pressure unit.Pressure, temperature unit.Temperature, humidity float64) float64 {
	t := temperature.In(unit.TemperatureFahrenheit)
	p := pressure.In(unit.PressureInHg)

	hc := 1.0
	if t > 0 {
		et0 := cA0 + t*(cA1+t*(cA2+t*(cA3+t*cA4)))
		et := cA5 * humidity * et0
		hc = (p - 0.3783*et) / cStandardPressure
	}
	return cIcaoStandardTemperatureR / (t + cIcaoFreezingPointTemperatureR) * hc
}

// SpeedOfSound returns the speed of sound in air at the given temperature.
func SpeedOfSound(temperature unit.Temperature) unit.Velocity {
	t := temperature.In(unit.TemperatureFahrenheit)
	return unit.MustCreate(math.Sqrt(t+cIcaoFreezingPointTemperatureR)*cSpeedOfSound, unit.VelocityFPS)
}

// icaoTemperatureF returns the ICAO standard temperature (°F) at the given
// altitude in feet.
func icaoTemperatureF(altitudeFt float64) float64 {
	return cIcaoStandardTemperatureR + altitudeFt*cTemperatureGradient - cIcaoFreezingPointTemperatureR
}

// icaoPressureInHg returns the ICAO standard pressure (inHg) at the given
// altitude in feet.
func icaoPressureInHg(altitudeFt float64) float64 {
	tR := icaoTemperatureF(altitudeFt) + cIcaoFreezingPointTemperatureR
	return cStandardPressure * math.Pow(cIcaoStandardTemperatureR/tR, cPressureExponent)
}
