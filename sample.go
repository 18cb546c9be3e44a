package trajectory

import (
	"math"

	"github.com/truescope/go-trajectory/bmath/unit"
)

// Timespan keeps the amount of time spent in flight.
type Timespan struct {
	time float64
}

// TotalSeconds returns the total number of seconds.
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

// Seconds returns the whole number of seconds within the minute.
func (v Timespan) Seconds() float64 {
	return math.Mod(math.Floor(v.time), 60)
}

// Minutes returns the whole number of minutes.
func (v Timespan) Minutes() float64 {
	return math.Mod(math.Floor(v.time/60), 60)
}

// StopReason records why a sample was emitted.
type StopReason byte

const (
	// StopNone marks a sample taken at a requested range.
	StopNone StopReason = iota
	// StopMaxTime marks the final sample of a run that exceeded the
	// maximum flight time.
	StopMaxTime
	// StopMinSpeed marks the final sample of a run that decelerated
	// through the minimum speed or minimum energy threshold.
	StopMinSpeed
	// StopSteepFall marks the final sample of a run whose flight path
	// turned over into a steep fall.
	StopSteepFall
)

func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "range"
	case StopMaxTime:
		return "max-time"
	case StopMinSpeed:
		return "min-speed"
	case StopSteepFall:
		return "steep-fall"
	default:
		return "unknown"
	}
}

// Sample is one point of the computed trajectory: either a requested range
// or the interpolated point at which an early termination fired.
type Sample struct {
	Range      unit.Distance
	Velocity   unit.Velocity
	Energy     unit.Energy
	Elevation  unit.Distance // height over the sight line, negative below
	Deflection unit.Distance // cross-range offset, positive right
	Time       Timespan
	Reason     StopReason
}
