package unit

import "fmt"

// VelocityUnit tags a Velocity value with its measurement unit.
type VelocityUnit byte

const (
	VelocityMPS VelocityUnit = iota
	VelocityKMH
	VelocityFPS
	VelocityMPH
	VelocityKT
)

// Velocity keeps a speed value. The base unit is meters per second.
type Velocity = Measure[VelocityUnit]

func (u VelocityUnit) toBase(value float64) (float64, error) {
	switch u {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value / 3.6, nil
	case VelocityFPS:
		return value / 3.2808399, nil
	case VelocityMPH:
		return value / 2.23693629, nil
	case VelocityKT:
		return value / 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", u)
	}
}

func (u VelocityUnit) fromBase(value float64) (float64, error) {
	switch u {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value * 3.6, nil
	case VelocityFPS:
		return value * 3.2808399, nil
	case VelocityMPH:
		return value * 2.23693629, nil
	case VelocityKT:
		return value * 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", u)
	}
}

func (u VelocityUnit) format(value float64) string {
	var symbol string
	switch u {
	case VelocityMPS:
		symbol = "m/s"
	case VelocityKMH:
		symbol = "km/h"
	case VelocityFPS:
		symbol = "ft/s"
	case VelocityMPH:
		symbol = "mph"
	case VelocityKT:
		symbol = "kt"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%.0f%s", value, symbol)
}
