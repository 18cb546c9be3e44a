package unit

import "fmt"

// PressureUnit tags a Pressure value with its measurement unit.
type PressureUnit byte

const (
	PressureMmHg PressureUnit = iota
	PressureInHg
	PressureBar
	PressureHPa
	PressurePSI
)

// Pressure keeps a barometric pressure value. The base unit is the
// millimeter of mercury.
type Pressure = Measure[PressureUnit]

func (u PressureUnit) toBase(value float64) (float64, error) {
	switch u {
	case PressureMmHg:
		return value, nil
	case PressureInHg:
		return value * 25.4, nil
	case PressureBar:
		return value * 750.061683, nil
	case PressureHPa:
		return value * 750.061683 / 1000, nil
	case PressurePSI:
		return value * 51.714924102396, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", u)
	}
}

func (u PressureUnit) fromBase(value float64) (float64, error) {
	switch u {
	case PressureMmHg:
		return value, nil
	case PressureInHg:
		return value / 25.4, nil
	case PressureBar:
		return value / 750.061683, nil
	case PressureHPa:
		return value / 750.061683 * 1000, nil
	case PressurePSI:
		return value / 51.714924102396, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", u)
	}
}

func (u PressureUnit) format(value float64) string {
	var symbol string
	var accuracy int
	switch u {
	case PressureMmHg:
		symbol, accuracy = "mmHg", 0
	case PressureInHg:
		symbol, accuracy = "inHg", 2
	case PressureBar:
		symbol, accuracy = "bar", 2
	case PressureHPa:
		symbol, accuracy = "hPa", 4
	case PressurePSI:
		symbol, accuracy = "psi", 4
	default:
		symbol, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, value, symbol)
}
