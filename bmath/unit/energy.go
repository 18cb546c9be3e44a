package unit

import "fmt"

// EnergyUnit tags an Energy value with its measurement unit.
type EnergyUnit byte

const (
	EnergyFootPound EnergyUnit = iota
	EnergyJoule
)

// Energy keeps a kinetic energy value. The base unit is the foot-pound.
type Energy = Measure[EnergyUnit]

func (u EnergyUnit) toBase(value float64) (float64, error) {
	switch u {
	case EnergyFootPound:
		return value, nil
	case EnergyJoule:
		return value * 0.737562149277, nil
	default:
		return 0, fmt.Errorf("Energy: unit %d is not supported", u)
	}
}

func (u EnergyUnit) fromBase(value float64) (float64, error) {
	switch u {
	case EnergyFootPound:
		return value, nil
	case EnergyJoule:
		return value / 0.737562149277, nil
	default:
		return 0, fmt.Errorf("Energy: unit %d is not supported", u)
	}
}

func (u EnergyUnit) format(value float64) string {
	var symbol string
	switch u {
	case EnergyFootPound:
		symbol = "ft·lb"
	case EnergyJoule:
		symbol = "J"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%.0f%s", value, symbol)
}
