package unit

import "fmt"

// WeightUnit tags a Weight value with its measurement unit.
type WeightUnit byte

const (
	WeightGrain WeightUnit = iota
	WeightGram
	WeightKilogram
	WeightNewton
	WeightPound
	WeightOunce
)

// Weight keeps a projectile mass value. The base unit is the grain.
type Weight = Measure[WeightUnit]

func (u WeightUnit) toBase(value float64) (float64, error) {
	switch u {
	case WeightGrain:
		return value, nil
	case WeightGram:
		return value * 15.4323584, nil
	case WeightKilogram:
		return value * 15432.3584, nil
	case WeightNewton:
		return value * 151339.73750336, nil
	case WeightPound:
		return value / 0.000142857143, nil
	case WeightOunce:
		return value * 437.5, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", u)
	}
}

func (u WeightUnit) fromBase(value float64) (float64, error) {
	switch u {
	case WeightGrain:
		return value, nil
	case WeightGram:
		return value / 15.4323584, nil
	case WeightKilogram:
		return value / 15432.3584, nil
	case WeightNewton:
		return value / 151339.73750336, nil
	case WeightPound:
		return value * 0.000142857143, nil
	case WeightOunce:
		return value / 437.5, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", u)
	}
}

func (u WeightUnit) format(value float64) string {
	var symbol string
	var accuracy int
	switch u {
	case WeightGrain:
		symbol, accuracy = "gr", 0
	case WeightGram:
		symbol, accuracy = "g", 1
	case WeightKilogram:
		symbol, accuracy = "kg", 3
	case WeightNewton:
		symbol, accuracy = "N", 3
	case WeightPound:
		symbol, accuracy = "lb", 3
	case WeightOunce:
		symbol, accuracy = "oz", 1
	default:
		symbol, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, value, symbol)
}
