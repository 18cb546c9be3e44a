package unit

import "fmt"

// DistanceUnit tags a Distance value with its measurement unit.
type DistanceUnit byte

const (
	DistanceInch DistanceUnit = iota
	DistanceFoot
	DistanceYard
	DistanceMile
	DistanceNauticalMile
	DistanceLine
	DistanceMillimeter
	DistanceCentimeter
	DistanceMeter
	DistanceKilometer
)

// Distance keeps a length value. The base unit is the inch.
type Distance = Measure[DistanceUnit]

func (u DistanceUnit) toBase(value float64) (float64, error) {
	switch u {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value * 12, nil
	case DistanceYard:
		return value * 36, nil
	case DistanceMile:
		return value * 63360, nil
	case DistanceNauticalMile:
		return value * 72913.3858, nil
	case DistanceLine:
		return value / 10, nil
	case DistanceMillimeter:
		return value / 25.4, nil
	case DistanceCentimeter:
		return value / 2.54, nil
	case DistanceMeter:
		return value / 25.4 * 1000, nil
	case DistanceKilometer:
		return value / 25.4 * 1000000, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", u)
	}
}

func (u DistanceUnit) fromBase(value float64) (float64, error) {
	switch u {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value / 12, nil
	case DistanceYard:
		return value / 36, nil
	case DistanceMile:
		return value / 63360, nil
	case DistanceNauticalMile:
		return value / 72913.3858, nil
	case DistanceLine:
		return value * 10, nil
	case DistanceMillimeter:
		return value * 25.4, nil
	case DistanceCentimeter:
		return value * 2.54, nil
	case DistanceMeter:
		return value * 25.4 / 1000, nil
	case DistanceKilometer:
		return value * 25.4 / 1000000, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", u)
	}
}

func (u DistanceUnit) format(value float64) string {
	var symbol string
	var accuracy int
	switch u {
	case DistanceInch:
		symbol, accuracy = "\"", 1
	case DistanceFoot:
		symbol, accuracy = "'", 2
	case DistanceYard:
		symbol, accuracy = "yd", 3
	case DistanceMile:
		symbol, accuracy = "mi", 3
	case DistanceNauticalMile:
		symbol, accuracy = "nm", 3
	case DistanceLine:
		symbol, accuracy = "ln", 1
	case DistanceMillimeter:
		symbol, accuracy = "mm", 0
	case DistanceCentimeter:
		symbol, accuracy = "cm", 1
	case DistanceMeter:
		symbol, accuracy = "m", 2
	case DistanceKilometer:
		symbol, accuracy = "km", 3
	default:
		symbol, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, value, symbol)
}
