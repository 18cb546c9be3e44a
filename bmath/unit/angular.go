package unit

import (
	"fmt"
	"math"
)

// AngularUnit tags an Angular value with its measurement unit.
type AngularUnit byte

const (
	AngularRadian AngularUnit = iota
	AngularDegree
	AngularMOA
	AngularMil
	AngularMRad
	AngularThousand
	AngularInchesPer100Yd
	AngularCmPer100M
)

// Angular keeps an angle value. The base unit is the radian.
type Angular = Measure[AngularUnit]

func (u AngularUnit) toBase(value float64) (float64, error) {
	switch u {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	case AngularMil:
		return value / 3200 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	case AngularThousand:
		return value / 3000 * math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Atan(value / 3600), nil
	case AngularCmPer100M:
		return math.Atan(value / 10000), nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", u)
	}
}

func (u AngularUnit) fromBase(value float64) (float64, error) {
	switch u {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	case AngularMil:
		return value * 3200 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	case AngularThousand:
		return value * 3000 / math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Tan(value) * 3600, nil
	case AngularCmPer100M:
		return math.Tan(value) * 10000, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", u)
	}
}

func (u AngularUnit) format(value float64) string {
	var symbol string
	var accuracy int
	switch u {
	case AngularRadian:
		symbol, accuracy = "rad", 6
	case AngularDegree:
		symbol, accuracy = "°", 4
	case AngularMOA:
		symbol, accuracy = "moa", 2
	case AngularMil:
		symbol, accuracy = "mil", 2
	case AngularMRad:
		symbol, accuracy = "mrad", 2
	case AngularThousand:
		symbol, accuracy = "ths", 2
	case AngularInchesPer100Yd:
		symbol, accuracy = "in/100yd", 2
	case AngularCmPer100M:
		symbol, accuracy = "cm/100m", 2
	default:
		symbol, accuracy = "?", 6
	}
	return fmt.Sprintf("%.*f%s", accuracy, value, symbol)
}
