package unit

import "fmt"

// TemperatureUnit tags a Temperature value with its measurement unit.
type TemperatureUnit byte

const (
	TemperatureFahrenheit TemperatureUnit = iota
	TemperatureCelsius
	TemperatureKelvin
	TemperatureRankin
)

// Temperature keeps an air temperature value. The base unit is the
// degree Fahrenheit.
type Temperature = Measure[TemperatureUnit]

func (u TemperatureUnit) toBase(value float64) (float64, error) {
	switch u {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value - 459.67, nil
	case TemperatureCelsius:
		return value*9/5 + 32, nil
	case TemperatureKelvin:
		return (value-273.15)*9/5 + 32, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", u)
	}
}

func (u TemperatureUnit) fromBase(value float64) (float64, error) {
	switch u {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value + 459.67, nil
	case TemperatureCelsius:
		return (value - 32) * 5 / 9, nil
	case TemperatureKelvin:
		return (value-32)*5/9 + 273.15, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", u)
	}
}

func (u TemperatureUnit) format(value float64) string {
	var symbol string
	switch u {
	case TemperatureFahrenheit:
		symbol = "°F"
	case TemperatureRankin:
		symbol = "°R"
	case TemperatureCelsius:
		symbol = "°C"
	case TemperatureKelvin:
		symbol = "°K"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%.1f%s", value, symbol)
}
