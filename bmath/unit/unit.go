// Package unit provides dimensioned values for the trajectory engine.
//
// Every physical quantity the engine consumes or produces is wrapped in a
// Measure tagged with its dimension's unit type. Mixing dimensions does not
// compile: a Measure[DistanceUnit] cannot be passed where a
// Measure[AngularUnit] is expected.
package unit

// Converter is implemented by every unit tag type in this package.
type Converter interface {
	comparable
	toBase(value float64) (float64, error)
	fromBase(value float64) (float64, error)
	format(value float64) string
}

// Measure is a physical quantity stored in its dimension's base units
// together with the units it was created in.
type Measure[U Converter] struct {
	value        float64
	defaultUnits U
}

// Create creates a value measured in the specified units.
func Create[U Converter](value float64, units U) (Measure[U], error) {
	v, err := units.toBase(value)
	if err != nil {
		return Measure[U]{}, err
	}
	return Measure[U]{value: v, defaultUnits: units}, nil
}

// MustCreate creates a value measured in the specified units and panics
// instead of returning an error.
func MustCreate[U Converter](value float64, units U) Measure[U] {
	m, err := Create(value, units)
	if err != nil {
		panic(err)
	}
	return m
}

// Value returns the value of the measure in the specified units.
func (m Measure[U]) Value(units U) (float64, error) {
	return units.fromBase(m.value)
}

// In converts the value into the specified units.
// Returns 0 if the conversion is not possible.
func (m Measure[U]) In(units U) float64 {
	x, err := units.fromBase(m.value)
	if err != nil {
		return 0
	}
	return x
}

// Convert returns the same value carrying different default units.
func (m Measure[U]) Convert(units U) Measure[U] {
	return Measure[U]{value: m.value, defaultUnits: units}
}

// Units returns the units in which the value was created.
func (m Measure[U]) Units() U {
	return m.defaultUnits
}

func (m Measure[U]) String() string {
	x, err := m.defaultUnits.fromBase(m.value)
	if err != nil {
		return "!error: default units aren't correct"
	}
	return m.defaultUnits.format(x)
}
