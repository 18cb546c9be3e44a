package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceConversions(t *testing.T) {
	d := MustCreate(1, DistanceYard)

	assert.InDelta(t, 36, d.In(DistanceInch), 1e-9)
	assert.InDelta(t, 3, d.In(DistanceFoot), 1e-9)
	assert.InDelta(t, 0.9144, d.In(DistanceMeter), 1e-7)
	assert.InDelta(t, 91.44, d.In(DistanceCentimeter), 1e-5)

	mile := MustCreate(1, DistanceMile)
	assert.InDelta(t, 1760, mile.In(DistanceYard), 1e-7)
}

func TestAngularConversions(t *testing.T) {
	deg := MustCreate(1, AngularDegree)

	assert.InDelta(t, 60, deg.In(AngularMOA), 1e-9)
	assert.InDelta(t, math.Pi/180, deg.In(AngularRadian), 1e-12)
	assert.InDelta(t, math.Pi/180*1000, deg.In(AngularMRad), 1e-9)

	// 1 inch per 100 yards is an arc tangent, not a plain ratio
	i100 := MustCreate(1, AngularInchesPer100Yd)
	assert.InDelta(t, math.Atan(1.0/3600), i100.In(AngularRadian), 1e-12)
	assert.InDelta(t, 1, i100.In(AngularInchesPer100Yd), 1e-9)
}

func TestVelocityConversions(t *testing.T) {
	v := MustCreate(1, VelocityMPS)

	assert.InDelta(t, 3.2808399, v.In(VelocityFPS), 1e-6)
	assert.InDelta(t, 3.6, v.In(VelocityKMH), 1e-9)
	assert.InDelta(t, 2.23693629, v.In(VelocityMPH), 1e-6)
}

func TestWeightConversions(t *testing.T) {
	w := MustCreate(7000, WeightGrain)
	assert.InDelta(t, 1, w.In(WeightPound), 1e-6)

	g := MustCreate(1, WeightGram)
	assert.InDelta(t, 15.4323584, g.In(WeightGrain), 1e-6)
}

func TestTemperatureConversions(t *testing.T) {
	boiling := MustCreate(100, TemperatureCelsius)
	assert.InDelta(t, 212, boiling.In(TemperatureFahrenheit), 1e-9)
	assert.InDelta(t, 373.15, boiling.In(TemperatureKelvin), 1e-9)

	zero := MustCreate(0, TemperatureFahrenheit)
	assert.InDelta(t, 459.67, zero.In(TemperatureRankin), 1e-9)
}

func TestPressureConversions(t *testing.T) {
	p := MustCreate(29.92, PressureInHg)
	assert.InDelta(t, 759.968, p.In(PressureMmHg), 1e-3)
	assert.InDelta(t, 1.01319, p.In(PressureBar), 1e-4)
}

func TestEnergyConversions(t *testing.T) {
	e := MustCreate(10, EnergyFootPound)
	assert.InDelta(t, 13.5582, e.In(EnergyJoule), 1e-3)
}

func TestValueReportsUnsupportedUnit(t *testing.T) {
	d := MustCreate(1, DistanceYard)
	_, err := d.Value(DistanceUnit(200))
	require.Error(t, err)
	assert.Zero(t, d.In(DistanceUnit(200)))
}

func TestConvertKeepsValueChangesUnits(t *testing.T) {
	d := MustCreate(100, DistanceYard).Convert(DistanceFoot)
	assert.Equal(t, DistanceFoot, d.Units())
	assert.InDelta(t, 300, d.In(DistanceFoot), 1e-9)
	assert.Equal(t, "300.00'", d.String())
}

func TestString(t *testing.T) {
	assert.Equal(t, "2.50moa", MustCreate(2.5, AngularMOA).String())
	assert.Equal(t, "29.92inHg", MustCreate(29.92, PressureInHg).String())
}
