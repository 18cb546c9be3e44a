package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMillerStability(t *testing.T) {
	// 175 gr .308, 1.24" long, 12" twist at 2800 fps in standard air
	sg := millerStability(0.308, 1.24, 12, 175, 2800, 59, 29.92)
	assert.InDelta(t, 1.709, sg, 0.005)
}

func TestMillerStabilityCorrections(t *testing.T) {
	base := millerStability(0.308, 1.24, 12, 175, 2800, 59, 29.92)

	// faster bullets and thinner air both stabilize better
	assert.Greater(t, millerStability(0.308, 1.24, 12, 175, 3200, 59, 29.92), base)
	assert.Greater(t, millerStability(0.308, 1.24, 12, 175, 2800, 59, 24.90), base)
	assert.Greater(t, millerStability(0.308, 1.24, 12, 175, 2800, 95, 29.92), base)

	// a slower twist destabilizes
	assert.Less(t, millerStability(0.308, 1.24, 14, 175, 2800, 59, 29.92), base)
}

func TestSpinDriftGrowsWithTime(t *testing.T) {
	assert.Less(t, spinDriftInches(1.74, 0.5), spinDriftInches(1.74, 1.0))
	assert.Less(t, spinDriftInches(1.5, 1.0), spinDriftInches(2.0, 1.0))
	assert.InDelta(t, 5.13, spinDriftInches(1.74, 1.2), 0.01)
}

func TestSimpleAerodynamicJumpFollowsCrosswind(t *testing.T) {
	up := simpleAerodynamicJump(1.74, 4.03, 14.67)
	down := simpleAerodynamicJump(1.74, 4.03, -14.67)
	assert.Positive(t, up)
	assert.InDelta(t, -up, down, 1e-12)
	assert.Zero(t, simpleAerodynamicJump(1.74, 4.03, 0))
}

func TestShapeJumpAndDrift(t *testing.T) {
	p := shapeParams{
		noseLength:     2.2,
		tailLength:     0.6,
		meplatDiameter: 0.25,
		baseDiameter:   0.85,
		lengthCalibers: 4.03,
		twistCalibers:  39.0,
	}
	jump, scale := shapeJumpAndDrift(p, 1.74, 14.67, 0.9)
	assert.Positive(t, jump)
	assert.Positive(t, scale)

	// drift grows with a longer supersonic flight
	_, slower := shapeJumpAndDrift(p, 1.74, 14.67, 1.8)
	assert.Greater(t, slower, scale)

	// no crosswind, no jump; drift is crosswind-independent
	calm, calmScale := shapeJumpAndDrift(p, 1.74, 0, 0.9)
	assert.Zero(t, calm)
	assert.InDelta(t, scale, calmScale, 1e-12)
}
