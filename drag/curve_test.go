package drag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// circleTable samples the lower arc of x^2 + (y-5)^2 = 25 at three Mach
// keys, so the fit can be checked against the circle in closed form.
func circleTable() Table {
	y := func(x float64) float64 { return 5 - math.Sqrt(25-x*x) }
	return Table{{1, y(1)}, {2, y(2)}, {3, y(3)}}
}

func TestCurveFitRecoversCircle(t *testing.T) {
	tab := circleTable()
	for _, x := range []float64{1.25, 1.5, 2.5, 2.75} {
		want := 5 - math.Sqrt(25-x*x)
		assert.InDelta(t, want, tab.CurveFit(x), 1e-9, "x=%v", x)
	}
}

func TestCurveFitFallsBackOnCollinearPoints(t *testing.T) {
	tab := Table{{0, 0}, {1, 1}, {2, 2}}
	assert.InDelta(t, 1.5, tab.CurveFit(1.5), 1e-9)
}

func TestCurveFitTwoPointTableUsesLookup(t *testing.T) {
	tab := Table{{1, 0.1}, {2, 0.3}}
	assert.InDelta(t, 0.2, tab.CurveFit(1.5), 1e-12)
}

func TestExpandPreservesOriginalKeys(t *testing.T) {
	orig := G7()
	grown := orig.Expand(len(orig) + 10)
	assert.Len(t, grown, len(orig)+10)

	for _, p := range orig {
		assert.InDelta(t, p.Drag, grown.Lookup(p.Mach), 1e-9, "mach=%v", p.Mach)
	}
}

func TestExpandKeepsAscendingOrder(t *testing.T) {
	grown := G1().Expand(100)
	for i := 1; i < len(grown); i++ {
		assert.Greater(t, grown[i].Mach, grown[i-1].Mach)
	}
}

func TestCompressBoundedError(t *testing.T) {
	orig := G7()
	small := orig.Compress(60)
	assert.Len(t, small, 60)

	// endpoints survive compression
	assert.Equal(t, orig[0], small[0])
	assert.Equal(t, orig[len(orig)-1], small[len(small)-1])

	worst := 0.0
	for x := orig[0].Mach; x <= orig[len(orig)-1].Mach; x += 0.01 {
		if e := math.Abs(orig.Lookup(x) - small.Lookup(x)); e > worst {
			worst = e
		}
	}
	assert.Less(t, worst, 0.01)
}

func TestResizeRoundTripStaysClose(t *testing.T) {
	orig := G1()
	back := orig.Resize(50).Resize(len(orig))
	for x := 0.5; x <= 4.0; x += 0.05 {
		assert.InDelta(t, orig.Lookup(x), back.Lookup(x), 0.02, "mach=%v", x)
	}
}
