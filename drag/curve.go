package drag

import (
	"math"
	"sort"
)

// cMinFitRadius is the radius below which a fitted circle is considered
// degenerate and the fit falls back to linear interpolation.
const cMinFitRadius = 1e-8

// CurveFit evaluates the curve at Mach number x by fitting a circle
// through the three points bracketing x. A circular arc follows the
// curvature of a drag curve better than a straight chord, which matters
// when densifying a coarse table.
//
// The circle's center is found by intersecting the perpendicular bisectors
// of the two chords. When the three points are near-collinear, when the
// circle does not reach x, or when neither branch of the circle lies
// angularly between the bracket endpoints, the result falls back to
// Lookup. CurveFit is a table-construction utility and is not used on the
// simulation hot path.
func (t Table) CurveFit(x float64) float64 {
	t.validate()
	if len(t) < 3 {
		return t.Lookup(x)
	}

	i := t.bracket(x)
	p0, p1, p2 := t[i-1], t[i], t[i+1]

	// chord direction vectors
	ax, ay := p1.Mach-p0.Mach, p1.Drag-p0.Drag
	bx, by := p2.Mach-p1.Mach, p2.Drag-p1.Drag

	det := ax*by - ay*bx
	if math.Abs(det) < 1e-14 {
		return t.Lookup(x)
	}

	// each bisector: (c - midpoint) · chord = 0
	c1 := ax*(p0.Mach+p1.Mach)/2 + ay*(p0.Drag+p1.Drag)/2
	c2 := bx*(p1.Mach+p2.Mach)/2 + by*(p1.Drag+p2.Drag)/2
	cx := (c1*by - c2*ay) / det
	cy := (ax*c2 - bx*c1) / det

	r := math.Hypot(p1.Mach-cx, p1.Drag-cy)
	if !(r > cMinFitRadius) || math.IsInf(r, 0) {
		return t.Lookup(x)
	}

	d := r*r - (x-cx)*(x-cx)
	if d < 0 {
		return t.Lookup(x)
	}
	h := math.Sqrt(d)

	a0 := math.Atan2(p0.Drag-cy, p0.Mach-cx)
	a2 := math.Atan2(p2.Drag-cy, p2.Mach-cx)
	for _, y := range [2]float64{cy + h, cy - h} {
		if angleWithin(math.Atan2(y-cy, x-cx), a0, a2) {
			return y
		}
	}
	return t.Lookup(x)
}

// angleWithin reports whether angle a lies on the arc swept from a0 to a2
// the short way around.
func angleWithin(a, a0, a2 float64) bool {
	span := normAngle(a2 - a0)
	off := normAngle(a - a0)
	if span >= 0 {
		return off >= 0 && off <= span
	}
	return off <= 0 && off >= span
}

// normAngle wraps an angle into (-π, π].
func normAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Expand grows the table to newSize points by repeatedly inserting a point
// at the midpoint of whichever adjacent-key gap currently shows the
// largest discrepancy between linear Lookup and CurveFit, ties broken by
// the widest gap. New values are fit against the original table, so
// refinement never drifts from the source curve and Lookup at the original
// keys is unchanged.
func (t Table) Expand(newSize int) Table {
	t.validate()
	cur := append(Table(nil), t...)
	for len(cur) < newSize {
		best, bestErr, bestGap := -1, -1.0, -1.0
		for i := 0; i < len(cur)-1; i++ {
			gap := cur[i+1].Mach - cur[i].Mach
			mid := cur[i].Mach + gap/2
			e := math.Abs(cur.Lookup(mid) - t.CurveFit(mid))
			if e > bestErr || (e == bestErr && gap > bestGap) {
				best, bestErr, bestGap = i, e, gap
			}
		}
		mid := cur[best].Mach + (cur[best+1].Mach-cur[best].Mach)/2
		cur = append(cur, Point{})
		copy(cur[best+2:], cur[best+1:])
		cur[best+1] = Point{Mach: mid, Drag: t.CurveFit(mid)}
	}
	return cur
}

// Compress shrinks the table to newSize points by repeatedly removing the
// interior point whose straight-line replacement (linear interpolation of
// its two neighbors) differs least from its stored value. Endpoints are
// never removed, so the table's domain is preserved.
func (t Table) Compress(newSize int) Table {
	t.validate()
	cur := append(Table(nil), t...)
	for len(cur) > newSize && len(cur) > 2 {
		best, bestErr := -1, math.Inf(1)
		for i := 1; i < len(cur)-1; i++ {
			p0, p2 := cur[i-1], cur[i+1]
			lin := p0.Drag + (p2.Drag-p0.Drag)*(cur[i].Mach-p0.Mach)/(p2.Mach-p0.Mach)
			if e := math.Abs(lin - cur[i].Drag); e < bestErr {
				best, bestErr = i, e
			}
		}
		cur = append(cur[:best], cur[best+1:]...)
		sort.SliceStable(cur, func(a, b int) bool { return cur[a].Mach < cur[b].Mach })
	}
	return cur
}

// Resize returns a copy of the table scaled to newSize points, expanding
// or compressing as needed.
func (t Table) Resize(newSize int) Table {
	t.validate()
	switch {
	case newSize > len(t):
		return t.Expand(newSize)
	case newSize < len(t):
		return t.Compress(newSize)
	default:
		return append(Table(nil), t...)
	}
}
