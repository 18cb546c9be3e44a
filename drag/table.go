// Package drag provides Mach-indexed drag coefficient tables, point lookup
// and the interpolation/resizing utilities used to build custom tables.
package drag

import "fmt"

// Point is one entry of a drag table: the drag coefficient measured at a
// given Mach number.
type Point struct {
	Mach float64
	Drag float64
}

// Table is a drag-coefficient curve: points ascending by Mach number with
// non-negative coefficients. Tables are treated as immutable once built;
// the construction utilities always return new tables.
//
// Tables of fewer than two points are not supported: operations on them
// panic. This is a precondition violation, not a recoverable condition.
type Table []Point

func (t Table) validate() {
	if len(t) < 2 {
		panic(fmt.Errorf("drag: table of %d points is not usable", len(t)))
	}
}

// Lookup returns the drag coefficient at Mach number x.
//
// Values outside the table's domain saturate: below the first key the first
// value is returned, at or beyond the last key the last value is returned.
// Between keys the bracketing pair is interpolated linearly. Callers rely
// on the saturating behavior for out-of-domain Mach numbers.
func (t Table) Lookup(x float64) float64 {
	t.validate()
	if x < t[0].Mach {
		return t[0].Drag
	}
	i := len(t) - 1
	for i > 0 && t[i].Mach > x {
		i--
	}
	if i == len(t)-1 {
		return t[i].Drag
	}
	p0, p1 := t[i], t[i+1]
	return p0.Drag + (p1.Drag-p0.Drag)*(x-p0.Mach)/(p1.Mach-p0.Mach)
}

// bracket returns the index of the middle point of the three-point window
// around x, clamped so the window stays inside the table.
func (t Table) bracket(x float64) int {
	i := len(t) - 2
	for i > 1 && t[i].Mach > x {
		i--
	}
	return i
}
