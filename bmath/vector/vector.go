// Package vector provides the 3D vector operations required for
// trajectory calculation.
//
// The engine's frame: X down-range, Y vertical (up positive), Z cross-range
// (right positive).
package vector

import (
	"fmt"
	"math"
)

// Vector is a 3-component vector of float64 coordinates.
type Vector struct {
	X, Y, Z float64
}

// New creates a vector from its coordinates.
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

// Add returns the component-wise sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Subtract returns the component-wise difference of two vectors.
func (v Vector) Subtract(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies the vector by a scalar.
func (v Vector) Scale(a float64) Vector {
	return Vector{a * v.X, a * v.Y, a * v.Z}
}

// Dot returns the scalar product of two vectors.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Magnitude returns the length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Negate returns the vector pointing in the opposite direction.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Normalize returns a collinear vector of magnitude one. A near-zero
// vector is returned unchanged.
func (v Vector) Normalize() Vector {
	m := v.Magnitude()
	if math.Abs(m) < 1e-10 {
		return v
	}
	return v.Scale(1 / m)
}
