package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Small r3 vector helpers shared by the geometry packages.

// Elem returns a vector with all components set to v.
func Elem(v float64) r3.Vec {
	return r3.Vec{X: v, Y: v, Z: v}
}

// EqualWithin returns whether a and b are equal component-wise within tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// AbsElem returns the component-wise absolute value of a.
func AbsElem(a r3.Vec) r3.Vec {
	return r3.Vec{X: math.Abs(a.X), Y: math.Abs(a.Y), Z: math.Abs(a.Z)}
}

// MinElem returns the component-wise minimum of a and b.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem returns the component-wise maximum of a and b.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// Orthogonal returns an arbitrary unit vector perpendicular to v.
// v must be non-zero.
func Orthogonal(v r3.Vec) r3.Vec {
	a := AbsElem(v)
	// Cross against the axis v is least aligned with to keep the
	// result well conditioned.
	ref := r3.Vec{X: 1}
	if a.Y <= a.X && a.Y <= a.Z {
		ref = r3.Vec{Y: 1}
	} else if a.Z <= a.X && a.Z <= a.Y {
		ref = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(v, ref))
}
