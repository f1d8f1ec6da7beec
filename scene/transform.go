package scene

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rigid local-to-parent transform: a rotation about the
// node origin followed by a translation. The zero value is the identity
// transform.
type Transform struct {
	Position r3.Vec
	// Rotation is a unit quaternion. The zero value is treated as the
	// identity rotation so that Transform{} is usable as-is.
	Rotation r3.Rotation
}

// Identity returns the identity transform with an explicit unit
// quaternion set.
func Identity() Transform {
	return Transform{Rotation: r3.Rotation{Real: 1}}
}

// Translate returns a pure translation.
func Translate(x, y, z float64) Transform {
	return Transform{Position: r3.Vec{X: x, Y: y, Z: z}, Rotation: r3.Rotation{Real: 1}}
}

// Rotate returns a rotation of alpha radians about the axis direction
// through the origin.
func Rotate(alpha float64, axis r3.Vec) Transform {
	return Transform{Rotation: r3.NewRotation(alpha, axis)}
}

// TranslateRotate returns the transform that rotates by alpha about
// axis and then translates to pos.
func TranslateRotate(pos r3.Vec, alpha float64, axis r3.Vec) Transform {
	return Transform{Position: pos, Rotation: r3.NewRotation(alpha, axis)}
}

// rot returns the rotation quaternion, mapping the zero value to the
// identity rotation.
func (t Transform) rot() r3.Rotation {
	if t.Rotation == (r3.Rotation{}) {
		return r3.Rotation{Real: 1}
	}
	return t.Rotation
}

// Apply maps a point from the local frame to the parent frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	return r3.Add(t.rot().Rotate(p), t.Position)
}

// ApplyDir maps a direction from the local frame to the parent frame,
// ignoring the translation.
func (t Transform) ApplyDir(d r3.Vec) r3.Vec {
	return t.rot().Rotate(d)
}

// Compose returns the transform equivalent to applying u in t's frame,
// i.e. Compose(t,u).Apply(p) == t.Apply(u.Apply(p)).
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		Position: t.Apply(u.Position),
		Rotation: r3.Rotation(quat.Mul(quat.Number(t.rot()), quat.Number(u.rot()))),
	}
}
