// Package curve provides parametric space-curve sampling and an open
// interpolating spline. It is used to route helical coil windings and
// lead wires before sweeping a tube surface along them.
package curve

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sample evaluates f at the n+1 evenly spaced stations t = i/n for
// i in 0..n inclusive and returns the resulting points in order.
// n is the segment count and must be at least 1.
func Sample(f func(t float64) r3.Vec, n int) ([]r3.Vec, error) {
	if f == nil {
		return nil, errors.New("nil parametric function")
	}
	if n < 1 {
		return nil, fmt.Errorf("need at least 1 curve segment, got %d", n)
	}
	pts := make([]r3.Vec, n+1)
	for i := range pts {
		pts[i] = f(float64(i) / float64(n))
	}
	return pts, nil
}

// CatmullRom is an open uniform Catmull-Rom spline. The curve passes
// exactly through every control point. End tangents are formed by
// clamping the phantom points to the curve endpoints.
type CatmullRom struct {
	pts []r3.Vec
}

// NewCatmullRom returns a spline through points. At least 2 points are
// required. The control point slice is copied and never mutated.
func NewCatmullRom(points []r3.Vec) (*CatmullRom, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("catmull-rom spline needs at least 2 points, got %d", len(points))
	}
	return &CatmullRom{pts: append([]r3.Vec{}, points...)}, nil
}

// Points returns the control points the spline interpolates.
// The returned slice must not be modified.
func (c *CatmullRom) Points() []r3.Vec { return c.pts }

// At evaluates the spline at t. t is clamped to [0,1]; t=0 yields the
// first control point and t=1 the last.
func (c *CatmullRom) At(t float64) r3.Vec {
	last := len(c.pts) - 1
	if t <= 0 {
		return c.pts[0]
	}
	if t >= 1 {
		return c.pts[last]
	}
	ft := t * float64(last)
	i := int(ft)
	u := ft - float64(i)
	return spline(c.point(i-1), c.pts[i], c.pts[i+1], c.point(i+2), u)
}

// point clamps out-of-range indices to the curve endpoints so that the
// open ends get well defined tangents.
func (c *CatmullRom) point(i int) r3.Vec {
	if i < 0 {
		return c.pts[0]
	}
	if i >= len(c.pts) {
		return c.pts[len(c.pts)-1]
	}
	return c.pts[i]
}

// spline evaluates the uniform Catmull-Rom basis on the segment p1..p2
// with neighbors p0 and p3 at local parameter u in [0,1].
func spline(p0, p1, p2, p3 r3.Vec, u float64) r3.Vec {
	u2 := u * u
	u3 := u2 * u
	v := r3.Scale(-0.5*u3+u2-0.5*u, p0)
	v = r3.Add(v, r3.Scale(1.5*u3-2.5*u2+1, p1))
	v = r3.Add(v, r3.Scale(-1.5*u3+2*u2+0.5*u, p2))
	return r3.Add(v, r3.Scale(0.5*u3-0.5*u2, p3))
}
