package scene

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis-aligned rectangular solid centered on the origin.
type Box struct {
	W, H, D float64 // extents along X, Y, Z
}

// NewBox returns a box with the given extents. All extents must be
// positive.
func NewBox(w, h, d float64) (*Box, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return nil, fmt.Errorf("box extents must be positive, got %g x %g x %g", w, h, d)
	}
	return &Box{W: w, H: h, D: d}, nil
}

// AppendTriangles appends the 12 box triangles to dst.
func (b *Box) AppendTriangles(dst []Triangle) []Triangle {
	x := b.W / 2
	y := b.H / 2
	z := b.D / 2
	// Vertices indexed by corner bits (x,y,z).
	var v [8]r3.Vec
	for i := range v {
		v[i] = r3.Vec{X: sign(i&1 != 0) * x, Y: sign(i&2 != 0) * y, Z: sign(i&4 != 0) * z}
	}
	quads := [6][4]int{
		{1, 3, 7, 5}, // +X
		{0, 4, 6, 2}, // -X
		{2, 6, 7, 3}, // +Y
		{0, 1, 5, 4}, // -Y
		{4, 5, 7, 6}, // +Z
		{0, 2, 3, 1}, // -Z
	}
	for _, q := range quads {
		dst = append(dst,
			Triangle{v[q[0]], v[q[1]], v[q[2]]},
			Triangle{v[q[0]], v[q[2]], v[q[3]]},
		)
	}
	return dst
}

func sign(pos bool) float64 {
	if pos {
		return 1
	}
	return -1
}

// Cylinder is a solid of revolution about the Z axis centered on the
// origin: radius R0 at z=-Height/2 and R1 at z=+Height/2. R0 == R1
// gives a straight cylinder, differing radii a truncated cone.
type Cylinder struct {
	R0, R1         float64
	Height         float64
	RadialSegments int
}

// NewCylinder returns a cylinder or truncated cone. Radii and height
// must be positive and at least 3 radial segments are required.
func NewCylinder(r0, r1, height float64, radialSegments int) (*Cylinder, error) {
	if r0 <= 0 || r1 <= 0 {
		return nil, fmt.Errorf("cylinder radii must be positive, got %g and %g", r0, r1)
	}
	if height <= 0 {
		return nil, fmt.Errorf("cylinder height must be positive, got %g", height)
	}
	if radialSegments < 3 {
		return nil, fmt.Errorf("cylinder needs at least 3 radial segments, got %d", radialSegments)
	}
	return &Cylinder{R0: r0, R1: r1, Height: height, RadialSegments: radialSegments}, nil
}

// AppendTriangles appends the cylinder wall and both end caps to dst.
func (c *Cylinder) AppendTriangles(dst []Triangle) []Triangle {
	n := c.RadialSegments
	h := c.Height / 2
	bot := make([]r3.Vec, n)
	top := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ca, sa := math.Cos(a), math.Sin(a)
		bot[i] = r3.Vec{X: c.R0 * ca, Y: c.R0 * sa, Z: -h}
		top[i] = r3.Vec{X: c.R1 * ca, Y: c.R1 * sa, Z: h}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		// wall quad, outward facing
		dst = append(dst,
			Triangle{bot[i], bot[j], top[j]},
			Triangle{bot[i], top[j], top[i]},
		)
		// caps, fanned from the axis
		dst = append(dst,
			Triangle{r3.Vec{Z: -h}, bot[j], bot[i]},
			Triangle{r3.Vec{Z: h}, top[i], top[j]},
		)
	}
	return dst
}

// Torus is a ring around the Z axis centered on the origin. MajorR is
// the distance from the axis to the tube center, MinorR the tube
// radius. RadialSegments subdivides the tube cross-section and
// TubularSegments the sweep around the axis.
type Torus struct {
	MajorR, MinorR  float64
	RadialSegments  int
	TubularSegments int
}

// NewTorus returns a torus. Radii must be positive with MinorR smaller
// than MajorR, and both segment counts must be at least 3.
func NewTorus(major, minor float64, radialSegments, tubularSegments int) (*Torus, error) {
	if major <= 0 || minor <= 0 {
		return nil, fmt.Errorf("torus radii must be positive, got major %g minor %g", major, minor)
	}
	if minor >= major {
		return nil, fmt.Errorf("torus minor radius %g must be smaller than major radius %g", minor, major)
	}
	if radialSegments < 3 || tubularSegments < 3 {
		return nil, fmt.Errorf("torus needs at least 3 segments each way, got %d radial %d tubular", radialSegments, tubularSegments)
	}
	return &Torus{MajorR: major, MinorR: minor, RadialSegments: radialSegments, TubularSegments: tubularSegments}, nil
}

// AppendTriangles appends the torus surface to dst.
func (t *Torus) AppendTriangles(dst []Triangle) []Triangle {
	nu := t.TubularSegments
	nv := t.RadialSegments
	at := func(i, j int) r3.Vec {
		u := 2 * math.Pi * float64(i%nu) / float64(nu)
		v := 2 * math.Pi * float64(j%nv) / float64(nv)
		r := t.MajorR + t.MinorR*math.Cos(v)
		return r3.Vec{
			X: r * math.Cos(u),
			Y: r * math.Sin(u),
			Z: t.MinorR * math.Sin(v),
		}
	}
	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			p00 := at(i, j)
			p10 := at(i+1, j)
			p11 := at(i+1, j+1)
			p01 := at(i, j+1)
			dst = append(dst,
				Triangle{p00, p10, p11},
				Triangle{p00, p11, p01},
			)
		}
	}
	return dst
}
