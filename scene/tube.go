package scene

import (
	"fmt"
	"math"

	"github.com/soypat/stator/curve"
	"github.com/soypat/stator/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tube sweeps a circular cross-section of radius Radius along Path,
// producing a single connected open tube surface. TubularSegments
// subdivides the path and RadialSegments the cross-section circle.
// Closed joins the last ring back to the first; open tubes are left
// uncapped.
type Tube struct {
	Path            *curve.CatmullRom
	TubularSegments int
	Radius          float64
	RadialSegments  int
	Closed          bool
}

// NewTube returns a tube swept along path. The radius must be positive,
// the path must span at least 1 tubular segment and the cross-section
// needs at least 3 radial segments.
func NewTube(path *curve.CatmullRom, tubularSegments int, radius float64, radialSegments int, closed bool) (*Tube, error) {
	if path == nil {
		return nil, fmt.Errorf("tube needs a path curve")
	}
	if radius <= 0 {
		return nil, fmt.Errorf("tube radius must be positive, got %g", radius)
	}
	if tubularSegments < 1 {
		return nil, fmt.Errorf("tube needs at least 1 tubular segment, got %d", tubularSegments)
	}
	if radialSegments < 3 {
		return nil, fmt.Errorf("tube needs at least 3 radial segments, got %d", radialSegments)
	}
	return &Tube{
		Path:            path,
		TubularSegments: tubularSegments,
		Radius:          radius,
		RadialSegments:  radialSegments,
		Closed:          closed,
	}, nil
}

// AppendTriangles appends the swept tube surface to dst.
func (t *Tube) AppendTriangles(dst []Triangle) []Triangle {
	nt := t.TubularSegments
	nr := t.RadialSegments
	centers := make([]r3.Vec, nt+1)
	for i := range centers {
		centers[i] = t.Path.At(float64(i) / float64(nt))
	}
	normals, binormals := transportFrames(centers)

	rings := make([][]r3.Vec, nt+1)
	for i := range rings {
		ring := make([]r3.Vec, nr)
		for j := 0; j < nr; j++ {
			a := 2 * math.Pi * float64(j) / float64(nr)
			off := r3.Add(
				r3.Scale(t.Radius*math.Cos(a), normals[i]),
				r3.Scale(t.Radius*math.Sin(a), binormals[i]),
			)
			ring[j] = r3.Add(centers[i], off)
		}
		rings[i] = ring
	}
	for i := 0; i < nt; i++ {
		r0, r1 := rings[i], rings[i+1]
		if t.Closed && i == nt-1 {
			r1 = rings[0]
		}
		for j := 0; j < nr; j++ {
			k := (j + 1) % nr
			dst = append(dst,
				Triangle{r0[j], r1[j], r1[k]},
				Triangle{r0[j], r1[k], r0[k]},
			)
		}
	}
	return dst
}

// transportFrames computes parallel-transport frames (normal, binormal)
// along the polyline pts. The frame twist is minimized by rotating the
// previous normal with the rotation that maps each tangent onto the
// next. Near-zero segments inherit the previous tangent instead of
// producing NaNs.
func transportFrames(pts []r3.Vec) (normals, binormals []r3.Vec) {
	const eps = 1e-12
	n := len(pts)
	tangents := make([]r3.Vec, n)
	prev := r3.Vec{Z: 1}
	for i := range tangents {
		var d r3.Vec
		switch {
		case i == 0:
			d = r3.Sub(pts[1], pts[0])
		case i == n-1:
			d = r3.Sub(pts[n-1], pts[n-2])
		default:
			d = r3.Sub(pts[i+1], pts[i-1])
		}
		if r3.Norm(d) <= eps {
			tangents[i] = prev
			continue
		}
		tangents[i] = r3.Unit(d)
		prev = tangents[i]
	}

	normals = make([]r3.Vec, n)
	binormals = make([]r3.Vec, n)
	normals[0] = d3.Orthogonal(tangents[0])
	binormals[0] = r3.Cross(tangents[0], normals[0])
	for i := 1; i < n; i++ {
		normals[i] = normals[i-1]
		axis := r3.Cross(tangents[i-1], tangents[i])
		if s := r3.Norm(axis); s > eps {
			cos := r3.Dot(tangents[i-1], tangents[i])
			alpha := math.Atan2(s, cos)
			normals[i] = r3.NewRotation(alpha, axis).Rotate(normals[i-1])
		}
		binormals[i] = r3.Cross(tangents[i], normals[i])
	}
	return normals, binormals
}
