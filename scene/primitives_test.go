package scene_test

import (
	"math"
	"testing"

	"github.com/soypat/stator/curve"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestBoxTriangulation(t *testing.T) {
	b, err := scene.NewBox(2, 4, 6)
	if err != nil {
		t.Fatal(err)
	}
	tris := b.AppendTriangles(nil)
	if len(tris) != 12 {
		t.Fatalf("box produced %d triangles, want 12", len(tris))
	}
	for _, tri := range tris {
		for _, v := range tri {
			if math.Abs(v.X) > 1+tol || math.Abs(v.Y) > 2+tol || math.Abs(v.Z) > 3+tol {
				t.Errorf("vertex %v outside box half-extents", v)
			}
		}
		if n := tri.Normal(); math.Abs(r3.Norm(n)-1) > 1e-9 {
			t.Errorf("normal %v is not unit length", n)
		}
	}
}

func TestBoxInvalid(t *testing.T) {
	for _, dims := range [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}} {
		if _, err := scene.NewBox(dims[0], dims[1], dims[2]); err == nil {
			t.Errorf("expected error for box extents %v", dims)
		}
	}
}

func TestCylinderTriangulation(t *testing.T) {
	const segments = 16
	c, err := scene.NewCylinder(1, 1, 2, segments)
	if err != nil {
		t.Fatal(err)
	}
	tris := c.AppendTriangles(nil)
	if want := 4 * segments; len(tris) != want {
		t.Fatalf("cylinder produced %d triangles, want %d", len(tris), want)
	}
	for _, tri := range tris {
		for _, v := range tri {
			if r := math.Hypot(v.X, v.Y); r > 1+1e-9 {
				t.Errorf("vertex %v outside cylinder radius", v)
			}
			if math.Abs(v.Z) > 1+1e-9 {
				t.Errorf("vertex %v outside cylinder height", v)
			}
		}
	}
}

func TestCylinderInvalid(t *testing.T) {
	cases := []struct {
		r0, r1, h float64
		seg       int
	}{
		{0, 1, 1, 8},
		{1, 0, 1, 8},
		{1, 1, 0, 8},
		{1, 1, 1, 2},
	}
	for _, c := range cases {
		if _, err := scene.NewCylinder(c.r0, c.r1, c.h, c.seg); err == nil {
			t.Errorf("expected error for cylinder %+v", c)
		}
	}
}

func TestTorusLiesOnTorusSurface(t *testing.T) {
	const (
		major = 1.5
		minor = 0.25
	)
	tor, err := scene.NewTorus(major, minor, 8, 24)
	if err != nil {
		t.Fatal(err)
	}
	tris := tor.AppendTriangles(nil)
	if want := 2 * 8 * 24; len(tris) != want {
		t.Fatalf("torus produced %d triangles, want %d", len(tris), want)
	}
	for _, tri := range tris {
		for _, v := range tri {
			// Distance from the tube center circle must equal minor radius.
			d := math.Hypot(math.Hypot(v.X, v.Y)-major, v.Z)
			if math.Abs(d-minor) > 1e-9 {
				t.Errorf("vertex %v off torus surface by %g", v, d-minor)
			}
		}
	}
}

func TestTorusInvalid(t *testing.T) {
	if _, err := scene.NewTorus(1, 1.5, 8, 8); err == nil {
		t.Error("expected error for minor radius exceeding major")
	}
	if _, err := scene.NewTorus(1, 0.2, 2, 8); err == nil {
		t.Error("expected error for too few radial segments")
	}
}

func TestTubeAlongStraightPath(t *testing.T) {
	const radius = 0.1
	path, err := curve.NewCatmullRom([]r3.Vec{{Z: -1}, {Z: 0}, {Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	tube, err := scene.NewTube(path, 10, radius, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	tris := tube.AppendTriangles(nil)
	if want := 2 * 10 * 8; len(tris) != want {
		t.Fatalf("tube produced %d triangles, want %d", len(tris), want)
	}
	for _, tri := range tris {
		for _, v := range tri {
			// The path runs along Z so every vertex sits on the tube wall.
			if r := math.Hypot(v.X, v.Y); math.Abs(r-radius) > 1e-9 {
				t.Errorf("vertex %v at wall distance %g, want %g", v, r, radius)
			}
		}
	}
}

func TestTubeInvalid(t *testing.T) {
	path, err := curve.NewCatmullRom([]r3.Vec{{}, {X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scene.NewTube(nil, 8, 0.1, 8, false); err == nil {
		t.Error("expected error for nil path")
	}
	if _, err := scene.NewTube(path, 8, 0, 8, false); err == nil {
		t.Error("expected error for zero radius")
	}
	if _, err := scene.NewTube(path, 0, 0.1, 8, false); err == nil {
		t.Error("expected error for zero tubular segments")
	}
	if _, err := scene.NewTube(path, 8, 0.1, 2, false); err == nil {
		t.Error("expected error for too few radial segments")
	}
}
