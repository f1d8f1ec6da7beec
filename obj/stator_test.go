package obj_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/soypat/stator/internal/d3"
	"github.com/soypat/stator/obj"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestStatorComposition(t *testing.T) {
	root, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	if root.Name != "stator" {
		t.Errorf("root group named %q", root.Name)
	}
	counts := map[string]int{}
	for _, child := range root.Children {
		switch n := child.(type) {
		case *scene.Group:
			counts[n.Name]++
		case *scene.Mesh:
			counts[n.Name]++
		}
	}
	for _, want := range []struct {
		name string
		n    int
	}{
		{"backing-plate", 1},
		{"hub", 1},
		{"bearing", 1},
		{"shaft", 1},
		{"arm-unit", 3},
		{"post", 1},
		{"coil", 1},
		{"lead-wires", 1},
	} {
		if counts[want.name] != want.n {
			t.Errorf("root contains %d %q children, want %d", counts[want.name], want.name, want.n)
		}
	}
}

func TestStatorNilPalette(t *testing.T) {
	root, err := obj.StatorWithPalette(nil)
	if err == nil {
		t.Error("expected error for nil palette")
	}
	if root != nil {
		t.Error("expected nil tree on error")
	}
}

func TestArmsAtSymmetricAngles(t *testing.T) {
	root, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	var angles []float64
	for _, child := range root.Children {
		g, ok := child.(*scene.Group)
		if !ok || g.Name != "arm-unit" {
			continue
		}
		// Read the rotation about the motor Z axis off the placed X axis.
		dir := g.Tf.ApplyDir(r3.Vec{X: 1})
		deg := math.Atan2(dir.Y, dir.X) * 180 / math.Pi
		deg = math.Mod(deg+360, 360)
		angles = append(angles, deg)
	}
	if len(angles) != 3 {
		t.Fatalf("found %d arm units, want 3", len(angles))
	}
	sort.Float64s(angles)
	for i, want := range []float64{0, 120, 240} {
		if math.Abs(angles[i]-want) > 1e-6 {
			t.Errorf("arm angle %g degrees, want %g", angles[i], want)
		}
	}
}

func TestStatorTreesAreIndependent(t *testing.T) {
	a, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	b, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	// No node identity may be shared between the two trees.
	nodesA := map[scene.Node]bool{}
	scene.Walk(a, func(n scene.Node, _ scene.Transform) { nodesA[n] = true })
	scene.Walk(b, func(n scene.Node, _ scene.Transform) {
		if nodesA[n] {
			t.Fatalf("node %v shared between independently built trees", n)
		}
	})
	// Mutating one tree's transforms must not affect the other.
	before := b.Children[0].(*scene.Group).Tf
	a.Children[0].(*scene.Group).Tf = scene.Translate(99, 99, 99)
	if got := b.Children[0].(*scene.Group).Tf; got != before {
		t.Error("mutating first tree changed the second tree")
	}
}

func TestStatorTreesIsomorphicExceptLeads(t *testing.T) {
	a, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	b, err := obj.Stator()
	if err != nil {
		t.Fatal(err)
	}
	compareNodes(t, a, b, false)
}

// compareNodes checks that two trees have identical structure, names
// and geometry. Lead wires are exempt from the geometry comparison
// since their midpoints are intentionally randomized.
func compareNodes(t *testing.T, a, b scene.Node, insideLeads bool) {
	t.Helper()
	switch an := a.(type) {
	case *scene.Group:
		bn, ok := b.(*scene.Group)
		if !ok {
			t.Fatalf("node kind mismatch: %T vs %T", a, b)
		}
		if an.Name != bn.Name {
			t.Fatalf("group name mismatch: %q vs %q", an.Name, bn.Name)
		}
		if len(an.Children) != len(bn.Children) {
			t.Fatalf("group %q child count mismatch: %d vs %d", an.Name, len(an.Children), len(bn.Children))
		}
		for i := range an.Children {
			compareNodes(t, an.Children[i], bn.Children[i], insideLeads || an.Name == "lead-wires")
		}
	case *scene.Mesh:
		bn, ok := b.(*scene.Mesh)
		if !ok {
			t.Fatalf("node kind mismatch: %T vs %T", a, b)
		}
		if an.Name != bn.Name {
			t.Fatalf("mesh name mismatch: %q vs %q", an.Name, bn.Name)
		}
		ta := an.Shape.AppendTriangles(nil)
		tb := bn.Shape.AppendTriangles(nil)
		if len(ta) != len(tb) {
			t.Fatalf("mesh %q triangle count mismatch: %d vs %d", an.Name, len(ta), len(tb))
		}
		if insideLeads {
			return
		}
		for i := range ta {
			for v := range ta[i] {
				if !d3.EqualWithin(ta[i][v], tb[i][v], 1e-12) {
					t.Fatalf("mesh %q triangle %d differs between trees", an.Name, i)
				}
			}
		}
	default:
		t.Fatalf("unexpected node type %T", a)
	}
}

func TestLeadWiresSeededReproducible(t *testing.T) {
	p := obj.DefaultPalette()
	a, err := obj.LeadWires(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := obj.LeadWires(p, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	compareNodes(t, a, b, false)
}

func TestLeadWireJitterBounded(t *testing.T) {
	p := obj.DefaultPalette()
	base, err := obj.LeadWires(p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for trial := 0; trial < 20; trial++ {
		g, err := obj.LeadWires(p, rand.New(rand.NewSource(int64(trial))))
		if err != nil {
			t.Fatal(err)
		}
		for i, child := range g.Children {
			tube := child.(*scene.Mesh).Shape.(*scene.Tube)
			ref := base.Children[i].(*scene.Mesh).Shape.(*scene.Tube)
			pts, refPts := tube.Path.Points(), ref.Path.Points()
			if len(pts) != 3 || len(refPts) != 3 {
				t.Fatalf("lead wire %d has %d control points, want 3", i, len(pts))
			}
			// Endpoints are fixed, only the midpoint jitters within bounds.
			if pts[0] != refPts[0] || pts[2] != refPts[2] {
				t.Errorf("lead wire %d endpoints moved", i)
			}
			mid, refMid := pts[1], refPts[1]
			if math.Abs(mid.X-refMid.X) > 2*0.05+1e-12 || math.Abs(mid.Z-refMid.Z) > 2*0.05+1e-12 {
				t.Errorf("lead wire %d midpoint jitter out of bounds", i)
			}
			if mid.Y != refMid.Y {
				t.Errorf("lead wire %d midpoint jittered on Y", i)
			}
		}
	}
}
