package scene_test

import (
	"math"
	"testing"

	"github.com/soypat/stator/internal/d3"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-12

func TestZeroValueTransformIsIdentity(t *testing.T) {
	var tf scene.Transform
	p := r3.Vec{X: 1, Y: -2, Z: 3}
	if got := tf.Apply(p); !d3.EqualWithin(got, p, tol) {
		t.Errorf("zero transform moved %v to %v", p, got)
	}
	if got := scene.Identity().Apply(p); !d3.EqualWithin(got, p, tol) {
		t.Errorf("identity moved %v to %v", p, got)
	}
}

func TestRotateAboutZ(t *testing.T) {
	tf := scene.Rotate(math.Pi/2, r3.Vec{Z: 1})
	got := tf.Apply(r3.Vec{X: 1})
	if !d3.EqualWithin(got, r3.Vec{Y: 1}, 1e-9) {
		t.Errorf("90 degree rotation about Z mapped X to %v, want Y", got)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	a := scene.TranslateRotate(r3.Vec{X: 1, Y: 2}, math.Pi/3, r3.Vec{Z: 1})
	b := scene.TranslateRotate(r3.Vec{Z: -1}, -math.Pi/5, r3.Vec{X: 1})
	p := r3.Vec{X: 0.3, Y: -0.7, Z: 1.1}
	want := a.Apply(b.Apply(p))
	got := a.Compose(b).Apply(p)
	if !d3.EqualWithin(got, want, 1e-9) {
		t.Errorf("compose: got %v, want %v", got, want)
	}
}

func TestApplyDirIgnoresTranslation(t *testing.T) {
	tf := scene.TranslateRotate(r3.Vec{X: 5, Y: 5, Z: 5}, math.Pi, r3.Vec{Z: 1})
	got := tf.ApplyDir(r3.Vec{X: 1})
	if !d3.EqualWithin(got, r3.Vec{X: -1}, 1e-9) {
		t.Errorf("direction mapped to %v, want -X", got)
	}
}

func TestWalkComposesWorldTransforms(t *testing.T) {
	shape, err := scene.NewBox(1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	mesh := &scene.Mesh{Name: "leaf", Tf: scene.Translate(0, 0, 3), Shape: shape}
	inner := &scene.Group{Name: "inner", Tf: scene.Rotate(math.Pi/2, r3.Vec{Z: 1})}
	inner.Add(mesh)
	root := &scene.Group{Name: "root", Tf: scene.Translate(10, 0, 0)}
	root.Add(inner)

	var leafWorld scene.Transform
	found := false
	scene.Walk(root, func(n scene.Node, world scene.Transform) {
		if m, ok := n.(*scene.Mesh); ok && m.Name == "leaf" {
			leafWorld = world
			found = true
		}
	})
	if !found {
		t.Fatal("leaf not visited")
	}
	// Root translation then inner rotation applied to the leaf offset.
	got := leafWorld.Apply(r3.Vec{})
	if !d3.EqualWithin(got, r3.Vec{X: 10, Z: 3}, 1e-9) {
		t.Errorf("leaf world origin %v, want {10 0 3}", got)
	}
	// A unit X in leaf space points along world Y after the rotation.
	dir := leafWorld.ApplyDir(r3.Vec{X: 1})
	if !d3.EqualWithin(dir, r3.Vec{Y: 1}, 1e-9) {
		t.Errorf("leaf world X direction %v, want Y", dir)
	}
}
