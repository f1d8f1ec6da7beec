package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// armCount is the number of phase arms. Arms are always placed at equal
// angular offsets about the motor axis.
const armCount = 3

// Stator assembles the complete stator display model with the stock
// palette. The returned tree is self-contained: calling Stator again
// yields a fully independent tree sharing only the (immutable)
// materials of a fresh palette.
func Stator() (*scene.Group, error) {
	return StatorWithPalette(DefaultPalette())
}

// StatorWithPalette assembles the stator model from p. The root group
// contains the backing plate, hub, bearing, shaft, three arm-with-coil
// units rotated 120 degrees apart about the motor Z axis, the vertical
// post with its own winding, and the lead wire bundle. Either the
// complete tree is returned or the first builder error; no partial tree
// escapes.
func StatorWithPalette(p *Palette) (*scene.Group, error) {
	if p == nil {
		return nil, errors.New("nil material palette")
	}
	root := &scene.Group{Name: "stator"}

	plate, err := BackingPlate(p)
	if err != nil {
		return nil, fmt.Errorf("backing plate: %w", err)
	}
	plate.Tf = scene.Translate(0, 0, -0.30)

	hub, err := Hub(p)
	if err != nil {
		return nil, fmt.Errorf("hub: %w", err)
	}

	bearing, err := Bearing(p)
	if err != nil {
		return nil, fmt.Errorf("bearing: %w", err)
	}
	bearing.Tf = scene.Translate(0, 0, 0.18)

	shaft, err := Shaft(p)
	if err != nil {
		return nil, fmt.Errorf("shaft: %w", err)
	}
	shaft.Tf = scene.Translate(0, 0, -0.50)

	root.Add(plate, hub, bearing, shaft)

	// Fresh arm instances; nodes are never shared between placements.
	for i := 0; i < armCount; i++ {
		arm, err := ArmWithCoil(p)
		if err != nil {
			return nil, fmt.Errorf("arm %d: %w", i, err)
		}
		arm.Tf = scene.Rotate(float64(i)*2*math.Pi/armCount, r3.Vec{Z: 1})
		root.Add(arm)
	}

	post, err := Post(p)
	if err != nil {
		return nil, fmt.Errorf("post: %w", err)
	}
	post.Tf = scene.Translate(0, 0.475, 0)

	coil, err := Coil(0.16, 0.56, 13, 0.03, p.Copper)
	if err != nil {
		return nil, fmt.Errorf("vertical coil: %w", err)
	}
	coil.Tf = scene.TranslateRotate(r3.Vec{Y: 0.90}, -math.Pi/2, r3.Vec{X: 1})

	leads, err := LeadWires(p, nil)
	if err != nil {
		return nil, fmt.Errorf("lead wires: %w", err)
	}
	leads.Tf = scene.Translate(0, 1.30, 0)

	root.Add(post, coil, leads)
	return root, nil
}
