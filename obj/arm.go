package obj

import (
	"math"

	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// armCenter is the radial distance from the motor axis to the middle of
// the arm shaft. The coil is wound around the same point.
const armCenter = 0.80

// Arm builds one stator arm extending radially along +X: a square
// shaft between an inner and a slightly larger outer flange.
func Arm(p *Palette) (*scene.Group, error) {
	shaft, err := scene.NewBox(0.72, 0.16, 0.16)
	if err != nil {
		return nil, err
	}
	innerFlange, err := scene.NewBox(0.06, 0.30, 0.30)
	if err != nil {
		return nil, err
	}
	outerFlange, err := scene.NewBox(0.06, 0.34, 0.34)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "arm"}
	g.Add(
		&scene.Mesh{Name: "arm-shaft", Tf: scene.Translate(armCenter, 0, 0), Shape: shaft, Mat: p.Iron},
		&scene.Mesh{Name: "arm-flange-inner", Tf: scene.Translate(0.47, 0, 0), Shape: innerFlange, Mat: p.Iron},
		&scene.Mesh{Name: "arm-flange-outer", Tf: scene.Translate(1.13, 0, 0), Shape: outerFlange, Mat: p.Iron},
	)
	return g, nil
}

// ArmWithCoil builds an arm with its phase winding wound around the arm
// shaft. The coil helix axis is rotated from Z onto the arm's radial
// X direction.
func ArmWithCoil(p *Palette) (*scene.Group, error) {
	arm, err := Arm(p)
	if err != nil {
		return nil, err
	}
	coil, err := Coil(0.20, 0.60, 15, 0.032, p.Copper)
	if err != nil {
		return nil, err
	}
	coil.Tf = scene.TranslateRotate(r3.Vec{X: armCenter}, math.Pi/2, r3.Vec{Y: 1})
	g := &scene.Group{Name: "arm-unit"}
	g.Add(arm, coil)
	return g, nil
}
