package obj

import "github.com/soypat/stator/scene"

// Bearing builds the front bearing: outer and inner races as two
// concentric rings with a thin shield disc between them, all coplanar.
func Bearing(p *Palette) (*scene.Group, error) {
	outer, err := scene.NewTorus(0.26, 0.035, 10, 36)
	if err != nil {
		return nil, err
	}
	inner, err := scene.NewTorus(0.16, 0.035, 10, 28)
	if err != nil {
		return nil, err
	}
	shield, err := scene.NewCylinder(0.215, 0.215, 0.02, 36)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "bearing"}
	g.Add(
		&scene.Mesh{Name: "bearing-outer-race", Shape: outer, Mat: p.Steel},
		&scene.Mesh{Name: "bearing-inner-race", Shape: inner, Mat: p.Steel},
		&scene.Mesh{Name: "bearing-shield", Shape: shield, Mat: p.Iron},
	)
	return g, nil
}

// Shaft builds the rotor shaft stub protruding backward through the
// backing plate.
func Shaft(p *Palette) (*scene.Group, error) {
	rod, err := scene.NewCylinder(0.055, 0.055, 0.9, 24)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "shaft"}
	g.Add(&scene.Mesh{Name: "shaft-rod", Shape: rod, Mat: p.Steel})
	return g, nil
}
