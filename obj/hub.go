package obj

import "github.com/soypat/stator/scene"

// Hub builds the central core block: a square laminated body with a
// steel collar ring on its front face.
func Hub(p *Palette) (*scene.Group, error) {
	body, err := scene.NewBox(0.82, 0.82, 0.26)
	if err != nil {
		return nil, err
	}
	collar, err := scene.NewTorus(0.30, 0.06, 12, 40)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "hub"}
	g.Add(
		&scene.Mesh{Name: "hub-body", Shape: body, Mat: p.Iron},
		&scene.Mesh{Name: "hub-collar", Tf: scene.Translate(0, 0, 0.13), Shape: collar, Mat: p.Steel},
	)
	return g, nil
}

// BackingPlate builds the flat wide disc mounted behind the hub.
func BackingPlate(p *Palette) (*scene.Group, error) {
	disc, err := scene.NewCylinder(1.25, 1.25, 0.08, 48)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "backing-plate"}
	g.Add(&scene.Mesh{Name: "plate-disc", Shape: disc, Mat: p.Bakelite})
	return g, nil
}
