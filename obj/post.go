package obj

import "github.com/soypat/stator/scene"

// Post builds the vertical terminal post. The group origin sits at the
// post base; the post body, its two flanges and the cap stack upward
// along +Y at increasing offsets.
func Post(p *Palette) (*scene.Group, error) {
	body, err := scene.NewBox(0.18, 0.85, 0.18)
	if err != nil {
		return nil, err
	}
	flange, err := scene.NewBox(0.34, 0.05, 0.34)
	if err != nil {
		return nil, err
	}
	topFlange, err := scene.NewBox(0.34, 0.05, 0.34)
	if err != nil {
		return nil, err
	}
	cap, err := scene.NewBox(0.22, 0.08, 0.22)
	if err != nil {
		return nil, err
	}
	g := &scene.Group{Name: "post"}
	g.Add(
		&scene.Mesh{Name: "post-body", Tf: scene.Translate(0, 0.425, 0), Shape: body, Mat: p.Iron},
		&scene.Mesh{Name: "post-flange-bottom", Tf: scene.Translate(0, 0.025, 0), Shape: flange, Mat: p.Bakelite},
		&scene.Mesh{Name: "post-flange-top", Tf: scene.Translate(0, 0.825, 0), Shape: topFlange, Mat: p.Bakelite},
		&scene.Mesh{Name: "post-cap", Tf: scene.Translate(0, 0.89, 0), Shape: cap, Mat: p.Bakelite},
	)
	return g, nil
}
