package obj

import (
	"fmt"
	"math/rand"

	"github.com/soypat/stator/curve"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// leadJitter bounds the cosmetic lateral offset applied to each lead
// wire midpoint, on the X and Z axes.
const leadJitter = 0.05

// leadRoutes are the fixed start and end points of the three phase
// leads, in the lead bundle's local frame. Starts sit in a narrow band
// around the post top, ends fan out to three distinct terminals.
var leadRoutes = [3][2]r3.Vec{
	{{X: 0.06, Y: 0.00, Z: 0.03}, {X: 0.55, Y: 0.35, Z: 0.25}},
	{{X: -0.07, Y: 0.02, Z: 0.00}, {X: -0.60, Y: 0.30, Z: 0.10}},
	{{X: 0.02, Y: 0.04, Z: -0.06}, {X: 0.05, Y: 0.42, Z: -0.55}},
}

// LeadWires builds the bundle of three phase lead wires. Each wire is a
// thin tube along a 3-point smooth curve: start, a midpoint nudged by a
// small random lateral offset, and end. The jitter is purely cosmetic;
// pass a non-nil rnd for reproducible routing, nil to use the shared
// math/rand source.
func LeadWires(p *Palette, rnd *rand.Rand) (*scene.Group, error) {
	jitter := func() float64 { return (rand.Float64()*2 - 1) * leadJitter }
	if rnd != nil {
		jitter = func() float64 { return (rnd.Float64()*2 - 1) * leadJitter }
	}
	g := &scene.Group{Name: "lead-wires"}
	for i, route := range leadRoutes {
		start, end := route[0], route[1]
		mid := r3.Scale(0.5, r3.Add(start, end))
		mid.X += jitter()
		mid.Z += jitter()
		path, err := curve.NewCatmullRom([]r3.Vec{start, mid, end})
		if err != nil {
			return nil, err
		}
		tube, err := scene.NewTube(path, 24, 0.018, 8, false)
		if err != nil {
			return nil, err
		}
		g.Add(&scene.Mesh{
			Name:  fmt.Sprintf("lead-%d", i),
			Shape: tube,
			Mat:   p.Insulation,
		})
	}
	return g, nil
}
