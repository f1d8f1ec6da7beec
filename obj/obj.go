// Package obj provides the part builders and the assembly composer for
// the three-phase stator display model. Every builder is a pure
// function from a material palette to a named sub-assembly with fixed
// literal dimensions; the composer arranges the sub-assemblies under a
// single root group.
package obj

import "github.com/soypat/stator/scene"

// Palette is the fixed set of materials shared by all stator parts.
// Builders only attach references; the materials themselves are never
// mutated.
type Palette struct {
	Copper     *scene.Material // coil windings
	Iron       *scene.Material // laminated core: hub, arms, post
	Steel      *scene.Material // shaft, bearing races, collar
	Bakelite   *scene.Material // backing plate, flanges, cap
	Insulation *scene.Material // lead wire sheathing
}

// DefaultPalette returns the stock stator palette.
func DefaultPalette() *Palette {
	return &Palette{
		Copper:     &scene.Material{Name: "copper", Color: "#b87333", Roughness: 0.35, Metalness: 0.9},
		Iron:       &scene.Material{Name: "iron", Color: "#4a4e54", Roughness: 0.7, Metalness: 0.6},
		Steel:      &scene.Material{Name: "steel", Color: "#c0c4c8", Roughness: 0.25, Metalness: 1},
		Bakelite:   &scene.Material{Name: "bakelite", Color: "#352a22", Roughness: 0.85, Metalness: 0.05},
		Insulation: &scene.Material{Name: "insulation", Color: "#9c1f1f", Roughness: 0.6, Metalness: 0},
	}
}
