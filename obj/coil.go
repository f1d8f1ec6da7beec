package obj

import (
	"fmt"
	"math"

	"github.com/soypat/stator/curve"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// samplesPerTurn is the helix sample density. A coil of N turns is
// sampled at N*samplesPerTurn+1 points and swept with twice as many
// tubular segments.
const samplesPerTurn = 32

// Coil builds a solenoidal winding as a wire tube swept along a
// smoothed helix. The helix winds about the Z axis centered on the
// origin, spanning [-length/2, +length/2] axially at a constant radial
// distance innerRadius from the axis. turns is the number of full
// revolutions and wireRadius the swept cross-section radius.
func Coil(innerRadius, length float64, turns int, wireRadius float64, mat *scene.Material) (*scene.Mesh, error) {
	if innerRadius <= 0 {
		return nil, fmt.Errorf("coil inner radius must be positive, got %g", innerRadius)
	}
	if length <= 0 {
		return nil, fmt.Errorf("coil length must be positive, got %g", length)
	}
	if turns <= 0 {
		return nil, fmt.Errorf("coil turns must be positive, got %d", turns)
	}
	if wireRadius <= 0 {
		return nil, fmt.Errorf("coil wire radius must be positive, got %g", wireRadius)
	}
	n := turns * samplesPerTurn
	pts, err := curve.Sample(func(t float64) r3.Vec {
		a := t * float64(turns) * 2 * math.Pi
		return r3.Vec{
			X: innerRadius * math.Cos(a),
			Y: innerRadius * math.Sin(a),
			Z: (t - 0.5) * length,
		}
	}, n)
	if err != nil {
		return nil, err
	}
	path, err := curve.NewCatmullRom(pts)
	if err != nil {
		return nil, err
	}
	tube, err := scene.NewTube(path, 2*n, wireRadius, 8, false)
	if err != nil {
		return nil, err
	}
	return &scene.Mesh{Name: "coil", Shape: tube, Mat: mat}, nil
}
