package viewport

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// OrbitCamera orbits around a center point. Angles and distance are
// kept in float32, matching the precision the display path works in.
type OrbitCamera struct {
	// Center point to orbit around.
	Center r3.Vec

	// Spherical coordinates.
	Distance float32
	Yaw      float32 // horizontal angle, radians
	Pitch    float32 // vertical angle, radians

	// Constraints.
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity.
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera returns an orbit camera framing a model of roughly
// bi-unit extent.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Center:          r3.Vec{Y: 0.3},
		Distance:        4.2,
		Yaw:             0.6,
		Pitch:           0.45,
		MinDistance:     1.5,
		MaxDistance:     12,
		MinPitch:        -1.35,
		MaxPitch:        1.35,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.12,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() r3.Vec {
	cp := math32.Cos(c.Pitch)
	return r3.Vec{
		X: c.Center.X + float64(c.Distance*cp*math32.Sin(c.Yaw)),
		Y: c.Center.Y + float64(c.Distance*math32.Sin(c.Pitch)),
		Z: c.Center.Z + float64(c.Distance*cp*math32.Cos(c.Yaw)),
	}
}

// Drag updates yaw and pitch from a mouse drag delta in pixels.
func (c *OrbitCamera) Drag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch += dy * c.DragSensitivity
	c.Pitch = clamp32(c.Pitch, c.MinPitch, c.MaxPitch)
}

// Zoom moves the camera along the view ray. Positive steps zoom in.
func (c *OrbitCamera) Zoom(steps float32) {
	c.Distance *= 1 - steps*c.ZoomSensitivity
	c.Distance = clamp32(c.Distance, c.MinDistance, c.MaxDistance)
}

// Advance spins the camera about the center by speed radians per
// second over dt seconds.
func (c *OrbitCamera) Advance(speed, dt float32) {
	c.Yaw += speed * dt
	for c.Yaw > 2*math32.Pi {
		c.Yaw -= 2 * math32.Pi
	}
}

func clamp32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
