package render

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig describes a still-image camera setup.
type ViewConfig struct {
	// What position (point) to look at.
	LookAt r3.Vec
	// Which way is up (direction).
	Up r3.Vec
	// Where the camera/eye is located at (point).
	Eye  r3.Vec
	Near float64
	Far  float64
	// FOVDegrees is the vertical field of view. Zero means 30 degrees.
	FOVDegrees float64
	// Output size in pixels.
	Width, Height int
	// Supersample renders at a multiple of the output size and
	// downsamples for antialiasing. Zero means 2.
	Supersample int
	// Background color as a hex string. Empty means "#FFF8E3".
	Background string
}

// DefaultView frames a model of roughly bi-unit extent.
func DefaultView(width, height int) ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Y: 1},
		Eye:    r3.Vec{X: 2.2, Y: 1.6, Z: 3.2},
		Near:   0.5,
		Far:    12,
		Width:  width,
		Height: height,
	}
}

// Snapshot renders the flattened parts with a Phong shader, one draw
// pass per material, and returns the composited image.
func Snapshot(parts []Part, view ViewConfig) (image.Image, error) {
	if len(parts) == 0 {
		return nil, errors.New("no parts to render")
	}
	if view.Width <= 0 || view.Height <= 0 {
		return nil, errors.New("view dimensions must be positive")
	}
	scale := view.Supersample
	if scale <= 0 {
		scale = 2
	}
	fov := view.FOVDegrees
	if fov <= 0 {
		fov = 30
	}
	background := view.Background
	if background == "" {
		background = "#FFF8E3"
	}

	var (
		eye    = fauxgl.V(view.Eye.X, view.Eye.Y, view.Eye.Z)
		center = fauxgl.V(view.LookAt.X, view.LookAt.Y, view.LookAt.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)

	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor(background))
	context.ClearDepthBuffer()
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fov, aspect, view.Near, view.Far)

	for _, part := range parts {
		shader := fauxgl.NewPhongShader(matrix, light, eye)
		shader.ObjectColor = fauxgl.HexColor(part.Mat.Color)
		// Rough surfaces get a broad dull highlight, polished metal a
		// tight bright one.
		shader.SpecularPower = 4 + 60*(1-part.Mat.Roughness)
		shader.SpecularColor = fauxgl.Gray(0.25 + 0.75*part.Mat.Metalness)
		context.Shader = shader
		context.DrawMesh(partMesh(part))
	}

	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// partMesh converts a part's triangles to a fauxgl mesh.
func partMesh(part Part) *fauxgl.Mesh {
	ts := make([]*fauxgl.Triangle, len(part.Triangles))
	for i, tri := range part.Triangles {
		ts[i] = fauxgl.NewTriangleForPoints(
			fauxgl.V(tri[0].X, tri[0].Y, tri[0].Z),
			fauxgl.V(tri[1].X, tri[1].Y, tri[1].Z),
			fauxgl.V(tri[2].X, tri[2].Y, tri[2].Z),
		)
	}
	return fauxgl.NewTriangleMesh(ts)
}
