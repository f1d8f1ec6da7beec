// Package render flattens assembled scene trees into world-space
// triangles and renders them to STL files or shaded still images.
package render

import (
	"io"
	"math"

	"github.com/soypat/stator/internal/d3"
	"github.com/soypat/stator/scene"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a triangle in 3D world space.
type Triangle3 = scene.Triangle

// Renderer streams the triangles of a model.
type Renderer interface {
	// ReadTriangles reads up to len(t) triangles into t and returns the
	// number read. It returns io.EOF once the model is exhausted.
	ReadTriangles(t []Triangle3) (int, error)
}

// Part is a run of world-space triangles sharing one material.
type Part struct {
	Mat       *scene.Material
	Triangles []Triangle3
}

// Flatten walks root and bakes every node's world transform into its
// triangles, grouping the result per material in first-encountered
// order. The input tree is not modified.
func Flatten(root scene.Node) []Part {
	var parts []Part
	index := make(map[*scene.Material]int)
	scene.Walk(root, func(n scene.Node, world scene.Transform) {
		m, ok := n.(*scene.Mesh)
		if !ok {
			return
		}
		local := m.Shape.AppendTriangles(nil)
		for i, tri := range local {
			for v := range tri {
				tri[v] = world.Apply(tri[v])
			}
			local[i] = tri
		}
		at, ok := index[m.Mat]
		if !ok {
			at = len(parts)
			index[m.Mat] = at
			parts = append(parts, Part{Mat: m.Mat})
		}
		parts[at].Triangles = append(parts[at].Triangles, local...)
	})
	return parts
}

// Bounds returns the axis-aligned bounding box of the flattened parts.
// An empty part list yields the zero box.
func Bounds(parts []Part) r3.Box {
	box := d3.Box{Min: d3.Elem(math.Inf(1)), Max: d3.Elem(math.Inf(-1))}
	empty := true
	for _, part := range parts {
		for _, tri := range part.Triangles {
			for _, v := range tri {
				box = box.Include(v)
				empty = false
			}
		}
	}
	if empty {
		return r3.Box{}
	}
	return r3.Box(box)
}

// modelRenderer streams the flattened triangles of a scene tree.
type modelRenderer struct {
	buf triangle3Buffer
}

// NewModelRenderer returns a Renderer over the world-space triangles of
// root, in tree order.
func NewModelRenderer(root scene.Node) Renderer {
	r := &modelRenderer{}
	for _, part := range Flatten(root) {
		r.buf.Write(part.Triangles)
	}
	return r
}

// ReadTriangles reads triangles into t until the model is exhausted.
func (r *modelRenderer) ReadTriangles(t []Triangle3) (int, error) {
	n := r.buf.Read(t)
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		if err != nil {
			break
		}
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

type triangle3Buffer struct {
	buf []Triangle3
}

// Read reads from this buffer.
func (b *triangle3Buffer) Read(t []Triangle3) int {
	n := copy(t, b.buf)
	b.buf = b.buf[n:]
	return n
}

// Write appends triangles to this buffer.
func (b *triangle3Buffer) Write(t []Triangle3) int {
	b.buf = append(b.buf, t...)
	return len(t)
}
