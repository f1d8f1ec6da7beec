// Package scene implements the scene-graph data model the stator is
// assembled from: shared materials, rigid transforms and a single-rooted
// tree of mesh and group nodes. The tree is plain data; it holds no
// reference to any rendering state and is safe to build off any
// rendering context.
package scene

import "gonum.org/v1/gonum/spatial/r3"

// Node is a member of the model hierarchy, either a *Mesh leaf or a
// *Group of children. Every node is owned by exactly one parent group.
// Materials are the only data shared between nodes.
type Node interface {
	// Local returns the node transform relative to its parent.
	Local() Transform
}

// Group is a named node owning an ordered list of children and a
// transform applied to all of them.
type Group struct {
	Name     string
	Tf       Transform
	Children []Node
}

// Local returns the group transform relative to its parent.
func (g *Group) Local() Transform { return g.Tf }

// Add appends children to the group and returns the group.
func (g *Group) Add(children ...Node) *Group {
	g.Children = append(g.Children, children...)
	return g
}

// Mesh is a leaf node binding one shape to one material.
type Mesh struct {
	Name  string
	Tf    Transform
	Shape Shape
	Mat   *Material
}

// Local returns the mesh transform relative to its parent.
func (m *Mesh) Local() Transform { return m.Tf }

// Triangle is a triangle in 3D space with counterclockwise winding when
// seen from the outside of the surface it belongs to.
type Triangle [3]r3.Vec

// Normal returns the triangle's unit normal.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Shape is an immutable triangulatable mesh primitive.
type Shape interface {
	// AppendTriangles appends the shape triangulation in the shape's
	// local frame to dst and returns the extended slice.
	AppendTriangles(dst []Triangle) []Triangle
}

// Walk visits root and all nodes below it in depth-first order. fn
// receives each node along with its world transform, the composition of
// every transform from the root down to the node itself.
func Walk(root Node, fn func(n Node, world Transform)) {
	walk(root, Identity(), fn)
}

func walk(n Node, parent Transform, fn func(Node, Transform)) {
	world := parent.Compose(n.Local())
	fn(n, world)
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			walk(c, world, fn)
		}
	}
}
