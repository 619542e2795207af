// Package scene holds the cube's scene graph: the glass cube, its face
// planes, the per-face dioramas, background particles and lights, plus the
// decorative animations that move them.
package scene

import (
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/mesh"
	"github.com/Faultbox/venture-cube/pkg/math"
)

// Material describes how a node is shaded.
type Material struct {
	Color             math.Vec3
	Emissive          math.Vec3
	EmissiveIntensity float32
	Opacity           float32
	Transparent       bool
	// Unlit skips lighting (flat color).
	Unlit        bool
	DoubleSided  bool
	Shininess    float32
	VertexColors bool
	// PointSize is the world-space size of point sprites.
	PointSize float32
}

// Standard returns an opaque lit material.
func Standard(color math.Vec3) *Material {
	return &Material{Color: color, Opacity: 1, Shininess: 32}
}

// Basic returns an unlit material; opacity below 1 makes it transparent.
func Basic(color math.Vec3, opacity float32) *Material {
	return &Material{Color: color, Opacity: opacity, Transparent: opacity < 1, Unlit: true}
}

// Glow returns a lit material that also emits its own color.
func Glow(color math.Vec3, intensity float32) *Material {
	m := Standard(color)
	m.Emissive = color
	m.EmissiveIntensity = intensity
	return m
}

// Pick marks a node as clickable on behalf of a face. An Occluder belongs to
// no face and only blocks the pick targets behind it.
type Pick struct {
	Face     cube.FaceID
	Corner   bool
	Occluder bool
}

// Node is a scene graph node. Transforms compose parent * T * R * S.
type Node struct {
	Name     string
	Position math.Vec3
	Rotation math.Euler
	Scale    math.Vec3
	Visible  bool

	Geometry *mesh.Geometry
	Material *Material
	Pick     *Pick

	Children []*Node
	parent   *Node
	world    math.Mat4
}

// NewNode creates an empty visible node with unit scale.
func NewNode(name string) *Node {
	return &Node{
		Name:    name,
		Scale:   math.Splat(1),
		Visible: true,
		world:   math.Identity(),
	}
}

// NewMesh creates a node drawing geometry with material.
func NewMesh(name string, g *mesh.Geometry, m *Material) *Node {
	n := NewNode(name)
	n.Geometry = g
	n.Material = m
	return n
}

// At sets the position and returns the node.
func (n *Node) At(x, y, z float32) *Node {
	n.Position = math.Vec3{X: x, Y: y, Z: z}
	return n
}

// Add attaches children to the node.
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		c.parent = n
		n.Children = append(n.Children, c)
	}
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Local returns the node's local transform.
func (n *Node) Local() math.Mat4 {
	return math.Compose(n.Position, n.Rotation, n.Scale)
}

// World returns the world transform computed by the last UpdateWorld.
func (n *Node) World() math.Mat4 { return n.world }

// UpdateWorld recomputes world transforms for the subtree.
func (n *Node) UpdateWorld(parent math.Mat4) {
	n.world = parent.Mul(n.Local())
	for _, c := range n.Children {
		c.UpdateWorld(n.world)
	}
}

// Walk visits the subtree depth first. Returning false skips a node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node in the subtree with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}
