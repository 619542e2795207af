package scene

import (
	"slices"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// DrawItem is a visible node with its world transform and view depth.
type DrawItem struct {
	Node  *Node
	World math.Mat4
	Depth float32 // distance from the eye to the node origin
}

// DrawList splits renderable nodes into an opaque and a transparent pass.
type DrawList struct {
	Opaque      []DrawItem
	Transparent []DrawItem // sorted back to front
}

// Collect gathers visible nodes with geometry for a camera at eye. Hidden
// nodes hide their subtree. World transforms must be current.
func (s *Scene) Collect(eye math.Vec3, list *DrawList) {
	list.Opaque = list.Opaque[:0]
	list.Transparent = list.Transparent[:0]

	s.Root.Walk(func(n *Node) bool {
		if !n.Visible {
			return false
		}
		if n.Geometry == nil || n.Material == nil || n.Geometry.Count() == 0 {
			return true
		}
		w := n.World()
		origin := math.Vec3{X: w[12], Y: w[13], Z: w[14]}
		item := DrawItem{Node: n, World: w, Depth: origin.Distance(eye)}
		if n.Material.Transparent {
			list.Transparent = append(list.Transparent, item)
		} else {
			list.Opaque = append(list.Opaque, item)
		}
		return true
	})

	slices.SortStableFunc(list.Transparent, func(a, b DrawItem) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
}
