package debug

import (
	"github.com/Faultbox/venture-cube/internal/engine/mesh"
	"github.com/Faultbox/venture-cube/internal/engine/picking"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges x 2).
const BBoxWireframeVertexCount = 24

// GenerateBBoxWireframeVertices creates line endpoints for the 12 edges of a box.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) [][3]float32 {
	return [][3]float32{
		// Bottom face
		{minX, minY, minZ}, {maxX, minY, minZ},
		{maxX, minY, minZ}, {maxX, minY, maxZ},
		{maxX, minY, maxZ}, {minX, minY, maxZ},
		{minX, minY, maxZ}, {minX, minY, minZ},
		// Top face
		{minX, maxY, minZ}, {maxX, maxY, minZ},
		{maxX, maxY, minZ}, {maxX, maxY, maxZ},
		{maxX, maxY, maxZ}, {minX, maxY, maxZ},
		{minX, maxY, maxZ}, {minX, maxY, minZ},
		// Vertical edges
		{minX, minY, minZ}, {minX, maxY, minZ},
		{maxX, minY, minZ}, {maxX, maxY, minZ},
		{maxX, minY, maxZ}, {maxX, maxY, maxZ},
		{minX, minY, maxZ}, {minX, maxY, maxZ},
	}
}

// PickBoundsOverlay builds world-space line geometry outlining each pick
// target's box, padded outward by padding.
func PickBoundsOverlay(targets []picking.Target, padding float32) *mesh.Geometry {
	points := make([][3]float32, 0, len(targets)*BBoxWireframeVertexCount)
	for _, t := range targets {
		b := t.Bounds
		corners := GenerateBBoxWireframeVertices(
			b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding,
			b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding,
		)
		for _, c := range corners {
			points = append(points, t.World.TransformPoint(c))
		}
	}
	return mesh.Segments(points)
}
