// Package mesh builds procedural geometry ready for GPU upload.
package mesh

// Mode is the primitive type a geometry is drawn with.
type Mode int

const (
	Triangles Mode = iota
	Lines
	Points
)

// Vertex is a mesh vertex with position, normal and color.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	Color    [3]float32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Geometry is a vertex list with optional indices. Geometries are immutable
// after construction; renderers cache GPU buffers per *Geometry.
type Geometry struct {
	Mode     Mode
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Count returns the number of elements to draw.
func (g *Geometry) Count() int {
	if len(g.Indices) > 0 {
		return len(g.Indices)
	}
	return len(g.Vertices)
}

var white = [3]float32{1, 1, 1}

func newGeometry(mode Mode, verts []Vertex, indices []uint32) *Geometry {
	g := &Geometry{Mode: mode, Vertices: verts, Indices: indices}
	g.Bounds = computeBounds(verts)
	return g
}

func computeBounds(verts []Vertex) Bounds {
	if len(verts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: verts[0].Position, Max: verts[0].Position}
	for _, v := range verts[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < b.Min[i] {
				b.Min[i] = v.Position[i]
			}
			if v.Position[i] > b.Max[i] {
				b.Max[i] = v.Position[i]
			}
		}
	}
	return b
}
