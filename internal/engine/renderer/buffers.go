package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/venture-cube/internal/engine/mesh"
)

// gpuMesh holds the GL objects for one uploaded geometry.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	indexed       bool
}

var vertexStride = int32(unsafe.Sizeof(mesh.Vertex{}))

func glMode(m mesh.Mode) uint32 {
	switch m {
	case mesh.Lines:
		return gl.LINES
	case mesh.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

// upload creates the VAO/VBO (and EBO when indexed) for a geometry.
// Layout: location 0 position, 1 normal, 2 color.
func upload(g *mesh.Geometry) *gpuMesh {
	m := &gpuMesh{
		count:   int32(g.Count()),
		mode:    glMode(g.Mode),
		indexed: len(g.Indices) > 0,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(vertexStride), unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	if m.indexed {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElements(m.mode, m.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(m.mode, 0, m.count)
	}
}

func (m *gpuMesh) release() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
