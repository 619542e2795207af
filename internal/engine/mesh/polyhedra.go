package mesh

import "math"

// Octahedron returns a flat-shaded octahedron with vertices at distance radius.
func Octahedron(radius float32) *Geometry {
	v := [][3]float32{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	f := [][3]int{{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2}, {1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2}}
	return polyhedron(v, f, radius, 0)
}

// Icosahedron returns a flat-shaded icosahedron. Each detail level splits
// every triangle into four and pushes the new vertices onto the sphere.
func Icosahedron(radius float32, detail int) *Geometry {
	t := float32((1 + math.Sqrt(5)) / 2)
	v := [][3]float32{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	f := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return polyhedron(v, f, radius, detail)
}

func polyhedron(v [][3]float32, faces [][3]int, radius float32, detail int) *Geometry {
	tris := make([][3][3]float32, 0, len(faces))
	for _, f := range faces {
		tris = append(tris, [3][3]float32{normalize(v[f[0]]), normalize(v[f[1]]), normalize(v[f[2]])})
	}
	for ; detail > 0; detail-- {
		next := make([][3][3]float32, 0, len(tris)*4)
		for _, t := range tris {
			ab := normalize(scale(add(t[0], t[1]), 0.5))
			bc := normalize(scale(add(t[1], t[2]), 0.5))
			ca := normalize(scale(add(t[2], t[0]), 0.5))
			next = append(next,
				[3][3]float32{t[0], ab, ca},
				[3][3]float32{ab, t[1], bc},
				[3][3]float32{ca, bc, t[2]},
				[3][3]float32{ab, bc, ca},
			)
		}
		tris = next
	}

	verts := make([]Vertex, 0, len(tris)*3)
	for _, t := range tris {
		n := normalize(cross(sub(t[1], t[0]), sub(t[2], t[0])))
		for _, p := range t {
			verts = append(verts, Vertex{Position: scale(p, radius), Normal: n, Color: white})
		}
	}
	return newGeometry(Triangles, verts, nil)
}
