package mesh

// BoxEdges returns the twelve edges of a box as a line list.
func BoxEdges(w, h, d float32) *Geometry {
	hx, hy, hz := w/2, h/2, d/2
	corners := [8][3]float32{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	pts := make([][3]float32, 0, 24)
	for _, e := range edges {
		pts = append(pts, corners[e[0]], corners[e[1]])
	}
	return Segments(pts)
}

// Segments returns a line list; points are consumed in pairs.
func Segments(points [][3]float32) *Geometry {
	n := len(points) &^ 1
	verts := make([]Vertex, n)
	for i := 0; i < n; i++ {
		verts[i] = Vertex{Position: points[i], Color: white}
	}
	return newGeometry(Lines, verts, nil)
}

// PointCloud returns a point list. colors may be nil for white points;
// otherwise it must be as long as positions.
func PointCloud(positions, colors [][3]float32) *Geometry {
	verts := make([]Vertex, len(positions))
	for i, p := range positions {
		c := white
		if colors != nil {
			c = colors[i]
		}
		verts[i] = Vertex{Position: p, Color: c}
	}
	return newGeometry(Points, verts, nil)
}
