package mesh

import "math"

// Box returns an axis-aligned box centered at the origin with flat normals.
func Box(w, h, d float32) *Geometry {
	hx, hy, hz := w/2, h/2, d/2
	faces := []struct {
		n    [3]float32
		u, v [3]float32
	}{
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
	}
	half := [3]float32{hx, hy, hz}

	verts := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(verts))
		for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = (f.n[i] + f.u[i]*c[0] + f.v[i]*c[1]) * half[i]
			}
			verts = append(verts, Vertex{Position: p, Normal: f.n, Color: white})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return newGeometry(Triangles, verts, indices)
}

// Plane returns a w x h quad in the XY plane facing +Z.
func Plane(w, h float32) *Geometry {
	hx, hy := w/2, h/2
	n := [3]float32{0, 0, 1}
	verts := []Vertex{
		{Position: [3]float32{-hx, -hy, 0}, Normal: n, Color: white},
		{Position: [3]float32{hx, -hy, 0}, Normal: n, Color: white},
		{Position: [3]float32{hx, hy, 0}, Normal: n, Color: white},
		{Position: [3]float32{-hx, hy, 0}, Normal: n, Color: white},
	}
	return newGeometry(Triangles, verts, []uint32{0, 1, 2, 0, 2, 3})
}

// Cylinder returns a capped cylinder along Y centered at the origin. A zero
// top radius makes a cone with its apex at +h/2.
func Cylinder(radiusTop, radiusBottom, height float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	hh := height / 2
	slope := (radiusBottom - radiusTop) / height

	var verts []Vertex
	var indices []uint32

	// Side: duplicate the seam column so normals stay continuous.
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		sin, cos := float32(math.Sin(theta)), float32(math.Cos(theta))
		n := normalize([3]float32{sin, slope, cos})
		verts = append(verts,
			Vertex{Position: [3]float32{radiusTop * sin, hh, radiusTop * cos}, Normal: n, Color: white},
			Vertex{Position: [3]float32{radiusBottom * sin, -hh, radiusBottom * cos}, Normal: n, Color: white},
		)
	}
	for i := 0; i < segments; i++ {
		a := uint32(i * 2)
		indices = append(indices, a, a+1, a+3, a, a+3, a+2)
	}

	addCap := func(radius, y, ny float32) {
		if radius <= 0 {
			return
		}
		center := uint32(len(verts))
		verts = append(verts, Vertex{Position: [3]float32{0, y, 0}, Normal: [3]float32{0, ny, 0}, Color: white})
		for i := 0; i <= segments; i++ {
			theta := float64(i) / float64(segments) * 2 * math.Pi
			verts = append(verts, Vertex{
				Position: [3]float32{radius * float32(math.Sin(theta)), y, radius * float32(math.Cos(theta))},
				Normal:   [3]float32{0, ny, 0},
				Color:    white,
			})
		}
		for i := uint32(0); i < uint32(segments); i++ {
			if ny > 0 {
				indices = append(indices, center, center+1+i, center+2+i)
			} else {
				indices = append(indices, center, center+2+i, center+1+i)
			}
		}
	}
	addCap(radiusTop, hh, 1)
	addCap(radiusBottom, -hh, -1)

	return newGeometry(Triangles, verts, indices)
}

// Cone returns a cone along Y with its apex at +height/2.
func Cone(radius, height float32, segments int) *Geometry {
	return Cylinder(0, radius, height, segments)
}

// Sphere returns a UV sphere.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	var verts []Vertex
	for y := 0; y <= heightSegments; y++ {
		phi := float64(y) / float64(heightSegments) * math.Pi
		for x := 0; x <= widthSegments; x++ {
			theta := float64(x) / float64(widthSegments) * 2 * math.Pi
			n := [3]float32{
				float32(-math.Cos(theta) * math.Sin(phi)),
				float32(math.Cos(phi)),
				float32(math.Sin(theta) * math.Sin(phi)),
			}
			verts = append(verts, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				Color:    white,
			})
		}
	}
	stride := uint32(widthSegments + 1)
	var indices []uint32
	for y := uint32(0); y < uint32(heightSegments); y++ {
		for x := uint32(0); x < uint32(widthSegments); x++ {
			a := y*stride + x
			b := a + stride
			if y != 0 {
				indices = append(indices, a, b, a+1)
			}
			if y != uint32(heightSegments)-1 {
				indices = append(indices, a+1, b, b+1)
			}
		}
	}
	return newGeometry(Triangles, verts, indices)
}

// Torus returns a torus lying in the XY plane around the Z axis.
func Torus(radius, tube float32, radialSegments, tubularSegments int) *Geometry {
	return sweep(radialSegments, tubularSegments, tube, func(u float64) ([3]float32, [3]float32) {
		c := [3]float32{radius * float32(math.Cos(u)), radius * float32(math.Sin(u)), 0}
		return c, [3]float32{float32(math.Cos(u)), float32(math.Sin(u)), 0}
	})
}

// TorusKnot returns a (2,3) torus knot.
func TorusKnot(radius, tube float32, tubularSegments, radialSegments int) *Geometry {
	const p, q = 2, 3
	knot := func(u float64) [3]float32 {
		quOverP := q / float64(p) * u
		cs := math.Cos(quOverP)
		return [3]float32{
			radius * float32((2+cs)*0.5*math.Cos(u)),
			radius * float32((2+cs)*0.5*math.Sin(u)),
			radius * float32(math.Sin(quOverP)*0.5),
		}
	}
	return sweep(radialSegments, tubularSegments, tube, func(u float64) ([3]float32, [3]float32) {
		p1 := knot(u)
		p2 := knot(u + 0.01)
		return p1, normalize(cross(sub(p2, p1), add(p2, p1)))
	})
}

// sweep builds a tube of radius tube around a closed path. frame returns the
// path point and a unit vector perpendicular to the path at parameter u.
func sweep(radialSegments, tubularSegments int, tube float32, frame func(u float64) (center, side [3]float32)) *Geometry {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if tubularSegments < 3 {
		tubularSegments = 3
	}
	const step = 1e-3
	var verts []Vertex
	for j := 0; j <= tubularSegments; j++ {
		u := float64(j) / float64(tubularSegments) * 2 * math.Pi
		c, side := frame(u)
		next, _ := frame(u + step)
		tangent := normalize(sub(next, c))
		up := normalize(cross(tangent, side))
		for i := 0; i <= radialSegments; i++ {
			v := float64(i) / float64(radialSegments) * 2 * math.Pi
			cv, sv := float32(math.Cos(v)), float32(math.Sin(v))
			n := normalize(add(scale(side, cv), scale(up, sv)))
			verts = append(verts, Vertex{Position: add(c, scale(n, tube)), Normal: n, Color: white})
		}
	}
	stride := uint32(radialSegments + 1)
	var indices []uint32
	for j := uint32(0); j < uint32(tubularSegments); j++ {
		for i := uint32(0); i < uint32(radialSegments); i++ {
			a := j*stride + i
			b := (j+1)*stride + i
			indices = append(indices, a, b, a+1, b, b+1, a+1)
		}
	}
	return newGeometry(Triangles, verts, indices)
}

// Ring returns a flat annulus in the XY plane facing +Z.
func Ring(inner, outer float32, segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	n := [3]float32{0, 0, 1}
	var verts []Vertex
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		cos, sin := float32(math.Cos(theta)), float32(math.Sin(theta))
		verts = append(verts,
			Vertex{Position: [3]float32{inner * cos, inner * sin, 0}, Normal: n, Color: white},
			Vertex{Position: [3]float32{outer * cos, outer * sin, 0}, Normal: n, Color: white},
		)
	}
	var indices []uint32
	for i := 0; i < segments; i++ {
		a := uint32(i * 2)
		indices = append(indices, a, a+1, a+3, a, a+3, a+2)
	}
	return newGeometry(Triangles, verts, indices)
}

func add(a, b [3]float32) [3]float32 { return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func scale(a [3]float32, s float32) [3]float32 {
	return [3]float32{a[0] * s, a[1] * s, a[2] * s}
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func normalize(a [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])))
	if l == 0 {
		return a
	}
	return [3]float32{a[0] / l, a[1] / l, a[2] / l}
}
