package mesh

import (
	"math"
	"testing"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func length(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

func checkIndices(t *testing.T, g *Geometry) {
	t.Helper()
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d out of range (%d vertices)", idx, len(g.Vertices))
		}
	}
	if g.Mode == Triangles && g.Count()%3 != 0 {
		t.Fatalf("triangle count %d not a multiple of 3", g.Count())
	}
}

func checkUnitNormals(t *testing.T, g *Geometry) {
	t.Helper()
	for i, v := range g.Vertices {
		if l := length(v.Normal); abs(l-1) > 1e-3 {
			t.Fatalf("vertex %d normal length %v", i, l)
		}
	}
}

func TestBox(t *testing.T) {
	g := Box(2, 1, 0.5)
	if len(g.Vertices) != 24 || len(g.Indices) != 36 {
		t.Fatalf("box has %d vertices, %d indices", len(g.Vertices), len(g.Indices))
	}
	checkIndices(t, g)
	checkUnitNormals(t, g)
	want := Bounds{Min: [3]float32{-1, -0.5, -0.25}, Max: [3]float32{1, 0.5, 0.25}}
	if g.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", g.Bounds, want)
	}
	// Every vertex lies on the face its normal points out of.
	for _, v := range g.Vertices {
		for i := 0; i < 3; i++ {
			if v.Normal[i] != 0 && abs(v.Position[i]*v.Normal[i]-want.Max[i]) > 1e-6 {
				t.Fatalf("vertex %v not on face %v", v.Position, v.Normal)
			}
		}
	}
}

func TestPlane(t *testing.T) {
	g := Plane(1.8, 1.8)
	if g.Bounds.Min != [3]float32{-0.9, -0.9, 0} || g.Bounds.Max != [3]float32{0.9, 0.9, 0} {
		t.Errorf("bounds = %+v", g.Bounds)
	}
	checkIndices(t, g)
}

func TestConeApex(t *testing.T) {
	g := Cone(0.4, 0.3, 4)
	checkIndices(t, g)
	checkUnitNormals(t, g)
	if abs(g.Bounds.Max[1]-0.15) > 1e-6 || abs(g.Bounds.Min[1]+0.15) > 1e-6 {
		t.Errorf("cone height bounds = %v..%v", g.Bounds.Min[1], g.Bounds.Max[1])
	}
	for _, v := range g.Vertices {
		if v.Position[1] > 0.14 && (v.Position[0] != 0 || v.Position[2] != 0) {
			t.Fatalf("top vertex %v not at the apex", v.Position)
		}
	}
}

func TestSphereRadius(t *testing.T) {
	g := Sphere(0.05, 16, 16)
	checkIndices(t, g)
	checkUnitNormals(t, g)
	for _, v := range g.Vertices {
		if l := length(v.Position); abs(l-0.05) > 1e-5 {
			t.Fatalf("vertex at distance %v, want 0.05", l)
		}
	}
}

func TestTorus(t *testing.T) {
	g := Torus(0.08, 0.01, 8, 16)
	checkIndices(t, g)
	checkUnitNormals(t, g)
	if abs(g.Bounds.Max[0]-0.09) > 1e-4 || abs(g.Bounds.Max[2]-0.01) > 1e-4 {
		t.Errorf("torus bounds = %+v", g.Bounds)
	}
}

func TestTorusKnot(t *testing.T) {
	g := TorusKnot(0.15, 0.05, 64, 8)
	checkIndices(t, g)
	checkUnitNormals(t, g)
	if len(g.Vertices) != 65*9 {
		t.Errorf("vertices = %d, want %d", len(g.Vertices), 65*9)
	}
}

func TestPolyhedraOnSphere(t *testing.T) {
	tests := []struct {
		name string
		g    *Geometry
		tris int
		r    float32
	}{
		{"octahedron", Octahedron(0.06), 8, 0.06},
		{"icosahedron", Icosahedron(0.15, 0), 20, 0.15},
		{"icosahedron detail 1", Icosahedron(0.12, 1), 80, 0.12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.g.Vertices) / 3; got != tt.tris {
				t.Errorf("triangles = %d, want %d", got, tt.tris)
			}
			checkUnitNormals(t, tt.g)
			for _, v := range tt.g.Vertices {
				if l := length(v.Position); abs(l-tt.r) > 1e-5 {
					t.Fatalf("vertex at distance %v, want %v", l, tt.r)
				}
				// Flat normals point outward.
				if v.Normal[0]*v.Position[0]+v.Normal[1]*v.Position[1]+v.Normal[2]*v.Position[2] <= 0 {
					t.Fatalf("normal %v points inward at %v", v.Normal, v.Position)
				}
			}
		})
	}
}

func TestRing(t *testing.T) {
	g := Ring(0.3, 0.32, 32)
	checkIndices(t, g)
	for _, v := range g.Vertices {
		l := length(v.Position)
		if abs(l-0.3) > 1e-5 && abs(l-0.32) > 1e-5 {
			t.Fatalf("ring vertex at radius %v", l)
		}
	}
}

func TestLineGeometry(t *testing.T) {
	edges := BoxEdges(2, 2, 2)
	if edges.Mode != Lines || len(edges.Vertices) != 24 {
		t.Fatalf("box edges: mode %v, %d vertices", edges.Mode, len(edges.Vertices))
	}
	if edges.Bounds.Max != [3]float32{1, 1, 1} {
		t.Errorf("edge bounds = %+v", edges.Bounds)
	}

	seg := Segments([][3]float32{{0, 0, 0}, {1, 0, 0}, {5, 5, 5}})
	if len(seg.Vertices) != 2 {
		t.Errorf("odd trailing point should be dropped, got %d vertices", len(seg.Vertices))
	}
}

func TestPointCloud(t *testing.T) {
	pts := [][3]float32{{-1, 0, 2}, {3, -4, 0}}
	g := PointCloud(pts, [][3]float32{{1, 0, 0}, {0, 1, 0}})
	if g.Mode != Points || g.Count() != 2 {
		t.Fatalf("mode %v count %d", g.Mode, g.Count())
	}
	if g.Vertices[1].Color != [3]float32{0, 1, 0} {
		t.Errorf("color = %v", g.Vertices[1].Color)
	}
	if g.Bounds.Min != [3]float32{-1, -4, 0} || g.Bounds.Max != [3]float32{3, 0, 2} {
		t.Errorf("bounds = %+v", g.Bounds)
	}
	if PointCloud(pts, nil).Vertices[0].Color != white {
		t.Error("nil colors should give white points")
	}
}
