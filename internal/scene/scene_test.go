package scene

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/picking"
	"github.com/Faultbox/venture-cube/pkg/math"
)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func centerRay(x, y float32) picking.Ray {
	return picking.Ray{Origin: [3]float32{x, y, 5.9}, Direction: [3]float32{0, 0, -1}}
}

func TestBuildStructure(t *testing.T) {
	s := Build(content.Default(), DefaultOptions())

	if got, want := len(s.Pickables), cube.Count*5+1; got != want {
		t.Errorf("pickables = %d, want %d", got, want)
	}
	if p := s.Pickables[0].Pick; p == nil || !p.Occluder {
		t.Errorf("first pickable = %+v, want the glass occluder", p)
	}
	for f := cube.Front; f < cube.Count; f++ {
		if s.Faces[f] == nil || s.Dioramas[f] == nil {
			t.Fatalf("face %v missing mount or diorama", f)
		}
		if s.Dioramas[f].Parent() != s.Group {
			t.Errorf("diorama %v not attached to the cube group", f)
		}
	}
	if s.Particles.Parent() != s.Root {
		t.Error("particles should sit outside the rotating group")
	}
	if got := s.Particles.Geometry.Count(); got != 500 {
		t.Errorf("particle count = %d, want 500", got)
	}
	if len(s.Animations) == 0 {
		t.Error("no animations registered")
	}
	if s.Root.Find("glass") == nil || s.Root.Find("edges") == nil {
		t.Error("glass cube or edges missing")
	}
	if s.Fog.Near != 8 || s.Fog.Far != 25 {
		t.Errorf("fog = %+v", s.Fog)
	}
}

func TestFacePlaneColorsFollowContent(t *testing.T) {
	tbl := content.Default()
	s := Build(tbl, DefaultOptions())
	plane := s.Faces[cube.Right].Children[0]
	want := content.Color("#8b5cf6").Vec3()
	if plane.Material.Color != want {
		t.Errorf("right plane color = %+v, want %+v", plane.Material.Color, want)
	}
	if plane.Pick == nil || plane.Pick.Face != cube.Right || plane.Pick.Corner {
		t.Errorf("right plane pick = %+v", plane.Pick)
	}
}

func TestBuildDeterministicPerSeed(t *testing.T) {
	a := Build(content.Default(), DefaultOptions())
	b := Build(content.Default(), DefaultOptions())
	opts := DefaultOptions()
	opts.Seed = 99
	c := Build(content.Default(), opts)

	pa := a.Particles.Geometry.Vertices
	pb := b.Particles.Geometry.Vertices
	pc := c.Particles.Geometry.Vertices
	same, differs := true, false
	for i := range pa {
		if pa[i] != pb[i] {
			same = false
		}
		if pa[i].Position != pc[i].Position {
			differs = true
		}
		for _, v := range pa[i].Position {
			if v < -10 || v > 10 {
				t.Fatalf("particle %d outside the 20 unit cube: %v", i, pa[i].Position)
			}
		}
	}
	if !same {
		t.Error("same seed produced different particles")
	}
	if !differs {
		t.Error("different seeds produced identical particles")
	}
}

func TestPickFace(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float32
		want       cube.FaceID
	}{
		{"identity", 0, 0, cube.Front},
		{"yawed right", 0, -gomath.Pi / 2, cube.Right},
		{"yawed left", 0, gomath.Pi / 2, cube.Left},
		{"turned around", 0, gomath.Pi, cube.Back},
		{"pitched up", gomath.Pi / 2, 0, cube.Top},
		{"pitched down", -gomath.Pi / 2, 0, cube.Bottom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Build(content.Default(), DefaultOptions())
			s.SetOrientation(tt.pitch, tt.yaw)
			s.Update(0)

			face, ok := s.PickFace(centerRay(0.1, 0.05))
			if !ok || face != tt.want {
				t.Errorf("PickFace = (%v, %v), want %v", face, ok, tt.want)
			}
		})
	}
}

func TestPickCornerBeforePlane(t *testing.T) {
	s := Build(content.Default(), DefaultOptions())
	hit, ok := picking.Pick(centerRay(0.8, 0.8), s.PickTargets())
	if !ok {
		t.Fatal("expected a hit")
	}
	p := s.Pickables[hit.Index].Pick
	if !p.Corner || p.Face != cube.Front {
		t.Errorf("hit %+v, want the front corner accent", p)
	}
}

func TestGlassOccludesSidePlanes(t *testing.T) {
	s := Build(content.Default(), DefaultOptions())
	// Through the front margin toward the right plane, which sits behind the glass.
	ray := picking.Ray{Origin: [3]float32{0, 0, 6}, Direction: [3]float32{0.95, 0, -5}}
	if face, ok := s.PickFace(ray); ok {
		t.Errorf("PickFace = %v, want no face", face)
	}
	hit, ok := picking.Pick(ray, s.PickTargets())
	if !ok || !s.Pickables[hit.Index].Pick.Occluder {
		t.Errorf("nearest hit should be the glass cube, got %+v", hit)
	}
}

func TestPickOutsideCube(t *testing.T) {
	s := Build(content.Default(), DefaultOptions())
	if _, ok := s.PickFace(centerRay(1.5, 0)); ok {
		t.Error("ray beside the cube should not hit a face")
	}
}

func TestNodeWorldComposition(t *testing.T) {
	root := NewNode("root").At(1, 0, 0)
	child := NewNode("child").At(0, 2, 0)
	root.Scale = math.Splat(2)
	root.Add(child)
	root.UpdateWorld(math.Identity())

	p := child.World().TransformPoint([3]float32{0, 0, 0})
	if abs(p[0]-1) > 1e-6 || abs(p[1]-4) > 1e-6 {
		t.Errorf("child origin at %v, want (1, 4, 0)", p)
	}
	if root.Find("child") != child || root.Find("nope") != nil {
		t.Error("Find returned the wrong node")
	}
}
