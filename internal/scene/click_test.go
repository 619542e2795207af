package scene

import (
	"testing"

	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/camera"
	"github.com/Faultbox/venture-cube/internal/engine/picking"
	"github.com/Faultbox/venture-cube/internal/rotation"
)

// press runs one pointer gesture through the controller and, if it was a
// click, picks the face under the release point and builds its panel.
func press(c *rotation.Controller, s *Scene, cam *camera.PerspectiveCamera, table *content.Table, from, to [2]float32) (content.Panel, bool) {
	const w, h = 1280, 720
	c.PointerDown(from[0], from[1])
	c.PointerMove(to[0], to[1])
	if !c.PointerUp() {
		return content.Panel{}, false
	}
	ray := picking.ScreenToRay(to[0], to[1], w, h, cam.InverseViewProj())
	face, ok := s.PickFace(ray)
	if !ok {
		return content.Panel{}, false
	}
	return table.BuildPanel(face)
}

func TestClickOpensFrontPanel(t *testing.T) {
	table := content.Default()
	s := Build(table, DefaultOptions())
	cam := camera.NewPerspective(45, 0.1, 100, 6)
	cam.Resize(1280, 720)
	c := rotation.New(rotation.DefaultConfig())

	at := [2]float32{660, 370}
	p, ok := press(c, s, cam, table, at, at)
	if !ok {
		t.Fatal("zero-movement click on the front face opened nothing")
	}
	if p.Face != cube.Front || p.Title != "AEROINTEL" {
		t.Errorf("opened %v %q, want the front venture", p.Face, p.Title)
	}
}

func TestDragOpensNothing(t *testing.T) {
	table := content.Default()
	s := Build(table, DefaultOptions())
	cam := camera.NewPerspective(45, 0.1, 100, 6)
	cam.Resize(1280, 720)
	c := rotation.New(rotation.DefaultConfig())

	if _, ok := press(c, s, cam, table, [2]float32{640, 360}, [2]float32{700, 360}); ok {
		t.Error("a drag followed by release opened a panel")
	}
	if c.Target().Yaw == 0 {
		t.Error("drag did not rotate the target")
	}
}

func TestClickBesideCubeOpensNothing(t *testing.T) {
	table := content.Default()
	s := Build(table, DefaultOptions())
	cam := camera.NewPerspective(45, 0.1, 100, 6)
	cam.Resize(1280, 720)
	c := rotation.New(rotation.DefaultConfig())

	at := [2]float32{40, 40}
	if _, ok := press(c, s, cam, table, at, at); ok {
		t.Error("click in the corner of the screen opened a panel")
	}
}

func TestClickOnFrontMarginOpensNothing(t *testing.T) {
	table := content.Default()
	s := Build(table, DefaultOptions())
	cam := camera.NewPerspective(45, 0.1, 100, 6)
	cam.Resize(1280, 720)
	c := rotation.New(rotation.DefaultConfig())

	// World x ~0.95 on the front face: outside the front plane, in front of
	// the right plane.
	at := [2]float32{805, 360}
	if p, ok := press(c, s, cam, table, at, at); ok {
		t.Errorf("click on the front margin opened %v %q", p.Face, p.Title)
	}
}

func TestAboutShortcutOnSideFace(t *testing.T) {
	table, err := content.Parse([]byte("faces:\n  left: {name: About, color: \"#f59e0b\", kind: about}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	face, ok := table.FaceByKind(content.KindAbout)
	if !ok || face != cube.Left {
		t.Fatalf("about face = (%v, %v), want left", face, ok)
	}

	s := Build(table, DefaultOptions())
	cam := camera.NewPerspective(45, 0.1, 100, 6)
	cam.Resize(1280, 720)
	cfg := rotation.DefaultConfig()
	cfg.AutoRotate = 0
	c := rotation.New(cfg)

	if !c.SnapTo(face) {
		t.Fatal("SnapTo(left) returned false")
	}
	for i := 0; i < 250; i++ {
		c.Tick(1.0/60, false)
	}
	cur := c.Current()
	s.SetOrientation(cur.Pitch, cur.Yaw)
	s.Update(0)

	at := [2]float32{640, 360}
	p, ok := press(c, s, cam, table, at, at)
	if !ok || p.Face != cube.Left {
		t.Errorf("center click opened (%v, %v), want the left panel", p.Face, ok)
	}
}
