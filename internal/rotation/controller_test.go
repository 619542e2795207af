package rotation

import (
	gomath "math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Faultbox/venture-cube/internal/cube"
)

const frame = float32(1.0 / 60.0)

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func deg(d float64) float32 {
	return float32(d * gomath.Pi / 180)
}

func TestPitchStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	c := New(DefaultConfig())

	x, y := float32(400), float32(300)
	for gesture := 0; gesture < 50; gesture++ {
		c.PointerDown(x, y)
		for i := 0; i < 20; i++ {
			x += float32(rng.NormFloat64() * 200)
			y += float32(rng.NormFloat64() * 400)
			c.PointerMove(x, y)
			c.Tick(frame, true)
			checkPitch(t, c)
		}
		c.PointerUp()
		// Momentum keeps pushing pitch after release.
		for i := 0; i < 30; i++ {
			c.Tick(frame, false)
			checkPitch(t, c)
		}
	}
}

func checkPitch(t *testing.T, c *Controller) {
	t.Helper()
	if p := c.Target().Pitch; p < -MaxPitch || p > MaxPitch {
		t.Fatalf("target pitch %v outside [-pi/2, pi/2]", p)
	}
	if p := c.Current().Pitch; p < -MaxPitch || p > MaxPitch {
		t.Fatalf("current pitch %v outside [-pi/2, pi/2]", p)
	}
}

func TestTickAtRestIsIdempotent(t *testing.T) {
	for _, name := range []string{ProfileShowcase, ProfileCompact} {
		t.Run(name, func(t *testing.T) {
			cfg, err := ProfileConfig(name)
			if err != nil {
				t.Fatal(err)
			}
			cfg.AutoRotate = 0
			c := New(cfg)

			for i := 0; i < 10; i++ {
				got := c.Tick(0, false)
				if got != (Orientation{}) {
					t.Fatalf("tick %d moved a resting cube to %+v", i, got)
				}
			}
			if got := c.Tick(0, true); got != (Orientation{}) {
				t.Fatalf("dragging tick without movement moved cube to %+v", got)
			}
		})
	}
}

func TestDampingReducesVelocity(t *testing.T) {
	c := New(DefaultConfig())
	c.PointerDown(100, 100)
	c.PointerMove(140, 120)
	c.PointerUp()

	prev := c.Velocity().magnitude()
	if prev == 0 {
		t.Fatal("expected momentum after drag")
	}
	for i := 0; i < 400; i++ {
		c.Tick(frame, false)
		mag := c.Velocity().magnitude()
		if mag >= prev {
			t.Fatalf("tick %d: |v| %v did not decrease from %v", i, mag, prev)
		}
		prev = mag
	}
	if prev > 1e-6 {
		t.Errorf("velocity %v did not decay toward zero", prev)
	}
}

func TestDragRotatesTarget(t *testing.T) {
	c := New(DefaultConfig())
	c.BeginDrag(10, 10)
	c.UpdateDrag(30, 5)

	want := Orientation{Pitch: -5 * 0.005, Yaw: 20 * 0.005}
	got := c.Target()
	if abs(got.Pitch-want.Pitch) > 1e-6 || abs(got.Yaw-want.Yaw) > 1e-6 {
		t.Errorf("target = %+v, want %+v", got, want)
	}
	if c.DragTravel() < 20 {
		t.Errorf("drag travel = %v, want >= 20", c.DragTravel())
	}

	c.EndDrag()
	c.UpdateDrag(500, 500)
	if c.Target() != got {
		t.Error("UpdateDrag without a session changed the target")
	}
}

func TestCurrentNeverOvershoots(t *testing.T) {
	c := New(DefaultConfig())
	c.BeginDrag(0, 0)
	c.UpdateDrag(200, 0)
	c.EndDrag()

	for i := 0; i < 200; i++ {
		c.Tick(frame, false)
		if c.Current().Yaw > c.Target().Yaw {
			t.Fatalf("tick %d: current yaw %v passed target %v", i, c.Current().Yaw, c.Target().Yaw)
		}
	}
}

func TestFacingFaceIdentity(t *testing.T) {
	face, ok := FacingFace(Orientation{}, 0.5)
	if !ok || face != cube.Front {
		t.Fatalf("identity orientation: got (%v, %v), want (front, true)", face, ok)
	}
	again, ok2 := FacingFace(Orientation{}, 0.5)
	if again != face || ok2 != ok {
		t.Error("FacingFace is not deterministic")
	}
}

func TestFacingFaceEachFace(t *testing.T) {
	half := float32(gomath.Pi / 2)
	tests := []struct {
		o    Orientation
		want cube.FaceID
	}{
		{Orientation{}, cube.Front},
		{Orientation{Yaw: float32(gomath.Pi)}, cube.Back},
		{Orientation{Yaw: -half}, cube.Right},
		{Orientation{Yaw: half}, cube.Left},
		{Orientation{Pitch: half}, cube.Top},
		{Orientation{Pitch: -half}, cube.Bottom},
		{Orientation{Yaw: 2 * float32(gomath.Pi)}, cube.Front},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			face, ok := FacingFace(tt.o, 0.6)
			if !ok || face != tt.want {
				t.Errorf("FacingFace(%+v) = (%v, %v), want %v", tt.o, face, ok, tt.want)
			}
		})
	}
}

func TestFacingFaceThresholdBoundaries(t *testing.T) {
	yaw45 := Orientation{Yaw: deg(45)}
	corner := Orientation{Yaw: deg(45), Pitch: float32(gomath.Asin(1 / gomath.Sqrt(3)))}

	tests := []struct {
		name      string
		o         Orientation
		threshold float32
		wantOK    bool
	}{
		{"yaw 45 at 0.5", yaw45, 0.5, true},
		{"yaw 45 at 0.6", yaw45, 0.6, true},
		{"yaw 45 above cos45", yaw45, 0.75, false},
		{"yaw 30 at 0.75", Orientation{Yaw: deg(30)}, 0.75, true},
		{"corner at 0.6", corner, 0.6, false},
		{"corner at 0.5", corner, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FacingFace(tt.o, tt.threshold)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v (dots %v)", ok, tt.wantOK, FaceDots(tt.o))
			}
		})
	}
}

func TestFacingFaceRequiresStrictlyGreater(t *testing.T) {
	o := Orientation{Yaw: deg(20), Pitch: deg(-10)}
	dots := FaceDots(o)
	best := dots[0]
	for _, d := range dots[1:] {
		if d > best {
			best = d
		}
	}
	if _, ok := FacingFace(o, best); ok {
		t.Error("a dot equal to the threshold must not count as facing")
	}
	if _, ok := FacingFace(o, best-1e-4); !ok {
		t.Error("a dot just above the threshold must count as facing")
	}
}

func TestPointerClickVersusDrag(t *testing.T) {
	c := New(DefaultConfig())

	c.PointerDown(50, 50)
	if !c.PointerUp() {
		t.Error("press without movement should be a click")
	}

	c.PointerDown(50, 50)
	c.PointerMove(51, 50)
	if c.PointerUp() {
		t.Error("press with movement should not be a click")
	}

	c.PointerDown(50, 50)
	c.PointerMove(60, 60)
	c.PointerMove(50, 50)
	if c.PointerUp() {
		t.Error("returning to the start point must not turn a drag back into a click")
	}

	c.PointerDown(50, 50)
	c.PointerCancel()
	if c.PointerUp() {
		t.Error("cancelled press should not be a click")
	}
}

func TestPointerClickSlop(t *testing.T) {
	c := New(CompactConfig())

	c.PointerDown(50, 50)
	c.PointerMove(53, 50)
	if !c.PointerUp() {
		t.Error("travel within slop should still be a click")
	}

	c.PointerDown(50, 50)
	c.PointerMove(55, 50)
	if c.PointerUp() {
		t.Error("travel beyond slop should be a drag")
	}
}

func TestSnapToReachesPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = 0
	c := New(cfg)

	// Leave some yaw and momentum behind first.
	c.PointerDown(0, 0)
	c.PointerMove(120, 40)
	c.PointerUp()
	c.Tick(frame, false)

	if !c.SnapTo(cube.Top) {
		t.Fatal("SnapTo(top) returned false")
	}
	if c.Velocity() != (Velocity{}) {
		t.Errorf("velocity not zeroed: %+v", c.Velocity())
	}

	want := Orientation{Pitch: MaxPitch, Yaw: 0}
	frames := int(cfg.SnapDuration.Seconds()*60) + 2
	for i := 0; i < frames; i++ {
		c.Tick(frame, false)
	}
	if c.Snapping() {
		t.Fatal("snap still in flight after its duration")
	}
	if c.Target() != want {
		t.Fatalf("target = %+v, want %+v", c.Target(), want)
	}

	// The remaining gap shrinks by (1-smoothing) per tick; from at most pi/2,
	// 120 ticks at 0.08 bring it under 1e-3.
	for i := 0; i < 120; i++ {
		c.Tick(frame, false)
	}
	cur := c.Current()
	if abs(cur.Pitch-want.Pitch) > 1e-3 || abs(cur.Yaw-want.Yaw) > 1e-3 {
		t.Errorf("current = %+v, want within 1e-3 of %+v", cur, want)
	}
	if face, ok := c.FacingFace(cur); !ok || face != cube.Top {
		t.Errorf("facing = (%v, %v), want top", face, ok)
	}
}

func TestSnapToBottom(t *testing.T) {
	c := New(DefaultConfig())
	if !c.SnapTo(cube.Bottom) {
		t.Fatal("SnapTo(bottom) returned false")
	}
	for i := 0; i < 200; i++ {
		c.Tick(frame, false)
	}
	if face, ok := c.FacingFace(c.Current()); !ok || face != cube.Bottom {
		t.Errorf("facing = (%v, %v), want bottom", face, ok)
	}
}

func TestSnapToEveryFace(t *testing.T) {
	for _, face := range cube.Faces {
		t.Run(face.ID.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AutoRotate = 0
			c := New(cfg)
			// Start from an off-axis orientation with a few turns of yaw.
			c.PointerDown(0, 0)
			c.PointerMove(700, 60)
			c.PointerUp()
			c.Tick(frame, false)

			if !c.SnapTo(face.ID) {
				t.Fatalf("SnapTo(%v) returned false", face.ID)
			}
			for i := 0; i < 250; i++ {
				c.Tick(frame, false)
			}
			if got, ok := c.FacingFace(c.Current()); !ok || got != face.ID {
				t.Errorf("facing = (%v, %v), want %v", got, ok, face.ID)
			}
		})
	}
}

func TestSnapToWithoutPreset(t *testing.T) {
	cfg := DefaultConfig()
	delete(cfg.Presets, cube.Front)
	c := New(cfg)
	if c.SnapTo(cube.Front) {
		t.Error("SnapTo(front) should fail without a preset")
	}
	if c.Snapping() {
		t.Error("no snap should be in flight")
	}
}

func TestSnapSuppressesIdleMotion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = 0.5
	c := New(cfg)
	c.SnapTo(cube.Top)

	for i := 0; i < 30; i++ {
		c.Tick(frame, false)
		if y := c.Target().Yaw; y != 0 {
			t.Fatalf("tick %d: target yaw %v drifted during snap", i, y)
		}
	}
}

func TestSnapKeepsNearestTurn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = 0
	cfg.SnapDuration = 0
	c := New(cfg)

	c.BeginDrag(0, 0)
	c.UpdateDrag(2600, 0) // yaw 13 rad, about two turns
	c.EndDrag()
	c.velocity = Velocity{}

	c.SnapTo(cube.Bottom)
	c.Tick(frame, false)

	want := float32(4 * gomath.Pi)
	if got := c.Target().Yaw; abs(got-want) > 1e-4 {
		t.Errorf("snap yaw = %v, want %v", got, want)
	}
}

func TestBeginDragCancelsSnap(t *testing.T) {
	c := New(DefaultConfig())
	c.SnapTo(cube.Top)
	c.Tick(frame, false)

	c.BeginDrag(0, 0)
	if c.Snapping() {
		t.Error("drag should cancel the snap")
	}
}

func TestClickDuringSnapKeepsSnapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = 0
	cfg.ClickSlop = 4
	c := New(cfg)
	c.SnapTo(cube.Top)
	c.Tick(frame, false)

	c.PointerDown(100, 100)
	c.PointerMove(102, 101)
	if !c.Snapping() {
		t.Fatal("press within the slop cancelled the snap")
	}
	if !c.PointerUp() {
		t.Error("press within the slop should be a click")
	}
	if c.Velocity() != (Velocity{}) {
		t.Errorf("click during snap left momentum %+v", c.Velocity())
	}

	for i := 0; i < 70; i++ {
		c.Tick(frame, false)
	}
	if c.Snapping() {
		t.Fatal("snap still in flight after its duration")
	}
	if want := (Orientation{Pitch: MaxPitch}); c.Target() != want {
		t.Errorf("target = %+v, want %+v", c.Target(), want)
	}
}

func TestDragDuringSnapCancelsIt(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoRotate = 0
	cfg.ClickSlop = 4
	c := New(cfg)
	c.SnapTo(cube.Top)
	for i := 0; i < 10; i++ {
		c.Tick(frame, false)
	}
	before := c.Target()

	c.PointerDown(100, 100)
	if !c.Snapping() {
		t.Fatal("press alone cancelled the snap")
	}
	c.PointerMove(110, 100)
	if c.Snapping() {
		t.Fatal("drag beyond the slop should cancel the snap")
	}
	if c.PointerUp() {
		t.Error("travel beyond slop should be a drag")
	}
	want := before.Yaw + 10*cfg.Sensitivity
	if got := c.Target().Yaw; abs(got-want) > 1e-6 {
		t.Errorf("target yaw = %v, want %v", got, want)
	}
}

func TestTimeScaledZeroDt(t *testing.T) {
	c := New(CompactConfig())
	c.PointerDown(0, 0)
	c.PointerMove(50, 0)
	c.PointerUp()

	target, current, vel := c.Target(), c.Current(), c.Velocity()
	c.Tick(0, false)
	if c.Target() != target || c.Current() != current || c.Velocity() != vel {
		t.Error("time scaled tick with dt=0 changed state")
	}
}

func TestTimeScaledMatchesPerFrameAtReferenceRate(t *testing.T) {
	perFrame := DefaultConfig()
	scaled := DefaultConfig()
	scaled.TimeScaled = true

	a, b := New(perFrame), New(scaled)
	for _, c := range []*Controller{a, b} {
		c.PointerDown(0, 0)
		c.PointerMove(30, -20)
		c.PointerUp()
	}
	for i := 0; i < 90; i++ {
		a.Tick(frame, false)
		b.Tick(frame, false)
	}
	ca, cb := a.Current(), b.Current()
	if abs(ca.Yaw-cb.Yaw) > 1e-4 || abs(ca.Pitch-cb.Pitch) > 1e-4 {
		t.Errorf("per-frame %+v and time scaled %+v diverged", ca, cb)
	}
}

func TestReset(t *testing.T) {
	c := New(DefaultConfig())
	c.PointerDown(0, 0)
	c.PointerMove(80, 80)
	c.SnapTo(cube.Top)
	c.Tick(frame, false)

	c.Reset()
	if c.Current() != (Orientation{}) || c.Target() != (Orientation{}) ||
		c.Velocity() != (Velocity{}) || c.Dragging() || c.Snapping() {
		t.Error("Reset did not restore the resting identity state")
	}
}

func TestProfileConfig(t *testing.T) {
	show, err := ProfileConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if show.FacingThreshold != 0.5 || show.Damping != 0.95 || show.TimeScaled {
		t.Errorf("unexpected showcase tuning %+v", show)
	}
	if show.SnapDuration != time.Second {
		t.Errorf("snap duration = %v, want 1s", show.SnapDuration)
	}

	compact, err := ProfileConfig(ProfileCompact)
	if err != nil {
		t.Fatal(err)
	}
	if compact.FacingThreshold != 0.6 || compact.Damping != 0.92 || !compact.TimeScaled {
		t.Errorf("unexpected compact tuning %+v", compact)
	}
	for _, cfg := range []Config{show, compact} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("built-in profile invalid: %v", err)
		}
	}

	if _, err := ProfileConfig("turbo"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sensitivity", func(c *Config) { c.Sensitivity = 0 }},
		{"damping one", func(c *Config) { c.Damping = 1 }},
		{"zero smoothing", func(c *Config) { c.Smoothing = 0 }},
		{"threshold one", func(c *Config) { c.FacingThreshold = 1 }},
		{"negative slop", func(c *Config) { c.ClickSlop = -1 }},
		{"steep preset", func(c *Config) { c.Presets[cube.Top] = Orientation{Pitch: 2} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
