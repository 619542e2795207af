package scene

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/venture-cube/pkg/math"
)

func TestAnimateKinds(t *testing.T) {
	half := float32(gomath.Pi / 2)

	spin := NewNode("spin")
	osc := NewNode("osc")
	sway := NewNode("sway")
	flick := NewMesh("flick", nil, Basic(math.Splat(1), 1))
	stretch := NewNode("stretch")
	pulse := NewNode("pulse")
	orbit := NewNode("orbit")
	breathe := NewNode("breathe")
	ripple := NewMesh("ripple", nil, Basic(math.Splat(1), 1))

	anims := []Animation{
		{Node: spin, Kind: AnimSpin, Axis: 2, Speed: 10},
		{Node: osc, Kind: AnimOscillate, Axis: 1, Freq: 1, Base: 0.15, Amp: 0.05},
		{Node: sway, Kind: AnimSway, Axis: 2, Freq: 1, Amp: 0.1},
		{Node: flick, Kind: AnimFlicker, Freq: 1, Base: 0.2, Amp: 0.2},
		{Node: stretch, Kind: AnimStretch, Axis: 1, Freq: 1, Amp: 0.2},
		{Node: pulse, Kind: AnimPulse, Freq: 1, Amp: 0.2},
		{Node: orbit, Kind: AnimOrbit, Axis: 0, Axis2: 2, Speed: 1, Radius: math.Vec2{X: 0.4, Y: 0.4}},
		{Node: breathe, Kind: AnimBreathe, Origin: math.Vec3{X: 0.5}, Freq: 1, Amp: 0.1},
		{Node: ripple, Kind: AnimRipple, Speed: 0.25, Base: 0.3},
	}

	// At t = pi/2 every sine term is 1.
	Animate(anims, half, 0)

	check := func(name string, got, want float32) {
		t.Helper()
		if abs(got-want) > 1e-5 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	check("spin z", spin.Rotation.Z, 10*half)
	check("osc y", osc.Position.Y, 0.2)
	check("sway z", sway.Rotation.Z, 0.1)
	check("flicker opacity", flick.Material.Opacity, 0.4)
	check("stretch y", stretch.Scale.Y, 1.2)
	check("stretch x untouched", stretch.Scale.X, 1)
	check("pulse", pulse.Scale.Z, 1.2)
	check("orbit x", orbit.Position.X, 0)
	check("orbit z", orbit.Position.Z, 0.4)
	check("breathe x", breathe.Position.X, 0.55)
	check("breathe rot", breathe.Rotation.X, half)
	// cycle = 0.25*pi/2 ~ 0.3927
	frac := float32(0.25 * gomath.Pi / 2)
	check("ripple scale", ripple.Scale.X, 1+frac)
	check("ripple opacity", ripple.Material.Opacity, 0.3*(1-frac))
}

func TestAnimateFlickerClamps(t *testing.T) {
	n := NewMesh("n", nil, Basic(math.Splat(1), 1))
	Animate([]Animation{{Node: n, Kind: AnimFlicker, Freq: 1, Base: 0.3, Amp: 0.3}}, -gomath.Pi/2, 0)
	if n.Material.Opacity != 0 {
		t.Errorf("opacity = %v, want 0", n.Material.Opacity)
	}
}

func TestAnimateDriftWraps(t *testing.T) {
	n := NewNode("bit").At(0.595, 0, 0)
	a := []Animation{{Node: n, Kind: AnimDrift, Velocity: math.Vec3{X: 0.6}, Bound: 0.6}}

	Animate(a, 0, 1.0/60)
	if abs(n.Position.X+0.605) > 1e-5 {
		t.Errorf("x = %v, want wrapped to -0.605", n.Position.X)
	}
	Animate(a, 0, 1.0/60)
	if abs(n.Position.X+0.595) > 1e-5 {
		t.Errorf("x = %v, want -0.595", n.Position.X)
	}
}
