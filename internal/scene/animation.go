package scene

import (
	gomath "math"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// AnimKind selects the motion an Animation applies.
type AnimKind int

const (
	// AnimSpin sets rotation[Axis] = t*Speed + Phase.
	AnimSpin AnimKind = iota
	// AnimOscillate sets position[Axis] = Base + sin(t*Freq + Phase)*Amp.
	AnimOscillate
	// AnimSway sets rotation[Axis] = sin(t*Freq + Phase)*Amp.
	AnimSway
	// AnimFlicker sets opacity = Base + sin(t*Freq + Phase)*Amp.
	AnimFlicker
	// AnimStretch sets scale[Axis] = 1 + sin(t*Freq + Phase)*Amp.
	AnimStretch
	// AnimPulse sets a uniform scale of 1 + sin(t*Freq + Phase)*Amp.
	AnimPulse
	// AnimOrbit moves the node on an ellipse in the plane of Axis and Axis2,
	// angle Phase + t*Speed, radii Radius.X and Radius.Y.
	AnimOrbit
	// AnimBreathe scales Origin by 1 + sin(t*Freq + Phase)*Amp and tumbles.
	AnimBreathe
	// AnimDrift moves by Velocity per second and wraps at +-Bound.
	AnimDrift
	// AnimRipple grows from 1 to 2 over each cycle of Speed while fading from
	// Base to 0.
	AnimRipple
)

// Animation is one decorative motion bound to a node.
type Animation struct {
	Node *Node
	Kind AnimKind

	Axis  int
	Axis2 int
	Speed float32
	Freq  float32
	Phase float32
	Amp   float32
	Base  float32

	Radius   math.Vec2
	Origin   math.Vec3
	Velocity math.Vec3
	Bound    float32
}

// Animate applies every animation for scene time t (seconds) and frame step
// dt. All kinds except AnimDrift depend on t only.
func Animate(anims []Animation, t, dt float32) {
	for i := range anims {
		a := &anims[i]
		n := a.Node
		switch a.Kind {
		case AnimSpin:
			setEuler(&n.Rotation, a.Axis, t*a.Speed+a.Phase)
		case AnimOscillate:
			setVec(&n.Position, a.Axis, a.Base+wave(t, a.Freq, a.Phase)*a.Amp)
		case AnimSway:
			setEuler(&n.Rotation, a.Axis, wave(t, a.Freq, a.Phase)*a.Amp)
		case AnimFlicker:
			if n.Material != nil {
				n.Material.Opacity = clamp01(a.Base + wave(t, a.Freq, a.Phase)*a.Amp)
			}
		case AnimStretch:
			setVec(&n.Scale, a.Axis, 1+wave(t, a.Freq, a.Phase)*a.Amp)
		case AnimPulse:
			n.Scale = math.Splat(1 + wave(t, a.Freq, a.Phase)*a.Amp)
		case AnimOrbit:
			angle := float64(a.Phase + t*a.Speed)
			setVec(&n.Position, a.Axis, float32(gomath.Cos(angle))*a.Radius.X)
			setVec(&n.Position, a.Axis2, float32(gomath.Sin(angle))*a.Radius.Y)
		case AnimBreathe:
			n.Position = a.Origin.Scale(1 + wave(t, a.Freq, a.Phase)*a.Amp)
			n.Rotation.X = t + a.Phase
			n.Rotation.Y = t*0.5 + a.Phase
		case AnimDrift:
			n.Position = n.Position.Add(a.Velocity.Scale(dt))
			for axis := 0; axis < 3; axis++ {
				if v := getVec(n.Position, axis); v > a.Bound || v < -a.Bound {
					setVec(&n.Position, axis, -v)
				}
			}
		case AnimRipple:
			cycle := t*a.Speed + a.Phase
			frac := cycle - float32(gomath.Floor(float64(cycle)))
			n.Scale = math.Splat(1 + frac)
			if n.Material != nil {
				n.Material.Opacity = a.Base * (1 - frac)
			}
		}
	}
}

func wave(t, freq, phase float32) float32 {
	return float32(gomath.Sin(float64(t*freq + phase)))
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func setEuler(e *math.Euler, axis int, v float32) {
	switch axis {
	case 0:
		e.X = v
	case 1:
		e.Y = v
	default:
		e.Z = v
	}
}

func setVec(p *math.Vec3, axis int, v float32) {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
}

func getVec(p math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
