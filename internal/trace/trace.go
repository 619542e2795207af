// Package trace drives a rotation controller without a window and records
// what it does frame by frame.
package trace

import (
	gomath "math"

	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/rotation"
)

// Sample is the controller state after one frame.
type Sample struct {
	Frame  int
	Pitch  float32
	Yaw    float32
	Face   cube.FaceID
	Facing bool
}

// Drag is a scripted straight-line drag: the pointer moves by (DX, DY)
// pixels every frame for Frames frames.
type Drag struct {
	Frames int
	DX, DY float32
}

// Simulate runs the drag followed by idle frames at a fixed step and returns
// one sample per frame.
func Simulate(c *rotation.Controller, drag Drag, idle int, dt float32) []Sample {
	samples := make([]Sample, 0, drag.Frames+idle)
	record := func(o rotation.Orientation) {
		face, ok := c.FacingFace(o)
		samples = append(samples, Sample{
			Frame:  len(samples),
			Pitch:  o.Pitch,
			Yaw:    o.Yaw,
			Face:   face,
			Facing: ok,
		})
	}

	var x, y float32
	if drag.Frames > 0 {
		c.PointerDown(x, y)
		for range drag.Frames {
			x += drag.DX
			y += drag.DY
			c.PointerMove(x, y)
			record(c.Tick(dt, true))
		}
		c.PointerUp()
	}
	for range idle {
		record(c.Tick(dt, false))
	}
	return samples
}

// Transitions returns the samples at which the facing result changes,
// starting with the first sample.
func Transitions(samples []Sample) []Sample {
	var out []Sample
	for i, s := range samples {
		if i == 0 {
			out = append(out, s)
			continue
		}
		prev := samples[i-1]
		if s.Facing != prev.Facing || (s.Facing && s.Face != prev.Face) {
			out = append(out, s)
		}
	}
	return out
}

// Series splits samples into pitch and yaw series in degrees.
func Series(samples []Sample) (pitch, yaw []float64) {
	pitch = make([]float64, len(samples))
	yaw = make([]float64, len(samples))
	for i, s := range samples {
		pitch[i] = Degrees(s.Pitch)
		yaw[i] = Degrees(s.Yaw)
	}
	return pitch, yaw
}

// SnapResult reports how a snap settled.
type SnapResult struct {
	Goal rotation.Orientation
	// Frame is the first frame at which the current orientation was within
	// the tolerance of Goal.
	Frame   int
	Settled bool
	Samples []Sample
}

// Snap starts a snap to face and ticks until the current orientation is
// within eps radians of the preset on both axes, or maxFrames pass.
func Snap(c *rotation.Controller, face cube.FaceID, dt, eps float32, maxFrames int) (SnapResult, bool) {
	preset, ok := c.Config().Presets[face]
	if !ok {
		return SnapResult{}, false
	}
	goal := rotation.Orientation{
		Pitch: preset.Pitch,
		Yaw:   nearestTurn(c.Target().Yaw, preset.Yaw),
	}
	c.SnapTo(face)

	res := SnapResult{Goal: goal}
	for i := range maxFrames {
		o := c.Tick(dt, false)
		f, facing := c.FacingFace(o)
		res.Samples = append(res.Samples, Sample{Frame: i, Pitch: o.Pitch, Yaw: o.Yaw, Face: f, Facing: facing})
		if abs(o.Pitch-goal.Pitch) < eps && abs(o.Yaw-goal.Yaw) < eps {
			res.Frame = i
			res.Settled = true
			break
		}
	}
	return res, true
}

// Degrees converts radians to degrees.
func Degrees(rad float32) float64 {
	return float64(rad) * 180 / gomath.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float32 {
	return float32(deg * gomath.Pi / 180)
}

func nearestTurn(yaw, base float32) float32 {
	const turn = 2 * gomath.Pi
	n := gomath.Round(float64(yaw-base) / turn)
	return base + float32(n*turn)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
