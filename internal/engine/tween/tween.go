// Package tween provides one-shot eased transitions between two values,
// built on gween.
package tween

import (
	"fmt"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// Ease is a gween easing function: value at time t of a change c from b
// over duration d.
type Ease = ease.TweenFunc

// Named curves. The powerN names follow the usual animation-library
// convention: power1 is quadratic, power2 is cubic.
var (
	Linear      Ease = ease.Linear
	Power1InOut Ease = ease.InOutQuad
	Power2In    Ease = ease.InCubic
	Power2Out   Ease = ease.OutCubic
	Power2InOut Ease = ease.InOutCubic
)

var eases = map[string]Ease{
	"linear":       Linear,
	"none":         Linear,
	"power1.inout": Power1InOut,
	"power2.in":    Power2In,
	"power2.out":   Power2Out,
	"power2.inout": Power2InOut,
}

// ParseEase resolves an ease name such as "power2.inOut".
func ParseEase(name string) (Ease, error) {
	if e, ok := eases[strings.ToLower(name)]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("unknown ease %q", name)
}

// At evaluates an ease at normalized time t in [0,1].
func At(e Ease, t float32) float32 {
	return e(t, 0, 1, 1)
}

// Vec2 animates a 2D value from From to To over Duration seconds.
type Vec2 struct {
	From     math.Vec2
	To       math.Vec2
	Duration float32

	x, y    *gween.Tween
	elapsed float32
}

// NewVec2 creates a transition. A nil ease means Linear.
func NewVec2(from, to math.Vec2, duration float32, e Ease) *Vec2 {
	if e == nil {
		e = Linear
	}
	return &Vec2{
		From:     from,
		To:       to,
		Duration: duration,
		x:        gween.New(from.X, to.X, duration, e),
		y:        gween.New(from.Y, to.Y, duration, e),
	}
}

// Step advances the transition by dt seconds and returns the current value and
// whether the transition has finished. Once finished the value is exactly To.
func (tw *Vec2) Step(dt float32) (math.Vec2, bool) {
	tw.elapsed = min(tw.elapsed+dt, max(tw.Duration, 0))
	x, done := tw.x.Update(dt)
	y, _ := tw.y.Update(dt)
	if done {
		return tw.To, true
	}
	return math.Vec2{X: x, Y: y}, false
}

// Progress returns elapsed time as a fraction of the duration.
func (tw *Vec2) Progress() float32 {
	if tw.Duration <= 0 {
		return 1
	}
	return tw.elapsed / tw.Duration
}
