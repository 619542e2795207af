// Package rotation implements the cube's rotation state machine: pointer
// drags set a target orientation, released drags coast on decaying momentum,
// an idle cube slowly spins about Y, and the visible orientation eases toward
// the target every tick. It also reports which face looks at the camera.
package rotation

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/tween"
	"github.com/Faultbox/venture-cube/internal/logger"
	"github.com/Faultbox/venture-cube/pkg/math"
)

// MaxPitch bounds the pitch angle on both sides.
const MaxPitch = float32(gomath.Pi / 2)

const fullTurn = 2 * gomath.Pi

// ViewDirection is the direction from the cube toward the camera.
var ViewDirection = math.Vec3{X: 0, Y: 0, Z: 1}

// Orientation is a pitch (about X) and yaw (about Y) pair in radians.
type Orientation struct {
	Pitch float32
	Yaw   float32
}

// Euler returns the XYZ Euler rotation for the orientation.
func (o Orientation) Euler() math.Euler {
	return math.Euler{X: o.Pitch, Y: o.Yaw}
}

// Velocity is the residual angular momentum in radians per tick.
type Velocity struct {
	Pitch float32
	Yaw   float32
}

func (v Velocity) magnitude() float32 {
	return float32(gomath.Hypot(float64(v.Pitch), float64(v.Yaw)))
}

type dragSession struct {
	active       bool
	lastX, lastY float32
	travel       float32
}

// Controller owns all rotation state. It is not safe for concurrent use; the
// frame loop drives it from one goroutine.
type Controller struct {
	cfg Config

	current  Orientation
	target   Orientation
	velocity Velocity

	drag    dragSession
	gesture Gesture

	snap     *tween.Vec2
	snapFace cube.FaceID

	log *zap.Logger
}

// New creates a controller at the identity orientation.
func New(cfg Config) *Controller {
	if cfg.Presets == nil {
		cfg.Presets = map[cube.FaceID]Orientation{}
	}
	if cfg.ReferenceFPS <= 0 {
		cfg.ReferenceFPS = 60
	}
	return &Controller{
		cfg:     cfg,
		gesture: Gesture{Slop: cfg.ClickSlop},
		log:     logger.Named("rotation"),
	}
}

// Config returns the controller tuning.
func (c *Controller) Config() Config { return c.cfg }

// Current returns the orientation applied to the rendered cube.
func (c *Controller) Current() Orientation { return c.current }

// Target returns the orientation the cube is easing toward.
func (c *Controller) Target() Orientation { return c.target }

// Velocity returns the residual drag momentum.
func (c *Controller) Velocity() Velocity { return c.velocity }

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.drag.active }

// Snapping reports whether a snap transition is in flight.
func (c *Controller) Snapping() bool { return c.snap != nil }

// DragTravel returns the pointer distance covered by the current or last drag.
func (c *Controller) DragTravel() float32 { return c.drag.travel }

// Reset returns the controller to the identity orientation at rest.
func (c *Controller) Reset() {
	c.current = Orientation{}
	c.target = Orientation{}
	c.velocity = Velocity{}
	c.drag = dragSession{}
	c.gesture.Cancel()
	c.snap = nil
}

// BeginDrag starts a drag session at the pointer position. Any snap in
// flight is abandoned where it is.
func (c *Controller) BeginDrag(x, y float32) {
	c.cancelSnap()
	c.drag = dragSession{active: true, lastX: x, lastY: y}
}

func (c *Controller) cancelSnap() {
	if c.snap != nil {
		c.log.Debug("snap cancelled by drag", zap.Stringer("face", c.snapFace))
		c.snap = nil
	}
}

// UpdateDrag rotates the target by the pointer delta since the last update.
// Horizontal travel turns yaw, vertical travel turns pitch. Without an active
// session it does nothing.
func (c *Controller) UpdateDrag(x, y float32) {
	if !c.drag.active {
		return
	}
	dx := x - c.drag.lastX
	dy := y - c.drag.lastY

	c.velocity = Velocity{
		Pitch: dy * c.cfg.Sensitivity,
		Yaw:   dx * c.cfg.Sensitivity,
	}
	c.target.Yaw += c.velocity.Yaw
	c.target.Pitch = clampPitch(c.target.Pitch + c.velocity.Pitch)

	c.drag.travel += float32(gomath.Hypot(float64(dx), float64(dy)))
	c.drag.lastX, c.drag.lastY = x, y
}

// EndDrag closes the session. The last drag delta keeps acting as momentum.
func (c *Controller) EndDrag() {
	c.drag.active = false
}

// PointerDown starts both a gesture and a drag. A snap in flight keeps
// running until the press turns into a drag, so a click does not stop it.
func (c *Controller) PointerDown(x, y float32) {
	c.gesture.Down(x, y)
	c.drag = dragSession{active: true, lastX: x, lastY: y}
}

// PointerMove feeds pointer travel to the gesture and the drag. While a snap
// runs, travel within the click slop does not rotate the cube.
func (c *Controller) PointerMove(x, y float32) {
	wasDrag := c.gesture.moved
	if c.gesture.Move(x, y) && !wasDrag {
		c.log.Debug("gesture became drag", zap.Float32("x", x), zap.Float32("y", y))
		c.cancelSnap()
	}
	if c.snap != nil {
		return
	}
	c.UpdateDrag(x, y)
}

// PointerUp ends the drag and reports whether the press was a click.
func (c *Controller) PointerUp() bool {
	c.EndDrag()
	return c.gesture.Up()
}

// PointerCancel ends the drag without producing a click, e.g. when the
// pointer leaves the window or the touch is cancelled.
func (c *Controller) PointerCancel() {
	c.EndDrag()
	c.gesture.Cancel()
}

// Tick advances the controller by one frame and returns the new current
// orientation. While idle the target spins and coasts on the decaying
// velocity; while a snap runs the snap alone drives the target.
func (c *Controller) Tick(dt float32, dragging bool) Orientation {
	k := float32(1)
	if c.cfg.TimeScaled {
		k = dt * c.cfg.ReferenceFPS
	}

	switch {
	case c.snap != nil:
		v, done := c.snap.Step(dt)
		c.target = Orientation{Pitch: clampPitch(v.X), Yaw: v.Y}
		if done {
			c.log.Debug("snap finished", zap.Stringer("face", c.snapFace))
			c.snap = nil
		}
	case !dragging:
		damping := c.cfg.Damping
		if c.cfg.TimeScaled {
			damping = pow(damping, k)
		}
		c.target.Yaw += c.cfg.AutoRotate * k
		c.velocity.Pitch *= damping
		c.velocity.Yaw *= damping
		c.target.Pitch = clampPitch(c.target.Pitch + c.velocity.Pitch*k)
		c.target.Yaw += c.velocity.Yaw * k
	}

	s := c.cfg.Smoothing
	if c.cfg.TimeScaled {
		s = 1 - pow(1-s, k)
	}
	c.current.Pitch += (c.target.Pitch - c.current.Pitch) * s
	c.current.Yaw += (c.target.Yaw - c.current.Yaw) * s

	return c.current
}

// SnapTo starts an eased transition of the target to the face's preset and
// drops any momentum. The preset yaw is taken at the full turn nearest the
// current target so the cube never unwinds. It returns false when the face
// has no preset.
func (c *Controller) SnapTo(face cube.FaceID) bool {
	preset, ok := c.cfg.Presets[face]
	if !ok {
		return false
	}
	to := Orientation{
		Pitch: clampPitch(preset.Pitch),
		Yaw:   nearestTurn(c.target.Yaw, preset.Yaw),
	}

	c.velocity = Velocity{}
	c.drag.active = false
	c.snapFace = face
	c.snap = tween.NewVec2(
		math.Vec2{X: c.target.Pitch, Y: c.target.Yaw},
		math.Vec2{X: to.Pitch, Y: to.Yaw},
		float32(c.cfg.SnapDuration.Seconds()),
		c.cfg.SnapEase,
	)
	c.log.Debug("snap started",
		zap.Stringer("face", face),
		zap.Float32("pitch", to.Pitch),
		zap.Float32("yaw", to.Yaw))
	return true
}

// FacingFace reports the face pointing most directly at the camera for the
// orientation, using the controller's threshold.
func (c *Controller) FacingFace(o Orientation) (cube.FaceID, bool) {
	return FacingFace(o, c.cfg.FacingThreshold)
}

// FacingFace returns the face whose rotated normal has the largest dot
// product with the view direction, provided that dot exceeds threshold.
// Ties go to the lower FaceID.
func FacingFace(o Orientation, threshold float32) (cube.FaceID, bool) {
	dots := FaceDots(o)
	best := cube.Front
	for f := cube.Front + 1; f < cube.Count; f++ {
		if dots[f] > dots[best] {
			best = f
		}
	}
	if dots[best] > threshold {
		return best, true
	}
	return best, false
}

// FaceDots returns the dot product of every rotated face normal with the
// view direction, indexed by FaceID.
func FaceDots(o Orientation) [cube.Count]float32 {
	rot := o.Euler().Matrix()
	var dots [cube.Count]float32
	for _, face := range cube.Faces {
		n := rot.TransformDirection(face.Normal.Arr())
		dots[face.ID] = math.Vec3{X: n[0], Y: n[1], Z: n[2]}.Dot(ViewDirection)
	}
	return dots
}

func clampPitch(p float32) float32 {
	if p > MaxPitch {
		return MaxPitch
	}
	if p < -MaxPitch {
		return -MaxPitch
	}
	return p
}

// nearestTurn returns base shifted by whole turns to lie closest to yaw.
func nearestTurn(yaw, base float32) float32 {
	turns := gomath.Round(float64(yaw-base) / fullTurn)
	return base + float32(turns*fullTurn)
}

func pow(b, e float32) float32 {
	return float32(gomath.Pow(float64(b), float64(e)))
}
