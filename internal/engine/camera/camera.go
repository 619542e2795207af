// Package camera provides the perspective camera looking at the cube.
package camera

import (
	gomath "math"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// PerspectiveCamera is a fixed camera with a symmetric perspective frustum.
type PerspectiveCamera struct {
	FOV    float32 // vertical field of view, degrees
	Aspect float32
	Near   float32
	Far    float32

	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// NewPerspective creates a camera at (0, 0, distance) looking at the origin.
func NewPerspective(fov, near, far, distance float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FOV:      fov,
		Aspect:   1,
		Near:     near,
		Far:      far,
		Position: math.Vec3{X: 0, Y: 0, Z: distance},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// Resize recomputes the aspect ratio. Degenerate sizes are ignored.
func (c *PerspectiveCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the view matrix.
func (c *PerspectiveCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the projection matrix.
func (c *PerspectiveCamera) ProjectionMatrix() math.Mat4 {
	fovRad := float32(float64(c.FOV) * gomath.Pi / 180)
	return math.Perspective(fovRad, c.Aspect, c.Near, c.Far)
}

// ViewProj returns projection * view.
func (c *PerspectiveCamera) ViewProj() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// InverseViewProj returns the inverse of ViewProj, for unprojecting pointer
// positions.
func (c *PerspectiveCamera) InverseViewProj() math.Mat4 {
	return c.ViewProj().Inverse()
}
