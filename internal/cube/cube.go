// Package cube defines the six faces of the portfolio cube and their outward
// normals in the cube's local frame.
package cube

import (
	"fmt"
	"strings"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// FaceID identifies one cube face.
type FaceID int

const (
	Front FaceID = iota
	Back
	Right
	Left
	Top
	Bottom
)

// Count is the number of faces.
const Count = 6

var faceNames = [Count]string{"front", "back", "right", "left", "top", "bottom"}

// String returns the lowercase face name.
func (f FaceID) String() string {
	if !f.Valid() {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceNames[f]
}

// Valid reports whether f is one of the six faces.
func (f FaceID) Valid() bool {
	return f >= Front && f <= Bottom
}

// ParseFace parses a face name (case-insensitive).
func ParseFace(s string) (FaceID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range faceNames {
		if name == s {
			return FaceID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown face %q", s)
}

// MarshalText implements encoding.TextMarshaler so faces can key YAML maps.
func (f FaceID) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid face %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FaceID) UnmarshalText(text []byte) error {
	id, err := ParseFace(string(text))
	if err != nil {
		return err
	}
	*f = id
	return nil
}

// Descriptor is the fixed geometric record for a face.
type Descriptor struct {
	ID     FaceID
	Normal math.Vec3 // unit outward normal, cube-local
	// Rotation orients a +Z facing plane onto this face.
	Rotation math.Euler
}

const halfPi = 1.5707963267948966

// Faces lists the descriptors in FaceID order. It is never mutated.
var Faces = [Count]Descriptor{
	{ID: Front, Normal: math.Vec3{X: 0, Y: 0, Z: 1}},
	{ID: Back, Normal: math.Vec3{X: 0, Y: 0, Z: -1}, Rotation: math.Euler{Y: 2 * halfPi}},
	{ID: Right, Normal: math.Vec3{X: 1, Y: 0, Z: 0}, Rotation: math.Euler{Y: halfPi}},
	{ID: Left, Normal: math.Vec3{X: -1, Y: 0, Z: 0}, Rotation: math.Euler{Y: -halfPi}},
	{ID: Top, Normal: math.Vec3{X: 0, Y: 1, Z: 0}, Rotation: math.Euler{X: -halfPi}},
	{ID: Bottom, Normal: math.Vec3{X: 0, Y: -1, Z: 0}, Rotation: math.Euler{X: halfPi}},
}

// Descriptor returns the descriptor for f.
func (f FaceID) Descriptor() Descriptor {
	return Faces[f]
}
