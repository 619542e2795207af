package content

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/venture-cube/pkg/math"
)

// Color is a "#rrggbb" hex color.
type Color string

// RGB parses the color into its channels.
func (c Color) RGB() (r, g, b uint8, err error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Valid reports whether the color parses.
func (c Color) Valid() bool {
	_, _, _, err := c.RGB()
	return err == nil
}

// Vec3 returns the color as linear 0..1 components. Invalid colors are white.
func (c Color) Vec3() math.Vec3 {
	r, g, b, err := c.RGB()
	if err != nil {
		return math.Vec3{X: 1, Y: 1, Z: 1}
	}
	return math.Vec3{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255}
}

// Hex builds a Color from a 0xrrggbb value.
func Hex(v uint32) Color {
	return Color(fmt.Sprintf("#%06x", v&0xffffff))
}
