package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	// Dark glass theme around the #0a0a0f background and indigo accent.
	ColorBackdrop     = RGB(0x0a, 0x0a, 0x0f)
	ColorPanelBg      = RGBA(0x12, 0x12, 0x1a, 0xf0)
	ColorPanelBorder  = RGBA(0x63, 0x66, 0xf1, 0x66)
	ColorButtonNormal = RGBA(0x1a, 0x1a, 0x26, 0xe6)
	ColorButtonHover  = RGBA(0x2a, 0x2a, 0x40, 0xf0)
	ColorButtonActive = RGB(0x63, 0x66, 0xf1)
	ColorText         = RGB(0xe5, 0xe7, 0xeb)
	ColorTextDim      = RGB(0x9c, 0xa3, 0xaf)
	ColorHighlight    = RGB(0x63, 0x66, 0xf1)
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 255)
}

// FromRGB creates an opaque color from float components.
func FromRGB(c [3]float32) Color {
	return Color{c[0], c[1], c[2], 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Fade scales the alpha by f.
func (c Color) Fade(f float32) Color {
	return Color{c.R, c.G, c.B, c.A * f}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}
