// Package glyph rasterizes the UI bitmap font and lays out monospaced text.
package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout. Cells are one pixel larger than glyphs so nearest sampling
// never bleeds into a neighbour.
const (
	columns = 16
	padding = 1
)

// Atlas is a single-channel texture holding every supported glyph.
type Atlas struct {
	Image  *image.Alpha
	GlyphW int
	GlyphH int
	cells  map[rune]image.Point
}

// Supported reports whether r has a glyph in the atlas: printable ASCII and
// the Latin-1 supplement.
func Supported(r rune) bool {
	return (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff)
}

func supportedRunes() []rune {
	runes := make([]rune, 0, 191)
	for r := rune(0x20); r <= 0xff; r++ {
		if Supported(r) {
			runes = append(runes, r)
		}
	}
	return runes
}

// NewAtlas rasterizes basicfont's 7x13 face into an atlas.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	gw, gh := face.Advance, face.Height
	cw, ch := gw+padding, gh+padding

	runes := supportedRunes()
	rows := (len(runes) + columns - 1) / columns
	img := image.NewAlpha(image.Rect(0, 0, columns*cw, rows*ch))

	a := &Atlas{Image: img, GlyphW: gw, GlyphH: gh, cells: make(map[rune]image.Point, len(runes))}
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for i, r := range runes {
		origin := image.Pt((i%columns)*cw, (i/columns)*ch)
		d.Dot = fixed.P(origin.X, origin.Y+face.Ascent)
		d.DrawString(string(r))
		a.cells[r] = origin
	}
	return a
}

// UV returns normalized texture coordinates for r. Unsupported runes map to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	p, ok := a.cells[r]
	if !ok {
		p = a.cells['?']
	}
	w := float32(a.Image.Bounds().Dx())
	h := float32(a.Image.Bounds().Dy())
	return float32(p.X) / w, float32(p.Y) / h,
		float32(p.X+a.GlyphW) / w, float32(p.Y+a.GlyphH) / h
}
