package ui2d

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/venture-cube/internal/engine/glyph"
)

// Font is the glyph atlas uploaded as a single-channel texture.
type Font struct {
	atlas   *glyph.Atlas
	texture uint32
}

// NewFont rasterizes the atlas and uploads it.
func NewFont() *Font {
	f := &Font{atlas: glyph.NewAtlas()}
	img := f.atlas.Image
	b := img.Bounds()

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return f
}

// TextureID returns the GL texture.
func (f *Font) TextureID() uint32 { return f.texture }

// GlyphSize returns the unscaled glyph cell size in pixels.
func (f *Font) GlyphSize() (int, int) { return f.atlas.GlyphW, f.atlas.GlyphH }

// GetGlyphUV returns texture coordinates for a rune.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) { return f.atlas.UV(r) }

// MeasureText returns the pixel size of already transliterated text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	cols, lines := glyph.Measure(text)
	return float32(cols*f.atlas.GlyphW) * scale, float32(lines*f.atlas.GlyphH) * scale
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
