package glyph

import (
	"reflect"
	"testing"
)

func TestAtlasRasterizesGlyphs(t *testing.T) {
	a := NewAtlas()
	if a.GlyphW != 7 || a.GlyphH != 13 {
		t.Fatalf("glyph size = %dx%d, want 7x13", a.GlyphW, a.GlyphH)
	}

	// 'A' must have ink inside its cell; ' ' must not.
	ink := func(r rune) int {
		p := a.cells[r]
		n := 0
		for y := p.Y; y < p.Y+a.GlyphH; y++ {
			for x := p.X; x < p.X+a.GlyphW; x++ {
				if a.Image.AlphaAt(x, y).A > 0 {
					n++
				}
			}
		}
		return n
	}
	if ink('A') == 0 {
		t.Error("glyph A is empty")
	}
	if ink(' ') != 0 {
		t.Error("space has ink")
	}
	if len(a.cells) != 95+96 {
		t.Errorf("atlas holds %d glyphs, want 191", len(a.cells))
	}
}

func TestAtlasUV(t *testing.T) {
	a := NewAtlas()
	u0, v0, u1, v1 := a.UV('A')
	if !(u0 >= 0 && u1 <= 1 && v0 >= 0 && v1 <= 1 && u1 > u0 && v1 > v0) {
		t.Errorf("UV(A) = %v %v %v %v out of range", u0, v0, u1, v1)
	}

	q0, qv0, q1, qv1 := a.UV('?')
	x0, xv0, x1, xv1 := a.UV('€')
	if q0 != x0 || qv0 != xv0 || q1 != x1 || qv1 != xv1 {
		t.Error("unsupported rune should map to '?'")
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"€105K", "EUR105K"},
		{"Aerospace Engineer → Founder", "Aerospace Engineer -> Founder"},
		{"you already are — WhatsApp", "you already are - WhatsApp"},
		{"Founder × 4", "Founder x 4"},
		{"café", "café"},
		{"日本", "??"},
		{"line\nbreak", "line\nbreak"},
	}
	for _, tt := range tests {
		if got := Transliterate(tt.in); got != tt.want {
			t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		in           string
		cols, lines int
	}{
		{"", 0, 0},
		{"hello", 5, 1},
		{"ab\nlonger", 6, 2},
		{"café", 4, 1},
	}
	for _, tt := range tests {
		cols, lines := Measure(tt.in)
		if cols != tt.cols || lines != tt.lines {
			t.Errorf("Measure(%q) = %d,%d want %d,%d", tt.in, cols, lines, tt.cols, tt.lines)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"breaks on spaces", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"exact width", "abcde fghij", 5, []string{"abcde", "fghij"}},
		{"long word", "abcdefghij xy", 4, []string{"abcd", "efgh", "ij", "xy"}},
		{"newlines kept", "a b\n\nc", 10, []string{"a b", "", "c"}},
		{"collapses spaces", "a    b", 10, []string{"a b"}},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
