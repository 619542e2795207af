// Package layout computes screen placement for the overlay widgets.
// Coordinates are window points with the origin at the top-left.
package layout

// Rect is a screen rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	Margin        = 24
	PanelWidth    = 420
	NarrowWidth   = 640 // below this the panel becomes a bottom sheet
	NavButtonW    = 96
	NavButtonH    = 32
	NavGap        = 8
	LabelHeight   = 72
	LabelFromBase = 48
)

// Panel returns the info panel rect: a right column on wide screens, a
// bottom sheet covering the lower 60% on narrow ones.
func Panel(screenW, screenH float32) Rect {
	if screenW < NarrowWidth {
		h := screenH * 0.6
		return Rect{X: 0, Y: screenH - h, W: screenW, H: h}
	}
	return Rect{
		X: screenW - PanelWidth - Margin,
		Y: Margin,
		W: PanelWidth,
		H: screenH - 2*Margin,
	}
}

// Label returns the face label area, centered along the bottom edge.
func Label(screenW, screenH float32) Rect {
	w := min(screenW-2*Margin, 600)
	return Rect{
		X: (screenW - w) / 2,
		Y: screenH - LabelFromBase - LabelHeight,
		W: w,
		H: LabelHeight,
	}
}

// NavButtons returns the About and Contact buttons in the top-left corner.
func NavButtons(screenW, screenH float32) [2]Rect {
	first := Rect{X: Margin, Y: Margin, W: NavButtonW, H: NavButtonH}
	second := first
	second.X += NavButtonW + NavGap
	return [2]Rect{first, second}
}

// LoaderAlpha returns the loader overlay opacity: fully opaque for hold,
// then a linear fade to zero over fade.
func LoaderAlpha(elapsed, hold, fade float32) float32 {
	switch {
	case elapsed < hold:
		return 1
	case fade <= 0 || elapsed >= hold+fade:
		return 0
	default:
		return 1 - (elapsed-hold)/fade
	}
}

// Columns splits width into n equal columns of at least minW, returning the
// column width and how many fit per row.
func Columns(width, minW float32, n int) (float32, int) {
	if n <= 0 || width <= 0 {
		return 0, 0
	}
	perRow := n
	for perRow > 1 && width/float32(perRow) < minW {
		perRow--
	}
	return width / float32(perRow), perRow
}
