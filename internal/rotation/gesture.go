package rotation

// Gesture classifies one pointer press as a click or a drag. Any travel
// beyond the slop turns the press into a drag for the rest of the gesture.
type Gesture struct {
	Slop float32

	active         bool
	moved          bool
	startX, startY float32
}

// Down starts a gesture at the pointer position.
func (g *Gesture) Down(x, y float32) {
	g.active = true
	g.moved = false
	g.startX, g.startY = x, y
}

// Move records pointer travel and reports whether the gesture is now a drag.
func (g *Gesture) Move(x, y float32) bool {
	if !g.active || g.moved {
		return g.moved
	}
	dx, dy := x-g.startX, y-g.startY
	if dx*dx+dy*dy > g.Slop*g.Slop {
		g.moved = true
	}
	return g.moved
}

// Up ends the gesture and reports whether it was a click.
func (g *Gesture) Up() bool {
	click := g.active && !g.moved
	g.active = false
	g.moved = false
	return click
}

// Cancel ends the gesture without a click.
func (g *Gesture) Cancel() {
	g.active = false
	g.moved = false
}

// Active reports whether a press is in progress.
func (g *Gesture) Active() bool {
	return g.active
}
