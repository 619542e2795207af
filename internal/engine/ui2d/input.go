package ui2d

// InputState holds the current input state for the UI.
type InputState struct {
	// Pointer state
	MouseX      float32
	MouseY      float32
	MouseDeltaX float32
	MouseDeltaY float32

	MouseLeftDown bool

	// Edges derived in Update
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked is set from a press event so quick taps that go down
	// and up within one frame still register. Widgets consume it.
	MouseLeftClicked bool

	// Keys pressed this frame
	KeyEscapePressed bool

	prevMouseLeft bool
	prevMouseX    float32
	prevMouseY    float32
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after updating raw input values.
func (i *InputState) Update() {
	i.MouseDeltaX = i.MouseX - i.prevMouseX
	i.MouseDeltaY = i.MouseY - i.prevMouseY

	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft

	i.prevMouseLeft = i.MouseLeftDown
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
}

// EndFrame clears per-frame input state.
// Call this at the end of each frame.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
	i.KeyEscapePressed = false
}

// IsMouseInRect checks if the mouse is within a rectangle.
func (i *InputState) IsMouseInRect(x, y, w, h float32) bool {
	return Rect{x, y, w, h}.Contains(i.MouseX, i.MouseY)
}
