package ui2d

import (
	"fmt"

	"github.com/Faultbox/venture-cube/internal/engine/glyph"
)

// Text scales used by the widgets.
const (
	TitleScale = 2
	BodyScale  = 1
)

const titleBarH = float32(32)

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	input    *InputState

	// Active/hot widget tracking for interaction
	hotWidget    string
	activeWidget string

	windows       map[string]*WindowState
	currentWindow *WindowState

	// Rects drawn this frame that capture the pointer.
	blocked []Rect

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID   string
	X, Y float32
	W, H float32
	Open bool
}

// NewContext creates a new UI context.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	return &Context{
		renderer: r,
		input:    &InputState{},
		windows:  make(map[string]*WindowState),
	}, nil
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	c.renderer.Resize(width, height)
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.renderer.Begin()
	c.blocked = c.blocked[:0]
	c.hotWidget = ""
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
}

// Block marks a rect as capturing the pointer.
func (c *Context) Block(r Rect) {
	c.blocked = append(c.blocked, r)
}

// Captures reports whether a UI element of the last completed frame covers
// the point. Call it between End and the next Begin.
func (c *Context) Captures(x, y float32) bool {
	for _, r := range c.blocked {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// SetWindowOpen opens or closes a window by id.
func (c *Context) SetWindowOpen(id string, open bool) {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id}
		c.windows[id] = ws
	}
	ws.Open = open
}

// WindowOpen reports whether a window is open.
func (c *Context) WindowOpen(id string) bool {
	ws, ok := c.windows[id]
	return ok && ws.Open
}

// BeginWindow starts a window with a title bar and close button.
// Returns false if the window is closed, including when the close button
// was clicked this frame.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string, accent Color) bool {
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{ID: id, Open: true}
		c.windows[id] = ws
	}
	if !ws.Open {
		return false
	}
	ws.X, ws.Y, ws.W, ws.H = x, y, w, h
	c.Block(Rect{x, y, w, h})

	closeRect := Rect{x + w - titleBarH, y, titleBarH, titleBarH}
	if c.clicked(id+"_close", closeRect) {
		ws.Open = false
		return false
	}

	c.currentWindow = ws
	c.renderer.DrawPanel(x, y, w, h, ColorPanelBg, ColorPanelBorder)
	c.renderer.DrawRect(x+1, y+1, 4, h-2, accent)

	_, textH := c.renderer.MeasureText(title, TitleScale)
	c.renderer.DrawText(x+16, y+(titleBarH-textH)/2+6, title, TitleScale, accent)

	closeColor := ColorTextDim
	if closeRect.Contains(c.input.MouseX, c.input.MouseY) {
		closeColor = ColorText
	}
	cw, ch := c.renderer.MeasureText("x", TitleScale)
	c.renderer.DrawText(closeRect.X+(closeRect.W-cw)/2, closeRect.Y+(closeRect.H-ch)/2, "x", TitleScale, closeColor)

	c.cursorX = x + 16
	c.cursorY = y + titleBarH + 16
	c.rowH = 0
	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// contentWidth is the usable width inside the current window.
func (c *Context) contentWidth() float32 {
	return c.currentWindow.W - 32
}

// clicked runs press-to-click interaction for a rect and tracks hot/active
// state. It consumes the click so overlapping widgets fire once.
func (c *Context) clicked(id string, rect Rect) bool {
	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false
	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
			c.activeWidget = id
			clicked = true
			c.input.MouseLeftClicked = false
			c.input.MouseLeftPressed = false
		}
	}
	if c.activeWidget == id && !c.input.MouseLeftDown {
		c.activeWidget = ""
	}
	return clicked
}

// ButtonAt draws a free-standing button and returns true if clicked.
func (c *Context) ButtonAt(id string, rect Rect, label string, accent Color) bool {
	c.Block(rect)
	clicked := c.clicked(id, rect)

	bg := ColorButtonNormal
	if c.activeWidget == id {
		bg = accent.WithAlpha(0.6)
	} else if c.hotWidget == id {
		bg = ColorButtonHover
	}
	c.renderer.DrawRect(rect.X, rect.Y, rect.W, rect.H, bg)
	c.renderer.DrawRectOutline(rect.X, rect.Y, rect.W, rect.H, 1, accent.WithAlpha(0.6))

	textW, textH := c.renderer.MeasureText(label, BodyScale)
	c.renderer.DrawText(rect.X+(rect.W-textW)/2, rect.Y+(rect.H-textH)/2, label, BodyScale, ColorText)
	return clicked
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + 16
	c.cursorY += c.rowH
	c.rowH = height
}

// Label draws a single line of text and advances to the next line.
func (c *Context) Label(text string, scale float32, color Color) {
	if c.currentWindow == nil {
		return
	}
	c.renderer.DrawText(c.cursorX, c.cursorY, text, scale, color)
	c.cursorY += c.renderer.LineHeight(scale) + 4
}

// LabelWrapped draws text wrapped to the window width.
func (c *Context) LabelWrapped(text string, scale float32, color Color) {
	if c.currentWindow == nil {
		return
	}
	cols := int(c.contentWidth() / c.renderer.GlyphWidth(scale))
	for _, line := range glyph.Wrap(glyph.Transliterate(text), cols) {
		c.renderer.DrawText(c.cursorX, c.cursorY, line, scale, color)
		c.cursorY += c.renderer.LineHeight(scale) + 3
	}
	c.cursorY += 4
}

// Stat draws a large value over a small caption in a column of the given width.
// Stats laid out in one row share the same top; call Spacer after the row.
func (c *Context) Stat(value, caption string, width float32, accent Color) {
	if c.currentWindow == nil {
		return
	}
	c.renderer.DrawText(c.cursorX, c.cursorY, value, TitleScale, accent)
	c.renderer.DrawText(c.cursorX, c.cursorY+c.renderer.LineHeight(TitleScale)+2, caption, BodyScale, ColorTextDim)
	c.cursorX += width
}

// StatRowHeight is the vertical space taken by a row of Stat widgets.
func (c *Context) StatRowHeight() float32 {
	return c.renderer.LineHeight(TitleScale) + c.renderer.LineHeight(BodyScale) + 12
}

// Tags draws chips that flow onto new lines when the window is full.
func (c *Context) Tags(tags []string, accent Color) {
	if c.currentWindow == nil || len(tags) == 0 {
		return
	}
	left := c.currentWindow.X + 16
	right := left + c.contentWidth()
	lineH := c.renderer.LineHeight(BodyScale) + 8
	x, y := left, c.cursorY
	for _, tag := range tags {
		tw, th := c.renderer.MeasureText(tag, BodyScale)
		w := tw + 12
		if x+w > right && x > left {
			x = left
			y += lineH + 6
		}
		c.renderer.DrawRect(x, y, w, lineH, accent.WithAlpha(0.15))
		c.renderer.DrawRectOutline(x, y, w, lineH, 1, accent.WithAlpha(0.5))
		c.renderer.DrawText(x+6, y+(lineH-th)/2, tag, BodyScale, ColorText)
		x += w + 6
	}
	c.cursorX = left
	c.cursorY = y + lineH + 8
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	if c.currentWindow != nil {
		c.cursorX = c.currentWindow.X + 16
	}
	c.cursorY += height
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.currentWindow.X + 16
	c.renderer.DrawRect(x, c.cursorY, c.contentWidth(), 1, ColorPanelBorder)
	c.cursorY += 10
	c.cursorX = x
}

// ProgressBar draws a free-standing progress bar.
func (c *Context) ProgressBar(rect Rect, fraction float32, fill Color) {
	fraction = min(max(fraction, 0), 1)
	c.renderer.DrawRect(rect.X, rect.Y, rect.W, rect.H, ColorButtonNormal.Fade(fill.A))
	if w := (rect.W - 2) * fraction; w > 0 {
		c.renderer.DrawRect(rect.X+1, rect.Y+1, w, rect.H-2, fill)
	}
}

// TextCentered draws text horizontally centered on cx with its top at y.
func (c *Context) TextCentered(cx, y float32, text string, scale float32, color Color) {
	w, _ := c.renderer.MeasureText(text, scale)
	c.renderer.DrawText(cx-w/2, y, text, scale, color)
}

// GetScreenSize returns the current screen dimensions.
func (c *Context) GetScreenSize() (float32, float32) {
	w, h := c.renderer.GetScreenSize()
	return float32(w), float32(h)
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
