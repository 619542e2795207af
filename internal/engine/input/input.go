// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies input events.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	// Pointer events come from the mouse or from the primary touch finger.
	EventPointerDown
	EventPointerMove
	EventPointerUp
	// EventPointerCancel ends a press without a release, e.g. the pointer
	// left the window.
	EventPointerCancel
)

// Event represents a processed input event. Pointer coordinates are in
// window (screen) coordinates.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	X      float32
	Y      float32
	Button uint8
	Touch  bool
}

// Input handles all input processing.
type Input struct {
	events []Event

	width, height int
	fingers       fingerTracker
	mouseDown     bool
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  i.width,
					Height: i.height,
				})
			case sdl.WINDOWEVENT_LEAVE, sdl.WINDOWEVENT_FOCUS_LOST:
				if i.mouseDown {
					i.mouseDown = false
					i.events = append(i.events, Event{Type: EventPointerCancel})
				}
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{Type: EventPointerMove, X: float32(e.X), Y: float32(e.Y)})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			ev := Event{X: float32(e.X), Y: float32(e.Y), Button: e.Button}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.mouseDown = true
				ev.Type = EventPointerDown
			} else {
				i.mouseDown = false
				ev.Type = EventPointerUp
			}
			i.events = append(i.events, ev)

		case *sdl.TouchFingerEvent:
			x, y := e.X*float32(i.width), e.Y*float32(i.height)
			if t, ok := i.fingers.handle(fingerAction(e.Type), int64(e.FingerID)); ok {
				i.events = append(i.events, Event{Type: t, X: x, Y: y, Touch: true})
			}
		}
	}

	return false
}

func fingerAction(t uint32) EventType {
	switch t {
	case sdl.FINGERDOWN:
		return EventPointerDown
	case sdl.FINGERUP:
		return EventPointerUp
	default:
		return EventPointerMove
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
