package input

// fingerTracker lets only the first finger drive the pointer. Other fingers
// are ignored until the primary one lifts.
type fingerTracker struct {
	active  bool
	primary int64
}

// handle filters a finger event. It returns the pointer event to emit and
// whether the finger is the primary one.
func (f *fingerTracker) handle(action EventType, finger int64) (EventType, bool) {
	switch action {
	case EventPointerDown:
		if f.active {
			return EventNone, false
		}
		f.active = true
		f.primary = finger
		return EventPointerDown, true
	case EventPointerUp:
		if !f.active || finger != f.primary {
			return EventNone, false
		}
		f.active = false
		return EventPointerUp, true
	default:
		if !f.active || finger != f.primary {
			return EventNone, false
		}
		return EventPointerMove, true
	}
}
