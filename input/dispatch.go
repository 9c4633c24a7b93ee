package input

import "github.com/jakecoffman/cp"

// Handler receives dispatched events.
type Handler interface {
	PointerDown(p cp.Vector)
	PointerMove(p cp.Vector)
	PointerUp(p cp.Vector)
	Pinch(a, b cp.Vector)
	PinchEnd()
	Wheel(deltaY float64)
}

// Dispatch routes ev to h. Single-point events map onto the pointer
// handlers, a two-touch move is a pinch and a multi-touch lift ends the
// pinch. It reports whether ev was handled.
func Dispatch(ev Event, h Handler) bool {
	if ev == nil || h == nil {
		return false
	}

	if w, ok := ev.(WheelEvent); ok {
		h.Wheel(w.DeltaY)
		return true
	}

	if t, ok := ev.(TouchEvent); ok && len(t.Touches) > 1 {
		switch {
		case t.Phase == PhaseMove && len(t.Touches) == 2:
			h.Pinch(t.Touches[0], t.Touches[1])
			return true
		case t.Phase == PhaseEnd:
			h.PinchEnd()
			return true
		}
		return false
	}

	p, ok := Location(ev)
	if !ok {
		return false
	}
	switch phaseOf(ev) {
	case PhaseStart:
		h.PointerDown(p)
	case PhaseMove:
		h.PointerMove(p)
	case PhaseEnd:
		h.PointerUp(p)
	default:
		return false
	}
	return true
}

func phaseOf(ev Event) Phase {
	switch e := ev.(type) {
	case PointerEvent:
		return e.Phase
	case TouchEvent:
		return e.Phase
	}
	return -1
}
