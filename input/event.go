// Package input turns raw mouse, touch and wheel state into viewer events.
package input

import "github.com/jakecoffman/cp"

// Phase is the stage of a press or touch interaction.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

// Event is one of PointerEvent, TouchEvent or WheelEvent.
type Event interface {
	isEvent()
}

// PointerEvent is a mouse press, move or release in screen coordinates.
type PointerEvent struct {
	Phase Phase
	Pos   cp.Vector
}

// TouchEvent reports the touches in contact with the surface. For PhaseEnd
// the list holds the touches down when the lift happened, lifted ones first.
type TouchEvent struct {
	Phase   Phase
	Touches []cp.Vector
}

// WheelEvent carries a browser-style vertical delta in pixels. Positive
// values zoom in.
type WheelEvent struct {
	DeltaY float64
}

func (PointerEvent) isEvent() {}
func (TouchEvent) isEvent()   {}
func (WheelEvent) isEvent()   {}

// Location returns the single screen point an event refers to. Events with
// no point, or with several touches, report ok == false.
func Location(ev Event) (cp.Vector, bool) {
	switch e := ev.(type) {
	case PointerEvent:
		return e.Pos, true
	case TouchEvent:
		if len(e.Touches) == 1 {
			return e.Touches[0], true
		}
	}
	return cp.Vector{}, false
}
