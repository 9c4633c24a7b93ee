package input

import (
	"sort"

	"github.com/jakecoffman/cp"
)

// DefaultWheelStep converts one wheel notch into a pixel delta comparable to
// what browsers report.
const DefaultWheelStep = 100

// Touch is one finger on the surface.
type Touch struct {
	ID  int
	Pos cp.Vector
}

// Snapshot is the raw device state for one tick.
type Snapshot struct {
	Cursor    cp.Vector
	MouseDown bool
	// Touches are the fingers currently down.
	Touches []Touch
	// Released are the fingers lifted this tick, at their last position.
	Released []Touch
	// WheelY is positive when scrolling up.
	WheelY float64
}

// Translator diffs consecutive snapshots into events.
type Translator struct {
	WheelStep float64

	prev   Snapshot
	primed bool
}

func NewTranslator(wheelStep float64) *Translator {
	return &Translator{WheelStep: wheelStep}
}

// Translate returns the events that happened between the previous snapshot
// and s. Mouse state is ignored while any touch is active.
func (t *Translator) Translate(s Snapshot) []Event {
	s.Touches = sortedTouches(s.Touches)
	s.Released = sortedTouches(s.Released)

	var out []Event
	touching := len(s.Touches) > 0 || len(s.Released) > 0 || len(t.prev.Touches) > 0
	if touching {
		out = t.touchEvents(s, out)
	} else {
		out = t.mouseEvents(s, out)
	}

	if s.WheelY != 0 {
		out = append(out, WheelEvent{DeltaY: -s.WheelY * t.WheelStep})
	}

	t.prev = s
	t.primed = true
	return out
}

func (t *Translator) mouseEvents(s Snapshot, out []Event) []Event {
	if t.primed && s.Cursor != t.prev.Cursor {
		out = append(out, PointerEvent{Phase: PhaseMove, Pos: s.Cursor})
	}
	if s.MouseDown && !t.prev.MouseDown {
		out = append(out, PointerEvent{Phase: PhaseStart, Pos: s.Cursor})
	}
	if !s.MouseDown && t.prev.MouseDown {
		out = append(out, PointerEvent{Phase: PhaseEnd, Pos: s.Cursor})
	}
	return out
}

func (t *Translator) touchEvents(s Snapshot, out []Event) []Event {
	prev := make(map[int]cp.Vector, len(t.prev.Touches))
	for _, tc := range t.prev.Touches {
		prev[tc.ID] = tc.Pos
	}

	moved := false
	var held, added []Touch
	for _, tc := range s.Touches {
		pos, ok := prev[tc.ID]
		if !ok {
			added = append(added, tc)
			continue
		}
		held = append(held, tc)
		if pos != tc.Pos {
			moved = true
		}
	}

	if moved {
		out = append(out, TouchEvent{Phase: PhaseMove, Touches: positions(held)})
	}
	if len(s.Released) > 0 {
		lifted := append(positions(s.Released), positions(held)...)
		out = append(out, TouchEvent{Phase: PhaseEnd, Touches: lifted})
	}
	if len(added) > 0 {
		out = append(out, TouchEvent{Phase: PhaseStart, Touches: positions(s.Touches)})
	}
	return out
}

func sortedTouches(ts []Touch) []Touch {
	if len(ts) == 0 {
		return nil
	}
	out := append([]Touch(nil), ts...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func positions(ts []Touch) []cp.Vector {
	if len(ts) == 0 {
		return nil
	}
	out := make([]cp.Vector, len(ts))
	for i, tc := range ts {
		out[i] = tc.Pos
	}
	return out
}
