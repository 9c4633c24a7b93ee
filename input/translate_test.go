package input

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jakecoffman/cp"
)

func vec(x, y float64) cp.Vector {
	return cp.Vector{X: x, Y: y}
}

func TestTranslateMouse(t *testing.T) {
	cases := []struct {
		name  string
		ticks []Snapshot
		want  [][]Event
	}{
		{
			name: "click_without_move",
			ticks: []Snapshot{
				{Cursor: vec(40, 40)},
				{Cursor: vec(40, 40), MouseDown: true},
				{Cursor: vec(40, 40)},
			},
			want: [][]Event{
				nil,
				{PointerEvent{Phase: PhaseStart, Pos: vec(40, 40)}},
				{PointerEvent{Phase: PhaseEnd, Pos: vec(40, 40)}},
			},
		},
		{
			name: "drag",
			ticks: []Snapshot{
				{Cursor: vec(10, 10), MouseDown: true},
				{Cursor: vec(20, 15), MouseDown: true},
				{Cursor: vec(25, 15)},
			},
			want: [][]Event{
				{PointerEvent{Phase: PhaseStart, Pos: vec(10, 10)}},
				{PointerEvent{Phase: PhaseMove, Pos: vec(20, 15)}},
				{
					PointerEvent{Phase: PhaseMove, Pos: vec(25, 15)},
					PointerEvent{Phase: PhaseEnd, Pos: vec(25, 15)},
				},
			},
		},
		{
			name: "hover_moves_without_press",
			ticks: []Snapshot{
				{Cursor: vec(1, 1)},
				{Cursor: vec(2, 1)},
			},
			want: [][]Event{
				nil,
				{PointerEvent{Phase: PhaseMove, Pos: vec(2, 1)}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTranslator(DefaultWheelStep)
			for i, s := range tc.ticks {
				got := tr.Translate(s)
				if diff := cmp.Diff(tc.want[i], got); diff != "" {
					t.Fatalf("tick %d mismatch (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestTranslateTouch(t *testing.T) {
	cases := []struct {
		name  string
		ticks []Snapshot
		want  [][]Event
	}{
		{
			name: "single_tap",
			ticks: []Snapshot{
				{Touches: []Touch{{ID: 1, Pos: vec(40, 40)}}},
				{Released: []Touch{{ID: 1, Pos: vec(40, 40)}}},
			},
			want: [][]Event{
				{TouchEvent{Phase: PhaseStart, Touches: []cp.Vector{vec(40, 40)}}},
				{TouchEvent{Phase: PhaseEnd, Touches: []cp.Vector{vec(40, 40)}}},
			},
		},
		{
			name: "pinch",
			ticks: []Snapshot{
				{Touches: []Touch{{ID: 3, Pos: vec(10, 10)}}},
				{Touches: []Touch{{ID: 4, Pos: vec(20, 10)}, {ID: 3, Pos: vec(10, 10)}}},
				{Touches: []Touch{{ID: 3, Pos: vec(5, 10)}, {ID: 4, Pos: vec(25, 10)}}},
				{Touches: []Touch{{ID: 3, Pos: vec(5, 10)}}, Released: []Touch{{ID: 4, Pos: vec(25, 10)}}},
				{Released: []Touch{{ID: 3, Pos: vec(5, 10)}}},
			},
			want: [][]Event{
				{TouchEvent{Phase: PhaseStart, Touches: []cp.Vector{vec(10, 10)}}},
				{TouchEvent{Phase: PhaseStart, Touches: []cp.Vector{vec(10, 10), vec(20, 10)}}},
				{TouchEvent{Phase: PhaseMove, Touches: []cp.Vector{vec(5, 10), vec(25, 10)}}},
				{TouchEvent{Phase: PhaseEnd, Touches: []cp.Vector{vec(25, 10), vec(5, 10)}}},
				{TouchEvent{Phase: PhaseEnd, Touches: []cp.Vector{vec(5, 10)}}},
			},
		},
		{
			name: "mouse_ignored_while_touching",
			ticks: []Snapshot{
				{Cursor: vec(0, 0), MouseDown: true, Touches: []Touch{{ID: 1, Pos: vec(7, 7)}}},
			},
			want: [][]Event{
				{TouchEvent{Phase: PhaseStart, Touches: []cp.Vector{vec(7, 7)}}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTranslator(DefaultWheelStep)
			for i, s := range tc.ticks {
				got := tr.Translate(s)
				if diff := cmp.Diff(tc.want[i], got); diff != "" {
					t.Fatalf("tick %d mismatch (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestTranslateWheel(t *testing.T) {
	tr := NewTranslator(DefaultWheelStep)
	got := tr.Translate(Snapshot{WheelY: -1.5})
	want := []Event{WheelEvent{DeltaY: 150}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
