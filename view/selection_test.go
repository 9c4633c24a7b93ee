package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSelectionKeepsDuplicates(t *testing.T) {
	var s Selection
	s.Add(Cell{X: 1, Y: 2})
	s.Add(Cell{X: 1, Y: 2})
	s.Add(Cell{X: -3, Y: 0})

	if s.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", s.Len())
	}
	want := []Cell{{X: 1, Y: 2}, {X: 1, Y: 2}, {X: -3, Y: 0}}
	if diff := cmp.Diff(want, s.Cells()); diff != "" {
		t.Fatalf("cells mismatch (-want +got):\n%s", diff)
	}
	if !s.Contains(Cell{X: 1, Y: 2}) || !s.Contains(Cell{X: -3, Y: 0}) {
		t.Fatalf("expected added cells to be contained")
	}
	if s.Contains(Cell{X: 2, Y: 1}) {
		t.Fatalf("unexpected membership for (2,1)")
	}
	last, ok := s.Last()
	if !ok || last != (Cell{X: -3, Y: 0}) {
		t.Fatalf("Last() = %v, %v", last, ok)
	}
}

func TestSelectionCellsIsACopy(t *testing.T) {
	var s Selection
	s.Add(Cell{X: 4, Y: 4})
	cells := s.Cells()
	cells[0] = Cell{X: 9, Y: 9}
	if !s.Contains(Cell{X: 4, Y: 4}) || s.Contains(Cell{X: 9, Y: 9}) {
		t.Fatalf("mutating Cells() result changed the selection")
	}
}

func TestSelectionText(t *testing.T) {
	var empty Selection
	if got := empty.Text(); got != "" {
		t.Fatalf("empty selection text = %q", got)
	}

	var s Selection
	s.Add(Cell{X: 5, Y: 5})
	s.Add(Cell{X: -1, Y: 12})
	if got, want := s.Text(), "5,5\n-1,12\n"; got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}
