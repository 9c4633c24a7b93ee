package view

import "testing"

func TestGridCellAt(t *testing.T) {
	g := DefaultGrid()
	cases := []struct {
		p    Point
		want Cell
	}{
		{Point{X: 0, Y: 0}, Cell{X: 0, Y: 0}},
		{Point{X: 40, Y: 40}, Cell{X: 5, Y: 5}},
		{Point{X: 7.99, Y: 8}, Cell{X: 0, Y: 1}},
		{Point{X: -0.01, Y: -8}, Cell{X: -1, Y: -1}},
		{Point{X: 800, Y: 3}, Cell{X: 100, Y: 0}},
	}
	for _, tc := range cases {
		if got := g.CellAt(tc.p); got != tc.want {
			t.Errorf("CellAt(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Columns: 3, Rows: 2, CellSize: 8}
	cases := []struct {
		name string
		c    Cell
		want bool
	}{
		{"origin", Cell{X: 0, Y: 0}, true},
		{"last", Cell{X: 2, Y: 1}, true},
		{"column_past_end", Cell{X: 3, Y: 0}, false},
		{"row_past_end", Cell{X: 0, Y: 2}, false},
		{"negative", Cell{X: -1, Y: 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.c); got != tc.want {
				t.Fatalf("Contains(%v) = %v, want %v", tc.c, got, tc.want)
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g := DefaultGrid()
	x, y, w, h := g.Bounds(Cell{X: 3, Y: -2})
	if x != 24 || y != -16 || w != 8 || h != 8 {
		t.Fatalf("Bounds = (%v, %v, %v, %v), want (24, -16, 8, 8)", x, y, w, h)
	}
}
