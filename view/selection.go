package view

import (
	"strconv"
	"strings"
)

// Selection is an append-only list of selected cells. Adding a cell twice
// keeps both entries; membership is unaffected.
type Selection struct {
	cells []Cell
	count map[Cell]int
}

// Add appends c.
func (s *Selection) Add(c Cell) {
	if s.count == nil {
		s.count = make(map[Cell]int)
	}
	s.cells = append(s.cells, c)
	s.count[c]++
}

// Contains reports whether c has been selected at least once.
func (s *Selection) Contains(c Cell) bool {
	if s == nil {
		return false
	}
	return s.count[c] > 0
}

// Len returns the number of entries, duplicates included.
func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns a copy of the entries in insertion order.
func (s *Selection) Cells() []Cell {
	if s == nil {
		return nil
	}
	return append([]Cell(nil), s.cells...)
}

// Last returns the most recently added cell.
func (s *Selection) Last() (Cell, bool) {
	if s == nil || len(s.cells) == 0 {
		return Cell{}, false
	}
	return s.cells[len(s.cells)-1], true
}

// Text renders the entries as "x,y" lines.
func (s *Selection) Text() string {
	if s.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range s.cells {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte('\n')
	}
	return b.String()
}
