package view

import "github.com/milk9111/gridview/common"

const (
	DefaultColumns  = 100
	DefaultRows     = 100
	DefaultCellSize = 8
)

// Cell is a grid index. Cells outside [0, Columns) x [0, Rows) are valid
// values; they are simply never drawn.
type Cell struct {
	X int
	Y int
}

// Grid describes the fixed logical layout of the board.
type Grid struct {
	Columns  int
	Rows     int
	CellSize float64
}

func DefaultGrid() Grid {
	return Grid{Columns: DefaultColumns, Rows: DefaultRows, CellSize: DefaultCellSize}
}

// CellAt returns the cell containing the world point p.
func (g Grid) CellAt(p Point) Cell {
	return Cell{X: common.FloorDiv(p.X, g.CellSize), Y: common.FloorDiv(p.Y, g.CellSize)}
}

// Bounds returns the world-space rectangle covered by c.
func (g Grid) Bounds(c Cell) (x, y, w, h float64) {
	return float64(c.X) * g.CellSize, float64(c.Y) * g.CellSize, g.CellSize, g.CellSize
}

// Contains reports whether c lies inside the drawn grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Columns && c.Y < g.Rows
}
