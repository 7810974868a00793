package board

import "strings"

// Cell values of a Grid.
const (
	Unclaimed uint8 = iota
	Player0
	Player1
)

// Grid places board elements geometrically on a (2*rows+1) x (2*cols+1)
// array: horizontal elements at (even row, odd col), vertical elements at
// (odd row, even col). Dots and box centers stay Unclaimed.
type Grid struct {
	rows  int
	cols  int
	cells []uint8 // row-major
}

func NewGrid(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

func (g Grid) At(r, c int) uint8 {
	return g.cells[r*g.cols+c]
}

func (g Grid) Set(r, c int, v uint8) {
	g.cells[r*g.cols+c] = v
}

// Bytes returns the row-major cell values backing the grid.
func (g Grid) Bytes() []uint8 {
	return g.cells
}

func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('0' + g.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
