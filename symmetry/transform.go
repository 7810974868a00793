package symmetry

import (
	"fmt"
	"minimax/board"
)

// Transform is a board symmetry: a cell permutation, optionally followed by
// swapping the two player labels.
type Transform struct {
	name string
	rows int
	cols int
	perm []int // output cell -> input cell
	swap bool
}

func (t Transform) Name() string {
	return t.name
}

func (t Transform) Swaps() bool {
	return t.swap
}

// Apply returns a new grid; g is left untouched.
func (t Transform) Apply(g board.Grid) board.Grid {
	out := board.NewGrid(t.rows, t.cols)
	t.applyTo(out.Bytes(), t.checked(g).Bytes())
	return out
}

func (t Transform) applyTo(dst, src []uint8) {
	for i, from := range t.perm {
		v := src[from]
		if t.swap {
			v = swapLabel(v)
		}
		dst[i] = v
	}
}

func (t Transform) checked(g board.Grid) board.Grid {
	if g.Rows() != t.rows || g.Cols() != t.cols {
		panic(fmt.Sprintf("transform %s is for %dx%d grids, got %dx%d", t.name, t.rows, t.cols, g.Rows(), g.Cols()))
	}
	return g
}

func swapLabel(v uint8) uint8 {
	switch v {
	case board.Player0:
		return board.Player1
	case board.Player1:
		return board.Player0
	}
	return v
}

// geometry maps an output coordinate to the input coordinate it reads from.
type geometry struct {
	name   string
	source func(r, c, rows, cols int) (int, int)
}

var (
	identity = geometry{"identity", func(r, c, rows, cols int) (int, int) {
		return r, c
	}}
	rotate90 = geometry{"rotate90", func(r, c, rows, cols int) (int, int) {
		return rows - 1 - c, r
	}}
	rotate180 = geometry{"rotate180", func(r, c, rows, cols int) (int, int) {
		return rows - 1 - r, cols - 1 - c
	}}
	rotate270 = geometry{"rotate270", func(r, c, rows, cols int) (int, int) {
		return c, cols - 1 - r
	}}
	flipRows = geometry{"flip-rows", func(r, c, rows, cols int) (int, int) {
		return rows - 1 - r, c
	}}
	flipCols = geometry{"flip-cols", func(r, c, rows, cols int) (int, int) {
		return r, cols - 1 - c
	}}
	transpose = geometry{"transpose", func(r, c, rows, cols int) (int, int) {
		return c, r
	}}
	antiTranspose = geometry{"anti-transpose", func(r, c, rows, cols int) (int, int) {
		return rows - 1 - c, cols - 1 - r
	}}
)

// square lists D4; rectangle lists the subgroup that keeps the grid shape.
var (
	square    = []geometry{identity, rotate90, rotate180, rotate270, flipRows, flipCols, transpose, antiTranspose}
	rectangle = []geometry{identity, flipRows, flipCols, rotate180}
)

func newTransform(geo geometry, rows, cols int, swap bool) Transform {
	perm := make([]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sr, sc := geo.source(r, c, rows, cols)
			perm[r*cols+c] = sr*cols + sc
		}
	}

	name := geo.name
	if swap {
		name += "+swap"
	}
	return Transform{name: name, rows: rows, cols: cols, perm: perm, swap: swap}
}
