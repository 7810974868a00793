package dots

import (
	"fmt"
	"minimax/game"
)

// Observation parts per dot cell, in tensor order.
const (
	partHorizontal = iota
	partVertical
	partOwner
	numParts
)

// numCellStates is the number of observation segments: empty, player 0, player 1.
const numCellStates = 3

// Game is a rows x cols box board. Lines are numbered horizontals first, both
// orientations row-major:
//
//	horizontal (r, c): r*cols + c                       r in [0, rows], c in [0, cols)
//	vertical   (r, c): (rows+1)*cols + r*(cols+1) + c   r in [0, rows), c in [0, cols]
type Game struct {
	rows  int
	cols  int
	rules Rules

	numHorizontal int
	numLines      int
	numBoxes      int
	numCells      int // dots, (rows+1)*(cols+1)

	lineObs  []int            // line -> cell*numParts + part
	boxObs   []int            // box -> cell*numParts + partOwner
	lineBox  [][]int          // line -> adjacent boxes
	boxLines [][4]game.Action // box -> its four lines
}

// NewGame creates a board with at least one box. Nil rules default to StandardRules.
func NewGame(rows, cols int, rules Rules) (*Game, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid board %dx%d: need at least one box", rows, cols)
	}
	if rules == nil {
		rules = NewStandardRules()
	}

	g := &Game{
		rows:          rows,
		cols:          cols,
		rules:         rules,
		numHorizontal: (rows + 1) * cols,
		numLines:      (rows+1)*cols + rows*(cols+1),
		numBoxes:      rows * cols,
		numCells:      (rows + 1) * (cols + 1),
	}

	g.lineObs = make([]int, g.numLines)
	g.lineBox = make([][]int, g.numLines)
	for r := 0; r <= rows; r++ {
		for c := 0; c < cols; c++ {
			line := g.Horizontal(r, c)
			g.lineObs[line] = g.cell(r, c)*numParts + partHorizontal
			if r > 0 {
				g.lineBox[line] = append(g.lineBox[line], g.box(r-1, c))
			}
			if r < rows {
				g.lineBox[line] = append(g.lineBox[line], g.box(r, c))
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c <= cols; c++ {
			line := g.Vertical(r, c)
			g.lineObs[line] = g.cell(r, c)*numParts + partVertical
			if c > 0 {
				g.lineBox[line] = append(g.lineBox[line], g.box(r, c-1))
			}
			if c < cols {
				g.lineBox[line] = append(g.lineBox[line], g.box(r, c))
			}
		}
	}

	g.boxObs = make([]int, g.numBoxes)
	g.boxLines = make([][4]game.Action, g.numBoxes)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b := g.box(r, c)
			g.boxObs[b] = g.cell(r, c)*numParts + partOwner
			g.boxLines[b] = [4]game.Action{
				g.Horizontal(r, c),
				g.Horizontal(r+1, c),
				g.Vertical(r, c),
				g.Vertical(r, c+1),
			}
		}
	}
	return g, nil
}

// MustNewGame is NewGame for boards known to be valid.
func MustNewGame(rows, cols int, rules Rules) *Game {
	g, err := NewGame(rows, cols, rules)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Game) Type() game.Type {
	return game.Type{
		ShortName:   g.rules.Name(),
		ChanceMode:  game.Deterministic,
		Information: game.PerfectInformation,
		Dynamics:    game.Sequential,
		Utility:     game.ZeroSum,
	}
}

func (g *Game) NumPlayers() int {
	return 2
}

func (g *Game) Parameters() game.Parameters {
	return game.Parameters{
		game.NumRows: g.rows,
		game.NumCols: g.cols,
	}
}

func (g *Game) NewInitialState() game.State {
	return newState(g)
}

func (g *Game) Rows() int     { return g.rows }
func (g *Game) Cols() int     { return g.cols }
func (g *Game) NumLines() int { return g.numLines }
func (g *Game) Rules() Rules  { return g.rules }

// Horizontal returns the action drawing the line right of dot (r, c).
func (g *Game) Horizontal(r, c int) game.Action {
	return game.Action(r*g.cols + c)
}

// Vertical returns the action drawing the line below dot (r, c).
func (g *Game) Vertical(r, c int) game.Action {
	return game.Action(g.numHorizontal + r*(g.cols+1) + c)
}

// String renders the game like a game string, e.g. dots_and_boxes(num_rows=2,num_cols=2).
func (g *Game) String() string {
	return fmt.Sprintf("%s(num_rows=%d,num_cols=%d)", g.rules.Name(), g.rows, g.cols)
}

func (g *Game) cell(r, c int) int {
	return r*(g.cols+1) + c
}

func (g *Game) box(r, c int) int {
	return r*g.cols + c
}
