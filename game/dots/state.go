package dots

import (
	"fmt"
	"minimax/game"
	"strings"
)

const none int8 = -1

// State is an immutable dots-and-boxes position.
type State struct {
	game   *Game
	lines  []int8 // owner per line, none if undrawn
	boxes  []int8 // owner per box, none if open
	player int
	scores [2]int
	drawn  int
	loser  int // player who closed a box under ClosingLoses rules, -1 otherwise
}

func newState(g *Game) *State {
	s := &State{
		game:  g,
		lines: make([]int8, g.numLines),
		boxes: make([]int8, g.numBoxes),
		loser: -1,
	}
	for i := range s.lines {
		s.lines[i] = none
	}
	for i := range s.boxes {
		s.boxes[i] = none
	}
	return s
}

func (s *State) clone() *State {
	lines := make([]int8, len(s.lines))
	copy(lines, s.lines)
	boxes := make([]int8, len(s.boxes))
	copy(boxes, s.boxes)

	return &State{
		game:   s.game,
		lines:  lines,
		boxes:  boxes,
		player: s.player,
		scores: s.scores,
		drawn:  s.drawn,
		loser:  s.loser,
	}
}

func (s *State) IsTerminal() bool {
	return s.loser >= 0 || s.drawn == s.game.numLines
}

// PlayerReturn is +1 for the winner, -1 for the loser and 0 for a draw.
func (s *State) PlayerReturn(player int) float64 {
	if !s.IsTerminal() {
		panic("player return requested on a non-terminal state")
	}
	if player != 0 && player != 1 {
		panic(fmt.Sprintf("unknown player %d", player))
	}

	if s.loser >= 0 {
		if player == s.loser {
			return -1
		}
		return 1
	}

	diff := s.scores[player] - s.scores[1-player]
	switch {
	case diff > 0:
		return 1
	case diff < 0:
		return -1
	}
	return 0
}

// CurrentPlayer is the player to move. Terminal states keep the last value.
func (s *State) CurrentPlayer() int {
	return s.player
}

func (s *State) LegalActions() []game.Action {
	if s.IsTerminal() {
		return nil
	}
	actions := make([]game.Action, 0, s.game.numLines-s.drawn)
	for line, owner := range s.lines {
		if owner == none {
			actions = append(actions, game.Action(line))
		}
	}
	return actions
}

func (s *State) Child(action game.Action) game.State {
	if s.IsTerminal() {
		panic(fmt.Sprintf("action %d played on a terminal state", action))
	}
	if action < 0 || int(action) >= s.game.numLines || s.lines[action] != none {
		panic(fmt.Sprintf("illegal action %d", action))
	}

	next := s.clone()
	mover := s.player
	next.lines[action] = int8(mover)
	next.drawn++

	closed := 0
	for _, b := range s.game.lineBox[action] {
		if next.isClosed(b) {
			next.boxes[b] = int8(mover)
			next.scores[mover]++
			closed++
		}
	}

	rules := s.game.rules
	switch {
	case closed > 0 && rules.ClosingLoses():
		next.loser = mover
	case closed > 0 && rules.KeepsTurn():
		// Mover plays again
	default:
		next.player = 1 - mover
	}
	return next
}

func (s *State) isClosed(box int) bool {
	for _, line := range s.game.boxLines[box] {
		if s.lines[line] == none {
			return false
		}
	}
	return true
}

// ObservationVector follows the [cell state][dot cell][part] layout: one
// segment per cell state (empty, player 0, player 1), each holding the
// horizontal line, vertical line and box owner of every dot cell.
func (s *State) ObservationVector() []float64 {
	segment := s.game.numCells * numParts
	values := make([]float64, numCellStates*segment)
	for i := 0; i < segment; i++ {
		values[i] = 1
	}

	mark := func(index int, owner int8) {
		if owner == none {
			return
		}
		values[index] = 0
		values[(int(owner)+1)*segment+index] = 1
	}
	for line, owner := range s.lines {
		mark(s.game.lineObs[line], owner)
	}
	for box, owner := range s.boxes {
		mark(s.game.boxObs[box], owner)
	}
	return values
}

// DenseBoardString gives one byte per line: '0' undrawn, '1' or '2' for the
// player who drew it.
func (s *State) DenseBoardString() string {
	b := make([]byte, len(s.lines))
	for line, owner := range s.lines {
		b[line] = byte('1' + owner)
	}
	return string(b)
}

// Scores returns the number of boxes each player closed.
func (s *State) Scores() [2]int {
	return s.scores
}

func (s *State) String() string {
	g := s.game
	var sb strings.Builder
	for r := 0; r <= g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteByte('+')
			if s.lines[g.Horizontal(r, c)] != none {
				sb.WriteString("---")
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString("+\n")
		if r == g.rows {
			break
		}
		for c := 0; c <= g.cols; c++ {
			if s.lines[g.Vertical(r, c)] != none {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
			if c == g.cols {
				break
			}
			if owner := s.boxes[g.box(r, c)]; owner != none {
				fmt.Fprintf(&sb, " %d ", owner+1)
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
