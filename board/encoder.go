package board

import (
	"bytes"
	"errors"
	"fmt"
	"minimax/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotGridGame = errors.New("game is not grid shaped")
	ErrCalibration = errors.New("observation calibration failed")
)

// Encoder turns a state's observation vector into the flat per-action label
// string ('0' unclaimed, '1' player 0, '2' player 1) and places it on a Grid.
type Encoder struct {
	rows       int
	cols       int
	numActions int
	obsLen     int
	dense      bool
	// observation index -> action, for the player owning the index
	owners [2]map[int]game.Action
}

type EncoderOption func(e *Encoder)

// WithDenseBoard reads labels from game.DenseBoarder when a state implements it.
func WithDenseBoard() EncoderOption {
	return func(e *Encoder) {
		e.dense = true
	}
}

// NewEncoder reads the board shape from the game parameters and calibrates
// the action-to-observation maps by probing single actions.
func NewEncoder(g game.Game, options ...EncoderOption) (*Encoder, error) {
	name := g.Type().ShortName
	params := g.Parameters()
	rows, hasRows := params.Int(game.NumRows)
	cols, hasCols := params.Int(game.NumCols)
	if !hasRows || !hasCols {
		return nil, fmt.Errorf("%w: %s does not expose %s and %s", ErrNotGridGame, name, game.NumRows, game.NumCols)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %s has a %dx%d board", ErrNotGridGame, name, rows, cols)
	}

	e := &Encoder{
		rows:       rows,
		cols:       cols,
		numActions: (rows+1)*cols + rows*(cols+1),
	}
	for _, option := range options {
		option(e)
	}

	if err := e.calibrate(g.NewInitialState()); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	log.Debug().
		Str("game", name).
		Int("rows", rows).
		Int("cols", cols).
		Int("player0", len(e.owners[0])).
		Int("player1", len(e.owners[1])).
		Msg("calibrated observation map")
	return e, nil
}

func (e *Encoder) calibrate(initial game.State) error {
	actions := initial.LegalActions()
	if len(actions) != e.numActions {
		return fmt.Errorf("%w: initial state has %d actions, a %dx%d grid has %d",
			ErrNotGridGame, len(actions), e.rows, e.cols, e.numActions)
	}
	base := initial.ObservationVector()
	if len(base) == 0 || len(base)%3 != 0 {
		return fmt.Errorf("%w: observation length %d is not three equal segments", ErrCalibration, len(base))
	}
	e.obsLen = len(base)
	e.owners = [2]map[int]game.Action{{}, {}}

	// First mover: every action from the initial state
	for _, a := range actions {
		if err := e.probe(initial, base, a); err != nil {
			return err
		}
	}

	// Second mover: every action after a fixed opening, then the opening
	// itself after a different one
	opening := initial.Child(actions[0])
	if !opening.IsTerminal() {
		obs := opening.ObservationVector()
		for _, a := range opening.LegalActions() {
			if err := e.probe(opening, obs, a); err != nil {
				return err
			}
		}
	}
	if len(actions) > 1 {
		other := initial.Child(actions[1])
		if !other.IsTerminal() {
			if err := e.probe(other, other.ObservationVector(), actions[0]); err != nil {
				return err
			}
		}
	}

	// Each player's map must cover every action exactly once
	for player, owners := range e.owners {
		seen := make(map[game.Action]bool, len(owners))
		for _, a := range owners {
			seen[a] = true
		}
		if len(owners) != e.numActions || len(seen) != e.numActions {
			return fmt.Errorf("%w: player %d owns %d positions for %d distinct actions, want %d",
				ErrCalibration, player, len(owners), len(seen), e.numActions)
		}
	}
	return nil
}

// probe records the single owned position that flips when a is played from.
func (e *Encoder) probe(from game.State, before []float64, a game.Action) error {
	mover := from.CurrentPlayer()
	if mover != 0 && mover != 1 {
		return fmt.Errorf("%w: unexpected mover %d", ErrCalibration, mover)
	}
	after := from.Child(a).ObservationVector()
	if len(after) != len(before) {
		return fmt.Errorf("%w: observation length changed from %d to %d", ErrCalibration, len(before), len(after))
	}

	owners := e.owners[mover]
	changed := 0
	for j := len(before) / 3; j < len(before); j++ {
		if before[j] == after[j] || after[j] != 1 {
			continue
		}
		changed++
		if prev, ok := owners[j]; ok && prev != a {
			return fmt.Errorf("%w: position %d is claimed by actions %d and %d", ErrCalibration, j, prev, a)
		}
		owners[j] = a
	}
	if changed != 1 {
		return fmt.Errorf("%w: action %d claimed %d positions for player %d", ErrCalibration, a, changed, mover)
	}
	return nil
}

// Labels returns one byte per action: '0' unclaimed, '1' owned by player 0,
// '2' owned by player 1.
func (e *Encoder) Labels(s game.State) string {
	if e.dense {
		if d, ok := s.(game.DenseBoarder); ok {
			return d.DenseBoardString()
		}
	}

	labels := bytes.Repeat([]byte{'0'}, e.numActions)
	obs := s.ObservationVector()
	for player, owners := range e.owners {
		for j, a := range owners {
			if obs[j] == 1 {
				labels[a] = byte('1' + player)
			}
		}
	}
	return string(labels)
}

// Grid scatters a label string onto its geometric positions.
func (e *Encoder) Grid(labels string) Grid {
	grid := NewGrid(2*e.rows+1, 2*e.cols+1)

	// Horizontal elements
	for i := 0; i <= e.rows; i++ {
		for j := 0; j < e.cols; j++ {
			index := i*e.cols + j
			grid.Set(2*i, 2*j+1, labels[index]-'0')
		}
	}

	// Vertical elements
	offset := (e.rows + 1) * e.cols
	for i := 0; i < e.rows; i++ {
		for j := 0; j <= e.cols; j++ {
			index := offset + i*(e.cols+1) + j
			grid.Set(2*i+1, 2*j, labels[index]-'0')
		}
	}
	return grid
}

func (e *Encoder) Rows() int       { return e.rows }
func (e *Encoder) Cols() int       { return e.cols }
func (e *Encoder) NumActions() int { return e.numActions }
