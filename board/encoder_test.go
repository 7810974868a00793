package board

import (
	"minimax/game"
	"minimax/game/dots"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// randomWalk plays up to steps uniformly random legal actions.
func randomWalk(r *rand.Rand, s game.State, steps int) game.State {
	for i := 0; i < steps && !s.IsTerminal(); i++ {
		actions := s.LegalActions()
		s = s.Child(actions[r.Intn(len(actions))])
	}
	return s
}

func TestEncoderLabels(t *testing.T) {
	boards := []struct {
		rows, cols int
		rules      dots.Rules
	}{
		{1, 1, dots.NewStandardRules()},
		{1, 2, dots.NewStandardRules()},
		{2, 2, dots.NewStandardRules()},
		{2, 3, dots.NewAvoidRules()},
		{3, 2, dots.NewStandardRules()},
	}

	for _, b := range boards {
		g := dots.MustNewGame(b.rows, b.cols, b.rules)
		t.Run(g.String(), func(t *testing.T) {
			probing, err := NewEncoder(g)
			require.NoError(t, err)
			dense, err := NewEncoder(g, WithDenseBoard())
			require.NoError(t, err)
			require.Equal(t, g.NumLines(), probing.NumActions())

			r := rand.New(rand.NewSource(uint64(b.rows*10 + b.cols)))
			for i := 0; i < 50; i++ {
				s := randomWalk(r, g.NewInitialState(), r.Intn(g.NumLines()+1))
				want := s.(*dots.State).DenseBoardString()

				require.Equal(t, want, probing.Labels(s), "Probed labels should match the game's own board string")
				require.Equal(t, want, dense.Labels(s))
			}
		})
	}
}

func TestEncoderGrid(t *testing.T) {
	t.Run("placing a 1x1 board", func(t *testing.T) {
		e, err := NewEncoder(dots.MustNewGame(1, 1, nil))
		require.NoError(t, err)

		// Lines: top 0, bottom 1, left 2, right 3
		grid := e.Grid("1202")

		require.Equal(t, 3, grid.Rows())
		require.Equal(t, 3, grid.Cols())
		require.Equal(t, "010\n002\n020\n", grid.String())
	})

	t.Run("placing a 1x2 board", func(t *testing.T) {
		g := dots.MustNewGame(1, 2, nil)
		e, err := NewEncoder(g)
		require.NoError(t, err)

		labels := []byte("0000000")
		labels[g.Horizontal(1, 1)] = '1'
		labels[g.Vertical(0, 0)] = '2'
		labels[g.Vertical(0, 2)] = '1'
		grid := e.Grid(string(labels))

		require.Equal(t, 3, grid.Rows())
		require.Equal(t, 5, grid.Cols())
		require.Equal(t, Player0, grid.At(2, 3), "Bottom right horizontal sits at (2r, 2c+1)")
		require.Equal(t, Player1, grid.At(1, 0), "Left vertical sits at (2r+1, 2c)")
		require.Equal(t, Player0, grid.At(1, 4))
		require.Equal(t, Unclaimed, grid.At(1, 1), "Box centers stay unclaimed")
		require.Equal(t, Unclaimed, grid.At(0, 0), "Dots stay unclaimed")
	})

	t.Run("placing a played position", func(t *testing.T) {
		g := dots.MustNewGame(2, 2, nil)
		e, err := NewEncoder(g)
		require.NoError(t, err)

		s := g.NewInitialState().Child(g.Horizontal(0, 0)).Child(g.Vertical(1, 2))
		grid := e.Grid(e.Labels(s))

		require.Equal(t, Player0, grid.At(0, 1))
		require.Equal(t, Player1, grid.At(3, 4))
	})
}

func TestEncoderRejections(t *testing.T) {
	t.Run("missing board parameters", func(t *testing.T) {
		g := &stubGame{params: game.Parameters{}, state: newStubState(4, 12, 2)}

		_, err := NewEncoder(g)

		require.ErrorIs(t, err, ErrNotGridGame)
	})

	t.Run("action count not matching the board", func(t *testing.T) {
		g := &stubGame{
			params: game.Parameters{game.NumRows: 1, game.NumCols: 1},
			state:  newStubState(3, 12, 1),
		}

		_, err := NewEncoder(g)

		require.ErrorIs(t, err, ErrNotGridGame)
	})

	t.Run("actions claiming several positions", func(t *testing.T) {
		g := &stubGame{
			params: game.Parameters{game.NumRows: 1, game.NumCols: 1},
			state:  newStubState(4, 12, 2),
		}

		_, err := NewEncoder(g)

		require.ErrorIs(t, err, ErrCalibration)
	})

	t.Run("second player never observed", func(t *testing.T) {
		// Player 0 makes every move, so the player 1 map stays empty
		g := &stubGame{
			params: game.Parameters{game.NumRows: 1, game.NumCols: 1},
			state:  newStubState(4, 12, 1),
		}

		_, err := NewEncoder(g)

		require.ErrorIs(t, err, ErrCalibration)
		require.ErrorContains(t, err, "player 1 owns 0 positions")
	})

	t.Run("observation not split in three", func(t *testing.T) {
		g := &stubGame{
			params: game.Parameters{game.NumRows: 1, game.NumCols: 1},
			state:  newStubState(4, 10, 1),
		}

		_, err := NewEncoder(g)

		require.ErrorIs(t, err, ErrCalibration)
	})
}

type stubGame struct {
	params game.Parameters
	state  game.State
}

func (g *stubGame) Type() game.Type {
	return game.Type{ShortName: "stub"}
}

func (g *stubGame) NumPlayers() int             { return 2 }
func (g *stubGame) Parameters() game.Parameters { return g.params }
func (g *stubGame) NewInitialState() game.State { return g.state }

// stubState lets player 0 make every move. Each action claims the given
// number of consecutive positions in the player 0 segment.
type stubState struct {
	obs    []float64
	claims int
	played []bool
}

func newStubState(numActions, obsLen, claims int) *stubState {
	return &stubState{
		obs:    make([]float64, obsLen),
		claims: claims,
		played: make([]bool, numActions),
	}
}

func (s *stubState) IsTerminal() bool             { return false }
func (s *stubState) PlayerReturn(int) float64     { return 0 }
func (s *stubState) CurrentPlayer() int           { return 0 }
func (s *stubState) ObservationVector() []float64 { return s.obs }

func (s *stubState) LegalActions() []game.Action {
	var actions []game.Action
	for i, played := range s.played {
		if !played {
			actions = append(actions, game.Action(i))
		}
	}
	return actions
}

func (s *stubState) Child(a game.Action) game.State {
	obs := make([]float64, len(s.obs))
	copy(obs, s.obs)
	start := len(obs) / 3
	for i := 0; i < s.claims; i++ {
		obs[start+(int(a)+i)%(len(obs)-start)] = 1
	}
	played := make([]bool, len(s.played))
	copy(played, s.played)
	played[a] = true
	return &stubState{obs: obs, claims: s.claims, played: played}
}
