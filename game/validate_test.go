package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mockGame struct {
	players int
	info    Type
}

func (m mockGame) Type() Type             { return m.info }
func (m mockGame) NumPlayers() int        { return m.players }
func (m mockGame) Parameters() Parameters { return Parameters{} }
func (m mockGame) NewInitialState() State { return nil }

func solvable() mockGame {
	return mockGame{
		players: 2,
		info: Type{
			ShortName:   "mock",
			ChanceMode:  Deterministic,
			Information: PerfectInformation,
			Dynamics:    Sequential,
			Utility:     ZeroSum,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Run("accepting a solvable game", func(t *testing.T) {
		require.NoError(t, Validate(solvable()))
	})

	cases := []struct {
		name   string
		mutate func(*mockGame)
		want   error
		detail string
	}{
		{"rejecting three players", func(g *mockGame) { g.players = 3 }, ErrNotTwoPlayer, "3 players"},
		{"rejecting chance nodes", func(g *mockGame) { g.info.ChanceMode = ExplicitStochastic }, ErrNotDeterministic, "explicit-stochastic"},
		{"rejecting hidden information", func(g *mockGame) { g.info.Information = ImperfectInformation }, ErrNotPerfectInformation, "imperfect-information"},
		{"rejecting simultaneous moves", func(g *mockGame) { g.info.Dynamics = Simultaneous }, ErrNotSequential, "simultaneous"},
		{"rejecting general-sum returns", func(g *mockGame) { g.info.Utility = GeneralSum }, ErrNotZeroSum, "general-sum"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := solvable()
			tc.mutate(&g)

			err := Validate(g)

			require.ErrorIs(t, err, tc.want, "Should report which precondition failed")
			require.Contains(t, err.Error(), tc.detail, "Should name the offending value")
		})
	}

	t.Run("reporting the first failed check", func(t *testing.T) {
		g := solvable()
		g.players = 1
		g.info.Utility = Identical

		require.ErrorIs(t, Validate(g), ErrNotTwoPlayer, "Player count is checked first")
	})
}

func TestParameters(t *testing.T) {
	p := Parameters{NumRows: 2}

	rows, ok := p.Int(NumRows)
	require.True(t, ok)
	require.Equal(t, 2, rows)

	_, ok = p.Int(NumCols)
	require.False(t, ok, "Missing parameters should be reported")
}
