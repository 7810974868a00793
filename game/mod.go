package game

// Any game that aims to be solvable by the searcher implements State and Game.
// The searcher only ever reads through these interfaces.

type Action int

// State should be immutable - Child always returns a new copy
type State interface {
	IsTerminal() bool
	// PlayerReturn is only defined once IsTerminal reports true.
	PlayerReturn(player int) float64
	CurrentPlayer() int
	// LegalActions is empty iff the state is terminal.
	LegalActions() []Action
	Child(Action) State
	// ObservationVector has a fixed length for all states of one game: three
	// equal segments (unclaimed, owned by player 0, owned by player 1), each
	// ordered identically over board elements.
	ObservationVector() []float64
}

// DenseBoarder is implemented by states that can directly produce the flat
// per-action label string ('0' unclaimed, '1' player 0, '2' player 1).
type DenseBoarder interface {
	DenseBoardString() string
}

type Game interface {
	Type() Type
	NumPlayers() int
	Parameters() Parameters
	NewInitialState() State
}

// Parameters exposes the integer parameters a game was created with.
type Parameters map[string]int

const (
	NumRows = "num_rows"
	NumCols = "num_cols"
)

func (p Parameters) Int(name string) (int, bool) {
	v, ok := p[name]
	return v, ok
}
