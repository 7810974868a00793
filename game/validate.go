package game

import (
	"errors"
	"fmt"
)

var (
	ErrNotTwoPlayer          = errors.New("game must be a 2-player game")
	ErrNotDeterministic      = errors.New("game must be deterministic")
	ErrNotPerfectInformation = errors.New("game must be a perfect information one")
	ErrNotSequential         = errors.New("game must be turn-based")
	ErrNotZeroSum            = errors.New("game must be 0-sum")
)

// Validate checks that g can be solved exactly by minimax: 2 players, no
// chance nodes, perfect information, one mover per node and zero-sum returns.
func Validate(g Game) error {
	t := g.Type()
	if n := g.NumPlayers(); n != 2 {
		return fmt.Errorf("%w: %s has %d players", ErrNotTwoPlayer, t.ShortName, n)
	}
	if t.ChanceMode != Deterministic {
		return fmt.Errorf("%w: %s is %s", ErrNotDeterministic, t.ShortName, t.ChanceMode)
	}
	if t.Information != PerfectInformation {
		return fmt.Errorf("%w: %s is %s", ErrNotPerfectInformation, t.ShortName, t.Information)
	}
	if t.Dynamics != Sequential {
		return fmt.Errorf("%w: %s is %s", ErrNotSequential, t.ShortName, t.Dynamics)
	}
	if t.Utility != ZeroSum {
		return fmt.Errorf("%w: %s is %s", ErrNotZeroSum, t.ShortName, t.Utility)
	}
	return nil
}
