package searcher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariant is wrapped by panics raised when a game breaks the State contract mid-search.
var ErrInvariant = errors.New("search invariant violated")

// Keying selects how visited states are memoized.
type Keying int

const (
	// Plain evaluates the full game tree without a table.
	Plain Keying = iota
	// Transposition keys states by their raw label string and mover.
	Transposition
	// Symmetry keys states by their canonical grid and mover.
	Symmetry
)

var keyingNames = [...]string{
	Plain:         "plain",
	Transposition: "transposition",
	Symmetry:      "symmetry",
}

func (k Keying) String() string {
	if k < 0 || int(k) >= len(keyingNames) {
		return fmt.Sprintf("keying(%d)", int(k))
	}
	return keyingNames[k]
}

// ParseKeying accepts the names printed by Keying.String, case-insensitively.
func ParseKeying(name string) (Keying, error) {
	for k, n := range keyingNames {
		if strings.EqualFold(name, n) {
			return Keying(k), nil
		}
	}
	return Plain, fmt.Errorf("unknown keying %q, want one of %s", name, strings.Join(keyingNames[:], ", "))
}

// Key identifies a memoized state: a board serialization and the player to move.
type Key struct {
	Board  string
	Player int
}
