package dots

import "fmt"

// Rules decide what happens when a drawn line closes one or more boxes.
type Rules interface {
	Name() string
	// KeepsTurn reports whether a mover who closed a box moves again.
	KeepsTurn() bool
	// ClosingLoses reports whether closing a box ends the game with a loss
	// for the mover.
	ClosingLoses() bool
}

// StandardRules is classic dots-and-boxes: closed boxes are scored by the
// mover, who then moves again. The player with more boxes wins.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) Name() string       { return "dots_and_boxes" }
func (sr *StandardRules) KeepsTurn() bool    { return true }
func (sr *StandardRules) ClosingLoses() bool { return false }

// AvoidRules strictly alternates turns and the first player to close a box
// loses. The outcome only depends on which lines are drawn and who moves, so
// it is invariant under every board symmetry and under swapping line owners.
type AvoidRules struct{}

func NewAvoidRules() *AvoidRules {
	return &AvoidRules{}
}

func (ar *AvoidRules) Name() string       { return "dots_avoid" }
func (ar *AvoidRules) KeepsTurn() bool    { return false }
func (ar *AvoidRules) ClosingLoses() bool { return true }

// ParseRules maps a rule set name (or its short alias) to Rules.
func ParseRules(name string) (Rules, error) {
	switch name {
	case "dots_and_boxes", "standard", "":
		return NewStandardRules(), nil
	case "dots_avoid", "avoid":
		return NewAvoidRules(), nil
	}
	return nil, fmt.Errorf("unknown rules %q", name)
}
