package game

import "fmt"

// ChanceMode describes whether a game has chance nodes.
type ChanceMode int

const (
	Deterministic ChanceMode = iota
	ExplicitStochastic
	SampledStochastic
)

func (c ChanceMode) String() string {
	switch c {
	case Deterministic:
		return "deterministic"
	case ExplicitStochastic:
		return "explicit-stochastic"
	case SampledStochastic:
		return "sampled-stochastic"
	}
	return fmt.Sprintf("ChanceMode(%d)", int(c))
}

// Information describes what players observe.
type Information int

const (
	PerfectInformation Information = iota
	ImperfectInformation
)

func (i Information) String() string {
	switch i {
	case PerfectInformation:
		return "perfect-information"
	case ImperfectInformation:
		return "imperfect-information"
	}
	return fmt.Sprintf("Information(%d)", int(i))
}

// Dynamics describes how many players move at a node.
type Dynamics int

const (
	Sequential Dynamics = iota
	Simultaneous
)

func (d Dynamics) String() string {
	switch d {
	case Sequential:
		return "sequential"
	case Simultaneous:
		return "simultaneous"
	}
	return fmt.Sprintf("Dynamics(%d)", int(d))
}

// Utility describes how player returns relate to each other.
type Utility int

const (
	ZeroSum Utility = iota
	ConstantSum
	GeneralSum
	Identical
)

func (u Utility) String() string {
	switch u {
	case ZeroSum:
		return "zero-sum"
	case ConstantSum:
		return "constant-sum"
	case GeneralSum:
		return "general-sum"
	case Identical:
		return "identical"
	}
	return fmt.Sprintf("Utility(%d)", int(u))
}

// Type is the static description of a game.
type Type struct {
	ShortName   string
	ChanceMode  ChanceMode
	Information Information
	Dynamics    Dynamics
	Utility     Utility
}
