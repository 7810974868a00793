package searcher

import (
	"errors"
	"fmt"
	"math"
	"minimax/board"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/symmetry"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrMaximizingPlayer = errors.New("maximizing player must be 0 or 1")

type Option func(s *Solver)

// Solver computes exact game values by exhaustive minimax. A Solver runs one
// solve at a time; use one Solver per goroutine.
type Solver struct {
	game    game.Game
	keying  Keying
	dense   bool
	metrics metrics.Collector

	once      sync.Once
	encoder   *board.Encoder
	canonical *symmetry.Canonicalizer
	setupErr  error
}

// Result of one solve. TableSize is zero for Plain keying.
type Result struct {
	Value     float64
	TableSize int
	Nodes     int
	Elapsed   time.Duration
	Metric    metrics.SearchMetric
}

func WithKeying(keying Keying) Option {
	return func(s *Solver) {
		s.keying = keying
	}
}

// WithDenseBoard lets the encoder read boards from states implementing game.DenseBoarder.
func WithDenseBoard() Option {
	return func(s *Solver) {
		s.dense = true
	}
}

func WithMetrics() Option {
	return func(s *Solver) {
		s.metrics = metrics.NewCollector()
	}
}

func NewSolver(g game.Game, options ...Option) *Solver {
	s := &Solver{ // Default values
		game:    g,
		keying:  Symmetry,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Solver) Keying() Keying {
	return s.keying
}

// Solve returns the value of the initial state for the player moving first.
func (s *Solver) Solve() (Result, error) {
	initial := s.game.NewInitialState()
	return s.SolveFrom(initial, initial.CurrentPlayer())
}

// SolveFrom returns the exact value of state from maximizing's point of view.
// Every call starts from an empty table.
func (s *Solver) SolveFrom(state game.State, maximizing int) (Result, error) {
	if err := game.Validate(s.game); err != nil {
		return Result{}, err
	}
	if maximizing != 0 && maximizing != 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrMaximizingPlayer, maximizing)
	}
	if s.keying != Plain {
		if err := s.setup(); err != nil {
			return Result{}, err
		}
	}

	run := &search{Solver: s, maximizing: maximizing}
	if s.keying != Plain {
		run.table = NewTable()
	}

	s.metrics.Start(s.keying.String())
	start := time.Now()
	value := run.minimax(state)
	elapsed := time.Since(start)
	metric := s.metrics.Complete()

	result := Result{
		Value:   value,
		Nodes:   run.nodes,
		Elapsed: elapsed,
		Metric:  metric,
	}
	if run.table != nil {
		result.TableSize = run.table.Len()
	}

	log.Debug().
		Str("keying", s.keying.String()).
		Float64("value", result.Value).
		Int("keys", result.TableSize).
		Int("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Msg("solved")
	return result, nil
}

// setup builds the encoder and canonicalizer once per solver.
func (s *Solver) setup() error {
	s.once.Do(func() {
		var options []board.EncoderOption
		if s.dense {
			options = append(options, board.WithDenseBoard())
		}
		s.encoder, s.setupErr = board.NewEncoder(s.game, options...)
		if s.setupErr != nil {
			return
		}
		s.canonical = symmetry.NewCanonicalizer(2*s.encoder.Rows()+1, 2*s.encoder.Cols()+1)
	})
	return s.setupErr
}

type search struct {
	*Solver
	maximizing int
	table      *Table
	nodes      int
}

func (r *search) minimax(state game.State) float64 {
	r.nodes++
	r.metrics.AddNode()
	if state.IsTerminal() {
		r.metrics.AddTerminal()
		return state.PlayerReturn(r.maximizing)
	}

	var key Key
	if r.table != nil {
		key = r.key(state)
		if value, ok := r.table.Get(key); ok {
			r.metrics.AddHit()
			return value
		}
		r.metrics.AddMiss()
	}

	actions := state.LegalActions()
	if len(actions) == 0 {
		panic(fmt.Errorf("%w: non-terminal state has no legal actions", ErrInvariant))
	}

	maximize := state.CurrentPlayer() == r.maximizing
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for _, action := range actions {
		value := r.minimax(state.Child(action))
		if maximize {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}

	if r.table != nil {
		r.table.Put(key, best)
	}
	return best
}

func (r *search) key(state game.State) Key {
	labels := r.encoder.Labels(state)
	if r.keying == Transposition {
		return Key{Board: labels, Player: state.CurrentPlayer()}
	}
	grid := r.encoder.Grid(labels)
	return Key{Board: string(r.canonical.Canonical(grid)), Player: state.CurrentPlayer()}
}
