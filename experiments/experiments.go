package experiments

import (
	"context"
	"fmt"
	"minimax/experiments/metrics"
	"minimax/game/dots"
	"minimax/meta"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// Report holds every solve of an experiment in plan order.
type Report struct {
	Runs      []metrics.RunRecord
	Summaries []metrics.SummaryRecord
	Skipped   []string // board/variant pairs refused by the plain line limit
	Conflicts []string // boards whose variants disagree on the value
	Dir       string   // result directory, empty when nothing was written
}

type job struct {
	id         int
	game       *dots.Game
	keying     searcher.Keying
	repetition int
}

// Run solves every board with every variant, each solve on its own solver
// and table, at most cfg.Parallelism at a time.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	log.Info().Msgf("starting %s experiment...", cfg.Name)
	jobs, skipped, err := plan(cfg)
	if err != nil {
		return Report{}, err
	}

	records := make([]metrics.RunRecord, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := solve(j, cfg.DenseBoard)
			if err != nil {
				return err
			}
			records[i] = record
			log.Info().Msgf("completed run %d of %d: %s with %s, value %v, %d keys in %v",
				j.id, len(jobs), record.Board, record.Variant, record.Value, record.TableSize, record.Elapsed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("%s experiment failed: %w", cfg.Name, err)
	}

	report := Report{
		Runs:      records,
		Summaries: metrics.Summarize(records),
		Skipped:   skipped,
		Conflicts: conflicts(records),
	}
	for _, board := range report.Conflicts {
		log.Warn().Str("board", board).Msg("variants disagree on the game value")
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.Output != "" {
		dir, err := store(cfg, report)
		if err != nil {
			return Report{}, err
		}
		report.Dir = dir
	}
	return report, nil
}

func plan(cfg Config) ([]job, []string, error) {
	var jobs []job
	var skipped []string
	for _, b := range cfg.Boards {
		rules, err := dots.ParseRules(b.Rules)
		if err != nil {
			return nil, nil, err
		}
		g, err := dots.NewGame(b.Rows, b.Cols, rules)
		if err != nil {
			return nil, nil, err
		}

		for _, v := range cfg.Variants {
			keying, err := searcher.ParseKeying(v)
			if err != nil {
				return nil, nil, err
			}
			if keying == searcher.Plain && g.NumLines() > meta.PLAIN_LINE_LIMIT {
				log.Warn().Msgf("skipping %s on %s: %d lines exceed the plain limit of %d",
					keying, g, g.NumLines(), meta.PLAIN_LINE_LIMIT)
				skipped = append(skipped, g.String()+"/"+keying.String())
				continue
			}
			for r := 0; r < cfg.Repetitions; r++ {
				jobs = append(jobs, job{id: len(jobs) + 1, game: g, keying: keying, repetition: r})
			}
		}
	}
	return jobs, skipped, nil
}

func solve(j job, dense bool) (metrics.RunRecord, error) {
	options := []searcher.Option{searcher.WithKeying(j.keying), searcher.WithMetrics()}
	if dense {
		options = append(options, searcher.WithDenseBoard())
	}

	solver := searcher.NewSolver(j.game, options...)
	result, err := solver.Solve()
	if err != nil {
		return metrics.RunRecord{}, fmt.Errorf("%s with %s: %w", j.game, solver.Keying(), err)
	}
	return metrics.RunRecord{
		ID:           j.id,
		Board:        j.game.String(),
		Variant:      solver.Keying().String(),
		Repetition:   j.repetition,
		Value:        result.Value,
		TableSize:    result.TableSize,
		Nodes:        result.Nodes,
		Elapsed:      result.Elapsed,
		SearchMetric: result.Metric,
	}, nil
}

// conflicts lists boards on which two records report different values.
func conflicts(records []metrics.RunRecord) []string {
	values := map[string]float64{}
	var boards []string
	for _, record := range records {
		want, ok := values[record.Board]
		if !ok {
			values[record.Board] = record.Value
			continue
		}
		if want != record.Value && !slices.Contains(boards, record.Board) {
			boards = append(boards, record.Board)
		}
	}
	return boards
}

func store(cfg Config, report Report) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err = writer.WriteSetup(cfg); err != nil {
		return "", fmt.Errorf("failed to store setup: %w", err)
	}
	log.Info().Msg("stored setup")

	if err = writer.WriteRunRecords(report.Runs); err != nil {
		return "", fmt.Errorf("failed to store run records: %w", err)
	}
	log.Info().Msg("stored run records")

	if err = writer.WriteSummaryRecords(report.Summaries); err != nil {
		return "", fmt.Errorf("failed to store summary records: %w", err)
	}
	log.Info().Msg("stored summary records")
	return writer.Dir(), nil
}

// Verdict phrases a value for the player who moved first.
func Verdict(value float64) string {
	switch {
	case value > 0:
		return "Player 1 wins."
	case value < 0:
		return "Player 2 wins."
	}
	return "It's a draw"
}
