package metrics

import (
	"gonum.org/v1/gonum/stat"
)

// SummaryRecord aggregates the repetitions of one board and variant.
type SummaryRecord struct {
	Board       string
	Variant     string
	Runs        int
	Value       float64
	TableSize   int
	Nodes       int
	MeanSeconds float64
	StdSeconds  float64 // sample standard deviation, 0 for a single run
}

// Summarize groups records by board and variant in order of first appearance.
// Value, TableSize and Nodes come from the first record of each group; solves
// are deterministic so repetitions only differ in elapsed time.
func Summarize(records []RunRecord) []SummaryRecord {
	type group struct {
		first   RunRecord
		seconds []float64
	}
	type groupKey struct{ board, variant string }

	var order []groupKey
	groups := map[groupKey]*group{}
	for _, record := range records {
		k := groupKey{record.Board, record.Variant}
		g, ok := groups[k]
		if !ok {
			g = &group{first: record}
			groups[k] = g
			order = append(order, k)
		}
		g.seconds = append(g.seconds, record.Elapsed.Seconds())
	}

	summaries := make([]SummaryRecord, 0, len(order))
	for _, k := range order {
		g := groups[k]
		summary := SummaryRecord{
			Board:     k.board,
			Variant:   k.variant,
			Runs:      len(g.seconds),
			Value:     g.first.Value,
			TableSize: g.first.TableSize,
			Nodes:     g.first.Nodes,
		}
		if len(g.seconds) > 1 {
			summary.MeanSeconds, summary.StdSeconds = stat.MeanStdDev(g.seconds, nil)
		} else {
			summary.MeanSeconds = g.seconds[0]
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
