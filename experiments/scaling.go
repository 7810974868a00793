package experiments

import (
	"minimax/meta"
	"minimax/searcher"
)

// ScalingConfig lists every board with rows <= cols and at most maxLines
// lines, row count first, solved with both table-backed keyings. Comparing
// key counts across sizes shows how much the symmetry group saves as boards
// grow.
func ScalingConfig(rules string, maxLines int) Config {
	cfg := Config{
		Name: "scaling",
		Variants: []string{
			searcher.Transposition.String(),
			searcher.Symmetry.String(),
		},
		Repetitions: meta.REPETITIONS,
		Parallelism: meta.PARALLELISM,
	}
	for rows := 1; lines(rows, rows) <= maxLines; rows++ {
		for cols := rows; lines(rows, cols) <= maxLines; cols++ {
			cfg.Boards = append(cfg.Boards, BoardConfig{Rules: rules, Rows: rows, Cols: cols})
		}
	}
	return cfg
}

func lines(rows, cols int) int {
	return (rows+1)*cols + rows*(cols+1)
}
