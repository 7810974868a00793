package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting search events", func(t *testing.T) {
		c := NewCollector()
		c.Start("symmetry")
		c.AddNode()
		c.AddNode()
		c.AddTerminal()
		c.AddMiss()

		got := c.Complete()

		require.Equal(t, "symmetry", got.Keying)
		require.Equal(t, 2, got.Nodes)
		require.Equal(t, 1, got.Terminals)
		require.Equal(t, 0, got.Hits)
		require.Equal(t, 1, got.Misses)
		require.False(t, got.StartTime.IsZero())
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start("plain")
		c.AddNode()
		c.AddHit()

		c.Start("transposition")
		got := c.Complete()

		require.Equal(t, "transposition", got.Keying)
		require.Zero(t, got.Nodes, "Counters should restart with every solve")
		require.Zero(t, got.Hits)
	})

	t.Run("dummy collector ignores events", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("plain")
		c.AddNode()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestSummarize(t *testing.T) {
	records := []RunRecord{
		{Board: "a", Variant: "symmetry", Value: 1, TableSize: 5, Nodes: 9, Elapsed: 1 * time.Second},
		{Board: "a", Variant: "plain", Value: 1, Nodes: 40, Elapsed: 4 * time.Second},
		{Board: "a", Variant: "symmetry", Value: 1, TableSize: 5, Nodes: 9, Elapsed: 3 * time.Second},
	}

	got := Summarize(records)

	require.Len(t, got, 2)
	require.Equal(t, "symmetry", got[0].Variant, "Groups keep the order of their first record")
	require.Equal(t, 2, got[0].Runs)
	require.Equal(t, 5, got[0].TableSize)
	require.InDelta(t, 2.0, got[0].MeanSeconds, 1e-9)
	require.InDelta(t, 1.4142135, got[0].StdSeconds, 1e-6, "Sample standard deviation of 1s and 3s")
	require.Equal(t, 1, got[1].Runs)
	require.InDelta(t, 4.0, got[1].MeanSeconds, 1e-9)
	require.Zero(t, got[1].StdSeconds, "Single runs have no spread")
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "variants")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "variants"), filepath.Dir(w.Dir()))

	records := []RunRecord{
		{ID: 1, Board: "dots_avoid(num_rows=1,num_cols=1)", Variant: "symmetry", Value: 1, TableSize: 7, Nodes: 20,
			Elapsed: 1500 * time.Millisecond, SearchMetric: SearchMetric{Terminals: 6, Hits: 7, Misses: 7}},
	}
	require.NoError(t, w.WriteSetup(map[string]int{"repetitions": 1}))
	require.NoError(t, w.WriteRunRecords(records))
	require.NoError(t, w.WriteSummaryRecords(Summarize(records)))

	setup, err := os.ReadFile(filepath.Join(w.Dir(), "setup.json"))
	require.NoError(t, err)
	require.JSONEq(t, `{"repetitions": 1}`, string(setup))

	runs := readCSV(t, filepath.Join(w.Dir(), "runs.csv"))
	require.Len(t, runs, 2, "Header and one row")
	require.Equal(t, "table_size", runs[0][5])
	require.Equal(t, []string{"1", "dots_avoid(num_rows=1,num_cols=1)", "symmetry", "0", "1", "7", "20", "1.500000", "6", "7", "7"}, runs[1])

	summary := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
	require.Len(t, summary, 2)
	require.Equal(t, "1.500000", summary[1][6])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
