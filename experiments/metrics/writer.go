package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one solve of one board with one keying.
type RunRecord struct {
	ID         int
	Board      string // game string, e.g. dots_avoid(num_rows=2,num_cols=2)
	Variant    string
	Repetition int
	Value      float64
	TableSize  int
	Nodes      int
	Elapsed    time.Duration
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<id> for one experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+uuid.NewString()[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the experiment configuration as indented JSON.
func (w *Writer) WriteSetup(setup any) error {
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.json"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteRunRecords(records []RunRecord) error {
	header := []string{"id", "board", "variant", "repetition", "value", "table_size", "nodes", "elapsed_seconds", "terminals", "hits", "misses"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Board,
			record.Variant,
			strconv.Itoa(record.Repetition),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			strconv.Itoa(record.TableSize),
			strconv.Itoa(record.Nodes),
			strconv.FormatFloat(record.Elapsed.Seconds(), 'f', 6, 64),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.Hits),
			strconv.Itoa(record.Misses),
		})
	}
	return w.writeCSV("runs.csv", header, rows)
}

func (w *Writer) WriteSummaryRecords(records []SummaryRecord) error {
	header := []string{"board", "variant", "runs", "value", "table_size", "nodes", "mean_seconds", "std_seconds"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Board,
			record.Variant,
			strconv.Itoa(record.Runs),
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			strconv.Itoa(record.TableSize),
			strconv.Itoa(record.Nodes),
			strconv.FormatFloat(record.MeanSeconds, 'f', 6, 64),
			strconv.FormatFloat(record.StdSeconds, 'f', 6, 64),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}
