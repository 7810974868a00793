package experiments

import (
	"errors"
	"fmt"
	"minimax/game/dots"
	"minimax/meta"
	"minimax/searcher"
	"os"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

var ErrConfig = errors.New("invalid experiment config")

type BoardConfig struct {
	Rules string `yaml:"rules" json:"rules"`
	Rows  int    `yaml:"rows" json:"rows"`
	Cols  int    `yaml:"cols" json:"cols"`
}

// Config describes which boards to solve with which keyings.
type Config struct {
	Name        string        `yaml:"name" json:"name"`
	Boards      []BoardConfig `yaml:"boards" json:"boards"`
	Variants    []string      `yaml:"variants" json:"variants"`
	Repetitions int           `yaml:"repetitions" json:"repetitions"`
	Parallelism int           `yaml:"parallelism" json:"parallelism"`
	Output      string        `yaml:"output" json:"output"` // empty disables writing results
	DenseBoard  bool          `yaml:"dense_board" json:"dense_board"`
}

// DefaultConfig compares every keying on the default board.
func DefaultConfig() Config {
	return Config{
		Name: "variants",
		Boards: []BoardConfig{
			{Rules: meta.DEFAULT_RULES, Rows: meta.DEFAULT_ROWS, Cols: meta.DEFAULT_COLS},
		},
		Variants: []string{
			searcher.Symmetry.String(),
			searcher.Transposition.String(),
			searcher.Plain.String(),
		},
		Repetitions: meta.REPETITIONS,
		Parallelism: meta.PARALLELISM,
	}
}

// LoadConfig reads a YAML file over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrConfig)
	}
	if len(c.Boards) == 0 {
		return fmt.Errorf("%w: no boards", ErrConfig)
	}
	for i, b := range c.Boards {
		if _, err := dots.ParseRules(b.Rules); err != nil {
			return fmt.Errorf("%w: board %d: %w", ErrConfig, i, err)
		}
		if b.Rows < 1 || b.Cols < 1 {
			return fmt.Errorf("%w: board %d is %dx%d", ErrConfig, i, b.Rows, b.Cols)
		}
	}

	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrConfig)
	}
	for i, v := range c.Variants {
		if _, err := searcher.ParseKeying(v); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if slices.Index(c.Variants, v) != i {
			return fmt.Errorf("%w: variant %s listed twice", ErrConfig, v)
		}
	}

	if c.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be positive, got %d", ErrConfig, c.Repetitions)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrConfig, c.Parallelism)
	}
	return nil
}
