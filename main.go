package main

import (
	"context"
	"flag"
	"fmt"
	"minimax/experiments"
	"minimax/meta"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config; flags below override it")
	experiment := flag.String("experiment", "variants", "Experiment to run: variants or scaling")
	rules := flag.String("rules", meta.DEFAULT_RULES, "Rules: dots_and_boxes or dots_avoid")
	rows := flag.Int("rows", meta.DEFAULT_ROWS, "Box rows")
	cols := flag.Int("cols", meta.DEFAULT_COLS, "Box columns")
	maxLines := flag.Int("max-lines", 12, "Largest board, in lines, of the scaling experiment")
	variants := flag.String("variants", "", "Comma separated keyings: symmetry, transposition, plain")
	repetitions := flag.Int("repetitions", 0, "Solves per board and variant")
	parallelism := flag.Int("parallelism", 0, "Independent solves running at once")
	out := flag.String("out", "", "Directory for CSV results, none if empty")
	dense := flag.Bool("dense-board", false, "Read boards from the game instead of the observation vector")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var cfg experiments.Config
	switch {
	case *configPath != "":
		cfg, err = experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	case *experiment == "scaling":
		cfg = experiments.ScalingConfig(*rules, *maxLines)
	case *experiment == "variants":
		cfg = experiments.DefaultConfig()
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	if (set["rules"] || set["rows"] || set["cols"]) && *experiment != "scaling" {
		cfg.Boards = []experiments.BoardConfig{{Rules: *rules, Rows: *rows, Cols: *cols}}
	}
	if *variants != "" {
		cfg.Variants = strings.Split(*variants, ",")
	}
	if *repetitions > 0 {
		cfg.Repetitions = *repetitions
	}
	if *parallelism > 0 {
		cfg.Parallelism = *parallelism
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *dense {
		cfg.DenseBoard = true
	}

	report, err := experiments.Run(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	board := ""
	for _, run := range report.Runs {
		if run.Board != board {
			board = run.Board
			fmt.Printf("Solving game: %s\n", board)
		}
		fmt.Printf("Running minimax search with %s keying\n", run.Variant)
		fmt.Println(experiments.Verdict(run.Value))
		fmt.Printf("Total keys: %d\n", run.TableSize)
		fmt.Printf("Execution time: %.2f seconds\n", run.Elapsed.Seconds())
	}
	for _, skipped := range report.Skipped {
		fmt.Printf("Skipped %s\n", skipped)
	}
	if report.Dir != "" {
		fmt.Printf("Results written to %s\n", report.Dir)
	}
}
