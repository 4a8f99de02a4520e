// Command pairup reconciles the two location-id lists of the puzzle input.
//
// Usage:
//
//	pairup [-config pairup.hcl] [-input FILE] [-part 0|1|2] [-log-level LEVEL] [-verbose] [-trace]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dkooll/gophx/internal/config"
	"github.com/dkooll/gophx/internal/observability"
	"github.com/dkooll/gophx/pairup"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("pairup failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("pairup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "HCL config file")
	input := fs.String("input", "", "input file (default: embedded input)")
	part := fs.Int("part", config.PartBoth, "1 for the difference score, 2 for the similarity score, 0 for both")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "debug, info, warn or error")
	verbose := fs.Bool("verbose", false, "print the sorted pair breakdown")
	traceSpans := fs.Bool("trace", false, "log spans for each scoring step")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "part":
			cfg.Part = *part
		case "log-level":
			cfg.LogLevel = *logLevel
		case "verbose":
			cfg.Verbose = *verbose
		case "trace":
			cfg.Trace = *traceSpans
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.InitLogger(cfg.LogLevel, stderr)
	if cfg.Trace {
		shutdown := observability.InitTracer("pairup", logger)
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", "error", err)
			}
		}()
	}

	left, right, err := load(cfg.Input)
	if err != nil {
		return err
	}
	logger.Debug("input parsed", "source", source(cfg.Input), "rows", len(left))

	switch cfg.Part {
	case config.PartDifference:
		score := pairup.DifferenceScore(left, right)
		logger.Info("difference score computed", "score", score)
		if _, err := fmt.Fprintf(stdout, "part1: %d\n", score); err != nil {
			return err
		}
	case config.PartSimilarity:
		score := pairup.SimilarityScore(left, right)
		logger.Info("similarity score computed", "score", score)
		if _, err := fmt.Fprintf(stdout, "part2: %d\n", score); err != nil {
			return err
		}
	default:
		report, err := pairup.Evaluate(ctx, left, right)
		if err != nil {
			return err
		}
		logger.Info("scores computed", "rows", report.Rows, "difference", report.Difference, "similarity", report.Similarity)
		if _, err := fmt.Fprintf(stdout, "part1: %d\npart2: %d\n", report.Difference, report.Similarity); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		lr := &pairup.ListReconcilerImpl{}
		lr.SetLists(left, right)
		lr.ComputeDifference()
		lr.ComputeSimilarity()
		return lr.DisplayResults(stdout)
	}
	return nil
}

func load(path string) ([]uint32, []uint32, error) {
	if path == "" {
		return pairup.Parse(pairup.Input())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	left, right, err := pairup.ParseReader(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return left, right, nil
}

func source(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
