package main

import (
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aoc2023/internal/input"
	"aoc2023/internal/puzzle"
)

type solveOptions struct {
	secondPart bool
	inputPath  string
	workers    int
	trace      bool
	dump       bool
}

func solveCmd(a *app) *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one puzzle and print the answer",
		Long: `Solve one puzzle and print the answer on stdout.

The day may be given as 5, 05, day5 or day05. The input is read from
<input-dir>/<id>.txt unless --input is set; "--input -" reads stdin.`,
		Example: `  aoc2023 solve 5
  aoc2023 solve day05 --second-part --input my-input.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				opts.workers = a.cfg.Workers
			}

			return a.runSolve(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.secondPart, "second-part", "s", false, "Solve part two instead of part one")
	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "Input file path, or - for stdin (default: <input-dir>/<id>.txt)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Concurrent workers, 0 = GOMAXPROCS (default: AOC_WORKERS)")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print a walk-through of the computation to stderr")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the parsed input to stderr")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, day string, opts solveOptions) error {
	if opts.workers < 0 {
		return fmt.Errorf("invalid workers %d: must not be negative", opts.workers)
	}

	p, err := a.registry.Lookup(day)
	if err != nil {
		return err
	}

	part := puzzle.PartOne
	if opts.secondPart {
		part = puzzle.PartTwo
	}

	path := opts.inputPath
	if path == "" {
		path = input.Path(a.cfg.InputDir, p.ID)
	}

	log := a.logger.With(zap.String("puzzle", p.ID), zap.Stringer("part", part))

	text, err := input.ReadFile(path)
	if err != nil {
		return err
	}

	log.Debug("Read input", zap.String("path", path), zap.Int("bytes", len(text)))

	parsed, err := p.ParseInput(text)
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Fdump(cmd.ErrOrStderr(), parsed)
	}

	if opts.trace && p.Trace != nil {
		if err := p.Trace(parsed, part, cmd.ErrOrStderr()); err != nil {
			return fmt.Errorf("trace %s: %w", p.ID, err)
		}
	}

	start := time.Now()

	answer, err := p.SolveParsed(cmd.Context(), parsed, part, puzzle.Env{Workers: opts.workers, Logger: log})
	if err != nil {
		return err
	}

	log.Info("Solved", zap.Uint64("answer", answer), zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), answer)

	return nil
}
