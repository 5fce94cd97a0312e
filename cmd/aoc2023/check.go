package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"aoc2023/internal/input"
	"aoc2023/internal/puzzle"
)

func checkCmd(a *app) *cobra.Command {
	var samplesPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run every solver against its known samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, samplesPath)
		},
	}

	cmd.Flags().StringVar(&samplesPath, "samples", "", "Samples YAML file (default: embedded samples)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, samplesPath string) error {
	sf, err := loadSamples(samplesPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	env := puzzle.Env{Workers: a.cfg.Workers, Logger: a.logger}

	failed := 0
	for _, s := range sf.Samples {
		part, err := puzzle.ParsePart(s.Part)
		if err != nil {
			return err
		}

		got, err := a.registry.Run(cmd.Context(), s.Puzzle, part, s.Input, env)

		switch {
		case err != nil:
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", s.Label(), err)
		case got != s.Want:
			failed++
			fmt.Fprintf(out, "FAIL %s: got %d, want %d\n", s.Label(), got, s.Want)
		default:
			fmt.Fprintf(out, "ok   %s (%d)\n", s.Label(), got)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d samples failed", failed, len(sf.Samples))
	}

	return nil
}

func loadSamples(path string) (*input.SampleFile, error) {
	if path == "" {
		return input.DefaultSamples()
	}

	return input.LoadSamples(path)
}
