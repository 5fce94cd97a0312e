package puzzle

import (
	"context"
	"fmt"
	"io"
	"strings"

	"aoc2023/internal/almanac"
	"aoc2023/internal/span"
)

// Default returns a registry with every implemented puzzle.
func Default() *Registry {
	r := NewRegistry()

	for _, p := range []Puzzle{almanacPuzzle()} {
		if err := r.Add(p); err != nil {
			panic(err)
		}
	}

	return r
}

func almanacPuzzle() Puzzle {
	p := New("day05", "If You Give A Seed A Fertilizer", almanac.Parse, solveAlmanac)
	p.Trace = traceAlmanac

	return p
}

func almanacMode(part Part) almanac.Mode {
	if part == PartTwo {
		return almanac.ModeRange
	}

	return almanac.ModeDiscrete
}

func solveAlmanac(ctx context.Context, a *almanac.Almanac, part Part, env Env) (uint64, error) {
	s := almanac.Solver{Workers: env.Workers, Logger: env.Logger}
	return s.Solve(ctx, a, almanacMode(part))
}

func traceAlmanac(parsed any, part Part, w io.Writer) error {
	a, ok := parsed.(*almanac.Almanac)
	if !ok {
		return fmt.Errorf("day05: unexpected input type %T", parsed)
	}

	fmt.Fprintf(w, "stages: %s\n", strings.Join(a.Pipeline.Names(), " -> "))

	if almanacMode(part) == almanac.ModeRange {
		spans, err := a.Seeds.Spans()
		if err != nil {
			return err
		}

		for _, s := range spans {
			fmt.Fprintf(w, "seeds %v", s)

			cur := []span.Span{s}
			for _, st := range a.Pipeline {
				cur = almanac.Pipeline{st}.ApplySpans(cur)
				fmt.Fprintf(w, " -> %s: %d ranges", st.Name, len(cur))
			}

			fmt.Fprintln(w)
		}

		return nil
	}

	for _, seed := range a.Seeds {
		fmt.Fprintf(w, "seed %d", seed)
		for _, step := range a.Pipeline.Trace(seed) {
			fmt.Fprintf(w, " -> %s: %d", step.Stage, step.Value)
		}

		fmt.Fprintln(w)
	}

	return nil
}
