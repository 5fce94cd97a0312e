package almanac

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aoc2023/internal/common"
	"aoc2023/internal/diagnostic"
	"aoc2023/internal/span"
)

// Solver finds the lowest location reachable from an almanac's seeds.
//
// Seeds (or seed ranges) are independent of each other, so they are
// evaluated concurrently by up to Workers goroutines.
type Solver struct {
	// Workers bounds concurrent evaluation. Zero or negative means GOMAXPROCS.
	Workers int
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// Solve runs a with a single worker and no logging.
func Solve(a *Almanac, mode Mode) (uint64, error) {
	s := Solver{Workers: 1}
	return s.Solve(context.Background(), a, mode)
}

// Solve returns the minimum location for a under mode. An empty seed set or
// empty pipeline is reported as diagnostic.ErrNoSolution.
func (s *Solver) Solve(ctx context.Context, a *Almanac, mode Mode) (uint64, error) {
	if a == nil || common.IsEmpty(a.Seeds) {
		return 0, diagnostic.NoSolution("empty seed set")
	}

	if common.IsEmpty(a.Pipeline) {
		return 0, diagnostic.NoSolution("empty pipeline")
	}

	log := s.logger().With(zap.Stringer("mode", mode))

	switch mode {
	case ModeDiscrete:
		log.Debug("Solving seeds",
			zap.Int("seeds", len(a.Seeds)),
			zap.Int("stages", len(a.Pipeline)))

		return s.minimum(ctx, len(a.Seeds), func(i int) uint64 {
			return a.Pipeline.Apply(a.Seeds[i])
		})

	case ModeRange:
		spans, err := a.Seeds.Spans()
		if err != nil {
			return 0, err
		}

		log.Debug("Solving seed ranges",
			zap.Int("ranges", len(spans)),
			zap.Uint64("values", span.TotalLen(spans)),
			zap.Int("stages", len(a.Pipeline)))

		return s.minimum(ctx, len(spans), func(i int) uint64 {
			out := a.Pipeline.ApplySpans(spans[i : i+1])
			log.Debug("Seed range mapped",
				zap.Stringer("range", spans[i]),
				zap.Int("pieces", len(out)))

			// A non-empty input always yields at least one piece.
			m, _ := span.MinStart(out)

			return m
		})

	default:
		return 0, fmt.Errorf("unknown mode %v", mode)
	}
}

// minimum evaluates fn for every index in [0, n) and returns the smallest
// result. n must be positive.
func (s *Solver) minimum(ctx context.Context, n int, fn func(i int) uint64) (uint64, error) {
	results := make([]uint64, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = fn(i)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("solving almanac: %w", err)
	}

	m := results[0]
	for _, r := range results[1:] {
		m = min(m, r)
	}

	return m, nil
}

func (s *Solver) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}

	return runtime.GOMAXPROCS(0)
}

func (s *Solver) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}

	return s.Logger
}
