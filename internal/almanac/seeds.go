package almanac

import (
	"fmt"

	"aoc2023/internal/common"
	"aoc2023/internal/diagnostic"
	"aoc2023/internal/span"
)

// Seeds is the raw list of numbers from the seed header.
type Seeds []uint64

// Spans reads the seeds as (start, length) pairs of half-open ranges.
func (s Seeds) Spans() ([]span.Span, error) {
	pairs, ok := common.Pairs(s)
	if !ok {
		return nil, diagnostic.Malformed(0, "", "seed ranges need an even number of values, got %d", len(s))
	}

	spans := make([]span.Span, 0, len(pairs))
	for _, p := range pairs {
		start, length := p[0], p[1]
		if length == 0 {
			return nil, diagnostic.Malformed(0, fmt.Sprintf("%d %d", start, length), "seed range has zero length")
		}

		sp, ok := span.New(start, length)
		if !ok {
			return nil, diagnostic.Overflow(0, fmt.Sprintf("%d %d", start, length), nil)
		}

		spans = append(spans, sp)
	}

	return spans, nil
}
