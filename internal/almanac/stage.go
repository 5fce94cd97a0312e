package almanac

import "aoc2023/internal/span"

// Stage is one named transformation step, e.g. "seed-to-soil".
type Stage struct {
	Name    string
	Entries []Entry
}

// Transform maps v through the first entry that covers it, in source
// order. Uncovered values pass through unchanged.
func (st Stage) Transform(v uint64) uint64 {
	for _, e := range st.Entries {
		if mapped, ok := e.Transform(v); ok {
			return mapped
		}
	}

	return v
}

// TransformSpan splits s along the entry boundaries and maps every piece.
//
// The result partitions s: each value of s lands in exactly one output
// span. Portions claimed by an earlier entry are not offered to later
// ones, so overlapping entries resolve the same way Transform does.
// Output spans are not merged.
func (st Stage) TransformSpan(s span.Span) []span.Span {
	if s.Empty() {
		return nil
	}

	var out []span.Span

	pending := []span.Span{s}
	for _, e := range st.Entries {
		var next []span.Span

		for _, p := range pending {
			mapped, rest, ok := e.TransformSpan(p)
			if ok {
				out = append(out, mapped)
			}

			next = append(next, rest...)
		}

		pending = next
		if len(pending) == 0 {
			break
		}
	}

	// Identity for whatever no entry covered.
	return append(out, pending...)
}
