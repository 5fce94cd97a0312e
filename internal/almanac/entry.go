package almanac

import (
	"aoc2023/internal/diagnostic"
	"aoc2023/internal/span"
)

// Entry is one remapping rule of a stage: the source range
// [SourceStart, SourceStart+Length) maps onto
// [DestinationStart, DestinationStart+Length).
type Entry struct {
	DestinationStart uint64
	SourceStart      uint64
	Length           uint64
}

// NewEntry validates and returns an Entry. Length must be positive and both
// ranges must fit in uint64.
func NewEntry(destination, source, length uint64) (Entry, error) {
	if length == 0 {
		return Entry{}, diagnostic.Malformed(0, "", "map entry has zero length")
	}

	if _, ok := span.New(source, length); !ok {
		return Entry{}, diagnostic.Overflow(0, "", nil)
	}

	if _, ok := span.New(destination, length); !ok {
		return Entry{}, diagnostic.Overflow(0, "", nil)
	}

	return Entry{DestinationStart: destination, SourceStart: source, Length: length}, nil
}

// Source returns the half-open source range.
func (e Entry) Source() span.Span {
	return span.Span{Start: e.SourceStart, End: e.SourceStart + e.Length}
}

// Transform maps v when it lies in the source range.
func (e Entry) Transform(v uint64) (uint64, bool) {
	if !e.Source().Contains(v) {
		return 0, false
	}

	return e.DestinationStart + (v - e.SourceStart), true
}

// TransformSpan maps the part of s covered by the source range and returns
// the uncovered leftovers unchanged. ok is false when nothing overlaps, in
// which case rest is s itself.
func (e Entry) TransformSpan(s span.Span) (mapped span.Span, rest []span.Span, ok bool) {
	src := e.Source()

	hit := s.Intersect(src)
	if hit.Empty() {
		return span.Span{}, []span.Span{s}, false
	}

	return hit.Translate(e.SourceStart, e.DestinationStart), s.Subtract(src), true
}
