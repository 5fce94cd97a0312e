// Package span provides half-open uint64 ranges and the set arithmetic the
// almanac range semantics are built on.
package span

import "fmt"

// Span is the half-open range [Start, End).
type Span struct {
	// Start is the inclusive start of the range.
	Start uint64

	// End is the exclusive end of the range.
	End uint64
}

// New returns the span [start, start+length). ok is false when the end
// does not fit in a uint64.
func New(start, length uint64) (s Span, ok bool) {
	end := start + length
	if end < start {
		return Span{}, false
	}

	return Span{Start: start, End: end}, true
}

// Len returns the number of values in s.
func (s Span) Len() uint64 {
	return s.End - s.Start
}

// Empty returns true if s contains no values.
func (s Span) Empty() bool {
	return s.Start >= s.End
}

// Contains returns true if s contains x.
func (s Span) Contains(x uint64) bool {
	return s.Start <= x && x < s.End
}

// Overlaps returns true if s and o share at least one value.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Intersect returns the values s and o have in common. If they do not
// overlap the result is Empty.
func (s Span) Intersect(o Span) Span {
	if s.Start < o.Start {
		s.Start = o.Start
	}
	if s.End > o.End {
		s.End = o.End
	}
	if s.End < s.Start {
		s.End = s.Start
	}

	return s
}

// Subtract returns the parts of s not covered by o, in ascending order.
// Empty pieces are dropped, so the result holds zero, one or two spans.
func (s Span) Subtract(o Span) []Span {
	if !s.Overlaps(o) {
		if s.Empty() {
			return nil
		}

		return []Span{s}
	}

	var out []Span
	if s.Start < o.Start {
		out = append(out, Span{Start: s.Start, End: o.Start})
	}
	if o.End < s.End {
		out = append(out, Span{Start: o.End, End: s.End})
	}

	return out
}

// Translate moves s from the coordinate space starting at from into the
// space starting at to, keeping its length.
func (s Span) Translate(from, to uint64) Span {
	return Span{Start: to + (s.Start - from), End: to + (s.End - from)}
}

// String renders s as [Start, End).
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// MinStart returns the smallest Start across spans. ok is false when spans
// is empty.
func MinStart(spans []Span) (minStart uint64, ok bool) {
	for i, s := range spans {
		if i == 0 || s.Start < minStart {
			minStart = s.Start
		}
	}

	return minStart, len(spans) > 0
}

// TotalLen returns the sum of the lengths of spans.
func TotalLen(spans []Span) uint64 {
	var total uint64
	for _, s := range spans {
		total += s.Len()
	}

	return total
}
