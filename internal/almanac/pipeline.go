package almanac

import "aoc2023/internal/span"

// Pipeline is the ordered sequence of stages applied left to right.
type Pipeline []Stage

// Step records the value produced by one stage.
type Step struct {
	Stage string
	Value uint64
}

// Apply folds v through every stage.
func (p Pipeline) Apply(v uint64) uint64 {
	for _, st := range p {
		v = st.Transform(v)
	}

	return v
}

// Trace folds v through every stage and records each intermediate value.
func (p Pipeline) Trace(v uint64) []Step {
	steps := make([]Step, 0, len(p))
	for _, st := range p {
		v = st.Transform(v)
		steps = append(steps, Step{Stage: st.Name, Value: v})
	}

	return steps
}

// ApplySpans folds a set of spans through every stage. Each stage consumes
// all spans the previous stage emitted.
func (p Pipeline) ApplySpans(spans []span.Span) []span.Span {
	for _, st := range p {
		next := make([]span.Span, 0, len(spans))
		for _, s := range spans {
			next = append(next, st.TransformSpan(s)...)
		}

		spans = next
	}

	return spans
}

// Names returns the stage names in pipeline order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, st := range p {
		names[i] = st.Name
	}

	return names
}
