package almanac

import (
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"aoc2023/internal/span"
)

func TestStage_Transform_Boundary(t *testing.T) {
	st := Stage{
		Name:    "seed-to-soil",
		Entries: []Entry{{DestinationStart: 50, SourceStart: 98, Length: 2}},
	}

	assert.Equal(t, uint64(51), st.Transform(99))
	assert.Equal(t, uint64(97), st.Transform(97))
	assert.Equal(t, uint64(100), st.Transform(100))
}

func TestStage_Transform_Identity(t *testing.T) {
	a := mustParse(t, exampleInput)
	r := rand.New(rand.NewPCG(5, 5))

	for _, st := range a.Pipeline {
		for range 200 {
			v := r.Uint64N(200)

			covered := false
			for _, e := range st.Entries {
				if e.Source().Contains(v) {
					covered = true
				}
			}

			if !covered {
				assert.Equal(t, v, st.Transform(v), "%s(%d)", st.Name, v)
			}
		}
	}

	empty := Stage{Name: "empty"}
	assert.Equal(t, uint64(12345), empty.Transform(12345))
}

func TestStage_Transform_FirstMatchWins(t *testing.T) {
	st := Stage{Entries: []Entry{
		{DestinationStart: 100, SourceStart: 0, Length: 10},
		{DestinationStart: 200, SourceStart: 5, Length: 10},
	}}

	assert.Equal(t, uint64(107), st.Transform(7))
	assert.Equal(t, uint64(205), st.Transform(10))
}

func TestStage_TransformSpan(t *testing.T) {
	soil := Stage{
		Name: "seed-to-soil",
		Entries: []Entry{
			{DestinationStart: 50, SourceStart: 98, Length: 2},
			{DestinationStart: 52, SourceStart: 50, Length: 48},
		},
	}

	tests := []struct {
		name string
		in   span.Span
		want []span.Span
	}{
		{"seed range 79+14", span.Span{Start: 79, End: 93}, []span.Span{{Start: 81, End: 95}}},
		{"below all entries", span.Span{Start: 0, End: 50}, []span.Span{{Start: 0, End: 50}}},
		{
			name: "spans both entries and beyond",
			in:   span.Span{Start: 45, End: 105},
			want: []span.Span{
				{Start: 50, End: 52},   // [98, 100)
				{Start: 52, End: 100},  // [50, 98)
				{Start: 45, End: 50},   // identity
				{Start: 100, End: 105}, // identity
			},
		},
		{"empty input", span.Span{Start: 7, End: 7}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := soil.TransformSpan(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TransformSpan(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestStage_TransformSpan_FirstMatchWins(t *testing.T) {
	st := Stage{Entries: []Entry{
		{DestinationStart: 100, SourceStart: 0, Length: 10},
		{DestinationStart: 200, SourceStart: 5, Length: 10},
	}}

	got := st.TransformSpan(span.Span{Start: 0, End: 20})
	want := []span.Span{
		{Start: 100, End: 110},
		{Start: 205, End: 210}, // [10, 15) only; [5, 10) was claimed first
		{Start: 15, End: 20},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// Every value of the input lands in exactly one output span, at the same
// place the discrete transform sends it.
func TestStage_TransformSpan_Conservation(t *testing.T) {
	const domain = 120

	r := rand.New(rand.NewPCG(1, 2))

	for iter := range 300 {
		st := randomStage(r, domain, iter%2 == 1)

		lo := r.Uint64N(domain)
		hi := lo + 1 + r.Uint64N(domain-lo)
		in := span.Span{Start: lo, End: hi}

		out := st.TransformSpan(in)

		want := map[uint64]int{}
		for v := lo; v < hi; v++ {
			want[st.Transform(v)]++
		}

		got := map[uint64]int{}
		for _, s := range out {
			assert.False(t, s.Empty(), "empty output span")
			for v := s.Start; v < s.End; v++ {
				got[v]++
			}
		}

		if !assert.Equal(t, want, got, "input %v", in) {
			t.Logf("stage: %s", spew.Sdump(st))
			t.Logf("output: %v", out)

			return
		}

		assert.Equal(t, in.Len(), span.TotalLen(out))
	}
}
