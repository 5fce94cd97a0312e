package almanac

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"aoc2023/internal/diagnostic"
)

func TestSolve_Example(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected uint64
	}{
		{ModeDiscrete, 35},
		{ModeRange, 46},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got, err := Solve(mustParse(t, exampleInput), tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSolve_NoSolution(t *testing.T) {
	tests := []struct {
		name  string
		input *Almanac
	}{
		{"nil almanac", nil},
		{"empty seeds", &Almanac{Pipeline: Pipeline{{Name: "a-to-b"}}}},
		{"empty pipeline", &Almanac{Seeds: Seeds{1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{ModeDiscrete, ModeRange} {
				_, err := Solve(tt.input, mode)
				assert.ErrorIs(t, err, diagnostic.ErrNoSolution)
			}
		})
	}
}

func TestSolve_UnknownMode(t *testing.T) {
	_, err := Solve(mustParse(t, exampleInput), Mode(0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mode(0)")
}

func TestSolve_OddSeedsInRangeMode(t *testing.T) {
	a := mustParse(t, "seeds: 1 2 3\n\na-to-b map:\n0 0 1\n")

	_, err := Solve(a, ModeRange)
	assert.ErrorIs(t, err, diagnostic.ErrMalformed)

	got, err := Solve(a, ModeDiscrete)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestSolve_LargeRanges(t *testing.T) {
	// Brute force over these ranges would take billions of steps.
	a := mustParse(t, `seeds: 1000000000 4000000000 10 5

a-to-b map:
0 3000000000 1000000000

b-to-c map:
7 0 3
`)

	got, err := Solve(a, ModeRange)
	require.NoError(t, err)
	// [0, 1e9) leaves the first stage; only [0, 3) is remapped by the second.
	assert.Equal(t, uint64(3), got)
}

func TestSolver_ShuffleStable(t *testing.T) {
	a := mustParse(t, exampleInput)
	r := rand.New(rand.NewPCG(3, 4))

	reference := &Almanac{Seeds: Seeds{79, 14, 55, 13, 0, 3, 97, 5}, Pipeline: a.Pipeline}

	wantRange, err := Solve(reference, ModeRange)
	require.NoError(t, err)

	wantDiscrete, err := Solve(reference, ModeDiscrete)
	require.NoError(t, err)

	for range 20 {
		pairs := [][2]uint64{{79, 14}, {55, 13}, {0, 3}, {97, 5}}
		r.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

		seeds := make(Seeds, 0, 2*len(pairs))
		for _, p := range pairs {
			seeds = append(seeds, p[0], p[1])
		}

		shuffled := &Almanac{Seeds: seeds, Pipeline: a.Pipeline}

		s := Solver{Workers: 3}

		rangeMin, err := s.Solve(context.Background(), shuffled, ModeRange)
		require.NoError(t, err)

		discreteMin, err := s.Solve(context.Background(), shuffled, ModeDiscrete)
		require.NoError(t, err)

		assert.Equal(t, wantRange, rangeMin)
		assert.Equal(t, wantDiscrete, discreteMin)
	}
}

func TestSolver_Workers(t *testing.T) {
	a := mustParse(t, exampleInput)

	for _, workers := range []int{-1, 0, 1, 2, 16} {
		s := Solver{Workers: workers}

		got, err := s.Solve(context.Background(), a, ModeRange)
		require.NoError(t, err)
		assert.Equal(t, uint64(46), got, "workers=%d", workers)
	}
}

func TestSolver_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Solver{Workers: 2}

	_, err := s.Solve(ctx, mustParse(t, exampleInput), ModeDiscrete)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_Logs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := Solver{Workers: 1, Logger: zap.New(core)}

	_, err := s.Solve(context.Background(), mustParse(t, exampleInput), ModeRange)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Solving seed ranges").Len())
	assert.Equal(t, 2, logs.FilterMessage("Seed range mapped").Len())
}
