package puzzle

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Part selects which half of a puzzle is solved.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// String returns "part1" or "part2".
func (p Part) String() string {
	return "part" + strconv.Itoa(int(p))
}

// Env carries the ambient settings a solver may use.
type Env struct {
	// Workers bounds concurrent evaluation inside a solver.
	Workers int
	// Logger receives solver debug output. Never nil once passed to Solve.
	Logger *zap.Logger
}

// Puzzle is one registered solver.
type Puzzle struct {
	ID    string
	Title string

	// Parse converts the whole input text into the solver's input.
	Parse func(input string) (any, error)
	// Solve computes the answer for a parsed input.
	Solve func(ctx context.Context, parsed any, part Part, env Env) (uint64, error)
	// Trace optionally writes a human-readable walk-through of a parsed input.
	Trace func(parsed any, part Part, w io.Writer) error
}

// New builds a Puzzle from typed parse and solve functions.
func New[T any](
	id, title string,
	parse func(string) (T, error),
	solve func(context.Context, T, Part, Env) (uint64, error),
) Puzzle {
	return Puzzle{
		ID:    id,
		Title: title,
		Parse: func(input string) (any, error) {
			return parse(input)
		},
		Solve: func(ctx context.Context, parsed any, part Part, env Env) (uint64, error) {
			v, ok := parsed.(T)
			if !ok {
				return 0, fmt.Errorf("puzzle %s: unexpected input type %T", id, parsed)
			}

			return solve(ctx, v, part, env)
		},
	}
}

// Registry maps puzzle IDs to solvers.
type Registry struct {
	puzzles map[string]Puzzle
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		puzzles: make(map[string]Puzzle),
	}
}

// Add registers p. The ID is normalized; registering the same ID twice is
// an error.
func (r *Registry) Add(p Puzzle) error {
	id, err := NormalizeID(p.ID)
	if err != nil {
		return err
	}

	if p.Parse == nil || p.Solve == nil {
		return fmt.Errorf("puzzle %s: parse and solve are required", id)
	}

	if _, exists := r.puzzles[id]; exists {
		return fmt.Errorf("puzzle %s already registered", id)
	}

	p.ID = id
	r.puzzles[id] = p

	return nil
}

// Get returns the puzzle registered under id.
func (r *Registry) Get(id string) (Puzzle, bool) {
	norm, err := NormalizeID(id)
	if err != nil {
		return Puzzle{}, false
	}

	p, ok := r.puzzles[norm]

	return p, ok
}

// Has returns true if a puzzle with the given id exists.
func (r *Registry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns all registered IDs in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.puzzles))
	for id := range r.puzzles {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Run parses input and solves it with the puzzle registered under id.
func (r *Registry) Run(ctx context.Context, id string, part Part, input string, env Env) (uint64, error) {
	p, err := r.Lookup(id)
	if err != nil {
		return 0, err
	}

	parsed, err := p.ParseInput(input)
	if err != nil {
		return 0, err
	}

	return p.SolveParsed(ctx, parsed, part, env)
}

// Lookup is Get with an error for unknown ids.
func (r *Registry) Lookup(id string) (Puzzle, error) {
	p, ok := r.Get(id)
	if !ok {
		return Puzzle{}, fmt.Errorf("puzzle %q not registered", id)
	}

	return p, nil
}

// ParseInput runs p.Parse and wraps its error with the puzzle id.
func (p Puzzle) ParseInput(input string) (any, error) {
	parsed, err := p.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.ID, err)
	}

	return parsed, nil
}

// SolveParsed runs p.Solve on an already parsed input. A nil env.Logger is
// replaced by a no-op logger.
func (p Puzzle) SolveParsed(ctx context.Context, parsed any, part Part, env Env) (uint64, error) {
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}

	answer, err := p.Solve(ctx, parsed, part, env)
	if err != nil {
		return 0, fmt.Errorf("solve %s %s: %w", p.ID, part, err)
	}

	return answer, nil
}

// NormalizeID turns "5", "05", "day5" or "Day05" into "day05".
func NormalizeID(id string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(id))
	s = strings.TrimPrefix(s, "day")

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 25 {
		return "", fmt.Errorf("invalid puzzle id %q: want a day number between 1 and 25", id)
	}

	return fmt.Sprintf("day%02d", n), nil
}

// ParsePart accepts 1 or 2.
func ParsePart(n int) (Part, error) {
	switch Part(n) {
	case PartOne, PartTwo:
		return Part(n), nil
	default:
		return 0, fmt.Errorf("invalid part %d: want 1 or 2", n)
	}
}
