package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a diagnostic error.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	KindMalformed
	KindOverflow
	KindNoSolution
)

// Sentinels for errors.Is. Every *Error matches the sentinel of its Kind.
var (
	ErrMalformed  = errors.New("malformed input")
	ErrOverflow   = errors.New("numeric overflow")
	ErrNoSolution = errors.New("no solution")
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindOverflow:
		return "overflow"
	case KindNoSolution:
		return "no-solution"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMalformed:
		return ErrMalformed
	case KindOverflow:
		return ErrOverflow
	case KindNoSolution:
		return ErrNoSolution
	default:
		return nil
	}
}

// Error is a single diagnostic raised while parsing or solving a puzzle.
type Error struct {
	// Kind of the failure.
	Kind Kind
	// Line is the 1-based input line, or 0 when not tied to a line.
	Line int
	// Token is the offending input fragment, if any.
	Token string
	// Message is the human-readable description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error returns a formatted diagnostic string.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}

	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(s.Error())
	} else {
		b.WriteString(e.Kind.String())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}

	if e.Token != "" {
		fmt.Fprintf(&b, " (%q)", e.Token)
	}

	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// Malformed returns a KindMalformed error for the given line and token.
func Malformed(line int, token, format string, args ...any) *Error {
	return &Error{
		Kind:    KindMalformed,
		Line:    line,
		Token:   token,
		Message: fmt.Sprintf(format, args...),
	}
}

// Overflow returns a KindOverflow error wrapping cause.
func Overflow(line int, token string, cause error) *Error {
	return &Error{
		Kind:    KindOverflow,
		Line:    line,
		Token:   token,
		Message: "value does not fit in 64 bits",
		Err:     cause,
	}
}

// NoSolution returns a KindNoSolution error.
func NoSolution(format string, args ...any) *Error {
	return &Error{
		Kind:    KindNoSolution,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}

	return 0
}
