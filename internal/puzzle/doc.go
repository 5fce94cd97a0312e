// Package puzzle holds the dispatch table of daily puzzle solvers.
//
// Every puzzle is a pair of functions: Parse turns the raw input text into
// a puzzle-specific value, Solve reduces that value to a single unsigned
// answer for part one or part two. Identifiers are "dayNN"; bare numbers
// and unpadded forms ("5", "day5") are accepted wherever an ID is looked up.
package puzzle
