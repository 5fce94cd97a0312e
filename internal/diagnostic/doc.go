// Package diagnostic provides the structured errors reported by puzzle
// parsers and solvers.
//
// Key capabilities:
//   - Error kinds (malformed input, numeric overflow, no solution)
//   - Line and token of the offending input
//   - errors.Is matching against per-kind sentinels
package diagnostic
