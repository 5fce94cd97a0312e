// Package almanac solves the seed almanac puzzle: seeds are pushed through
// an ordered pipeline of stage maps, each a set of piecewise-linear
// remapping rules, and the smallest resulting location is reported.
//
// # Input format
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each map row is "<destination start> <source start> <length>". Values not
// covered by any row of a stage map to themselves. Stage order in the text
// is pipeline order.
//
// # Modes
//
//   - ModeDiscrete: every seed value is folded through the pipeline.
//   - ModeRange: seed values are read as (start, length) pairs and whole
//     half-open ranges are split and shifted stage by stage, so the cost is
//     independent of the range sizes.
package almanac
