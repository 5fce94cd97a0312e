// Package input reads puzzle inputs and sample files.
//
// Puzzle inputs live in a directory as "<id>.txt" (e.g. data/day05.txt) and
// are read whole. Samples are YAML documents pairing a small input with the
// expected answer:
//
//	samples:
//	  - puzzle: day05
//	    part: 1
//	    want: 35
//	    input: |
//	      seeds: 79 14 55 13
//	      ...
//
// A default sample set covering every registered puzzle is embedded.
package input
