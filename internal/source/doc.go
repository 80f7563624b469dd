// Package source reads and writes almanac catalogues.
//
// Two formats are understood. The text format is line oriented:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each header names a source and destination category; the numeric lines
// below it are (dest, source, length) triples. Blank lines separate sections.
//
// The YAML format carries the same data:
//
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - [50, 98, 2]
//	      - {dest: 52, source: 50, length: 48}
//
// A rule may be written as a three-element sequence or as a mapping.
package source
