package engine

import "errors"

var (
	// ErrMissingTable is returned by forward resolution when no table starts at a category.
	ErrMissingTable = errors.New("missing table")
	// ErrInvalidTables is returned by New in strict mode when validation reports errors.
	ErrInvalidTables = errors.New("invalid tables")
	// ErrNoSeeds is returned when a minimum is requested over an empty seed list.
	ErrNoSeeds = errors.New("no seeds")
	// ErrOddSeedRanges is returned when seeds cannot be read as (start, length) pairs.
	ErrOddSeedRanges = errors.New("seed ranges must come in start/length pairs")
)
