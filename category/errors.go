package category

import "errors"

var (
	// ErrUnknownCategory is returned when a name or number does not denote a Category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNotInChain is returned when a value's category is not part of the chain it is stepped along.
	ErrNotInChain = errors.New("category not in chain")
	// ErrNoPredecessor is returned when stepping back from the first category of a chain.
	ErrNoPredecessor = errors.New("no predecessor category")
	// ErrNoSuccessor is returned when stepping forward from the last category of a chain.
	ErrNoSuccessor = errors.New("no successor category")
	// ErrInvalidChain is returned by NewChain for empty chains, invalid or repeated categories.
	ErrInvalidChain = errors.New("invalid category chain")
)
