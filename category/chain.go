package category

import (
	"fmt"
	"strings"
)

// Chain is an ordered, duplicate-free list of categories. Values move along
// it one position at a time.
type Chain struct {
	order []Category
	pos   map[Category]int
}

// DefaultChain is the Seed -> Location sequence.
var DefaultChain = MustChain(Seed, Soil, Fertilizer, Water, Light, Temperature, Humidity, Location)

// NewChain builds a chain from the given order.
func NewChain(order ...Category) (Chain, error) {
	if len(order) == 0 {
		return Chain{}, fmt.Errorf("%w: empty", ErrInvalidChain)
	}

	pos := make(map[Category]int, len(order))

	for i, c := range order {
		if !c.IsValid() {
			return Chain{}, fmt.Errorf("%w: %s at position %d", ErrInvalidChain, c, i)
		}

		if _, dup := pos[c]; dup {
			return Chain{}, fmt.Errorf("%w: %s repeated", ErrInvalidChain, c)
		}

		pos[c] = i
	}

	return Chain{order: append([]Category(nil), order...), pos: pos}, nil
}

// MustChain is like NewChain but panics on error. Intended for package-level declarations.
func MustChain(order ...Category) Chain {
	c, err := NewChain(order...)
	if err != nil {
		panic(err)
	}

	return c
}

// ParseChain builds a chain from category names.
func ParseChain(names []string) (Chain, error) {
	order := make([]Category, 0, len(names))

	for _, n := range names {
		c, err := Parse(n)
		if err != nil {
			return Chain{}, err
		}

		order = append(order, c)
	}

	return NewChain(order...)
}

// Len returns the number of categories in the chain.
func (ch Chain) Len() int { return len(ch.order) }

// First returns the head of the chain.
func (ch Chain) First() Category {
	if len(ch.order) == 0 {
		return 0
	}

	return ch.order[0]
}

// Last returns the terminal category of the chain.
func (ch Chain) Last() Category {
	if len(ch.order) == 0 {
		return 0
	}

	return ch.order[len(ch.order)-1]
}

// Categories returns a copy of the chain order.
func (ch Chain) Categories() []Category {
	return append([]Category(nil), ch.order...)
}

// Index returns the position of c in the chain, or -1.
func (ch Chain) Index(c Category) int {
	if i, ok := ch.pos[c]; ok {
		return i
	}

	return -1
}

// Contains reports whether c is part of the chain.
func (ch Chain) Contains(c Category) bool {
	_, ok := ch.pos[c]
	return ok
}

// Predecessor returns the category immediately before c.
func (ch Chain) Predecessor(c Category) (Category, error) {
	i, ok := ch.pos[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotInChain, c)
	}

	if i == 0 {
		return 0, fmt.Errorf("%w: %s is first", ErrNoPredecessor, c)
	}

	return ch.order[i-1], nil
}

// Successor returns the category immediately after c.
func (ch Chain) Successor(c Category) (Category, error) {
	i, ok := ch.pos[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotInChain, c)
	}

	if i == len(ch.order)-1 {
		return 0, fmt.Errorf("%w: %s is last", ErrNoSuccessor, c)
	}

	return ch.order[i+1], nil
}

// Distance returns the number of hops from one category to another.
// It is positive when to lies after from, negative when before.
func (ch Chain) Distance(from, to Category) (int, error) {
	i, ok := ch.pos[from]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotInChain, from)
	}

	j, ok := ch.pos[to]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotInChain, to)
	}

	return j - i, nil
}

// Adjacent reports whether to immediately follows from.
func (ch Chain) Adjacent(from, to Category) bool {
	d, err := ch.Distance(from, to)
	return err == nil && d == 1
}

// String renders the chain as "Seed -> Soil -> ...".
func (ch Chain) String() string {
	parts := make([]string, len(ch.order))
	for i, c := range ch.order {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}
