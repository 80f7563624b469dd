package almanac

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"seed-almanac/category"
)

// ErrDuplicateTable is returned when two tables share the category an Index is keyed by.
var ErrDuplicateTable = errors.New("duplicate table")

// Pair identifies a table by its two categories. It carries no magnitudes.
type Pair struct {
	From category.Category
	To   category.Category
}

// String renders the pair the way almanac headers name it: "seed-to-soil".
func (p Pair) String() string {
	return p.From.Name() + "-to-" + p.To.Name()
}

// Tables maps category pairs to their rules. Built once by a producer and
// read-only afterwards.
type Tables map[Pair]Rules

// Almanac is what a producer yields: the raw seed numbers and the tables.
type Almanac struct {
	Seeds  []int64
	Tables Tables
}

// Pairs returns the keys of t ordered by destination, then source.
func (t Tables) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t))
	for p := range t {
		pairs = append(pairs, p)
	}

	slices.SortFunc(pairs, func(a, b Pair) int {
		if c := cmp.Compare(a.To, b.To); c != 0 {
			return c
		}

		return cmp.Compare(a.From, b.From)
	})

	return pairs
}

// Add appends rules to the table for p, creating it if needed.
func (t Tables) Add(p Pair, rules ...Rule) {
	t[p] = append(t[p], rules...)
}

// FindTable returns the rules of the first table, in Pairs order, whose
// destination category is queried.
func FindTable(queried category.Category, tables Tables) (Rules, bool) {
	for _, p := range tables.Pairs() {
		if p.To == queried {
			return tables[p], true
		}
	}

	return nil, false
}

// Index holds tables keyed by a single category.
type Index struct {
	rules map[category.Category]Rules
	pairs map[category.Category]Pair
}

// NewDestIndex keys tables by their destination category.
func NewDestIndex(tables Tables) (Index, error) {
	return newIndex(tables, func(p Pair) category.Category { return p.To }, "destination")
}

// NewSourceIndex keys tables by their source category.
func NewSourceIndex(tables Tables) (Index, error) {
	return newIndex(tables, func(p Pair) category.Category { return p.From }, "source")
}

func newIndex(tables Tables, key func(Pair) category.Category, side string) (Index, error) {
	idx := Index{
		rules: make(map[category.Category]Rules, len(tables)),
		pairs: make(map[category.Category]Pair, len(tables)),
	}

	for _, p := range tables.Pairs() {
		k := key(p)
		if prev, dup := idx.pairs[k]; dup {
			return Index{}, fmt.Errorf("%w: %s and %s share %s %s", ErrDuplicateTable, prev, p, side, k)
		}

		idx.rules[k] = tables[p]
		idx.pairs[k] = p
	}

	return idx, nil
}

// Lookup returns the rules keyed by c.
func (idx Index) Lookup(c category.Category) (Rules, bool) {
	rs, ok := idx.rules[c]
	return rs, ok
}

// Pair returns the table key stored under c.
func (idx Index) Pair(c category.Category) (Pair, bool) {
	p, ok := idx.pairs[c]
	return p, ok
}

// Len returns the number of indexed tables.
func (idx Index) Len() int {
	return len(idx.rules)
}
