package engine

import (
	"cmp"
	"fmt"
	"slices"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

// Interval is the half-open magnitude range [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// Len returns the number of magnitudes in the interval.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start
}

// String renders the interval as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// SeedIntervals reads seeds as (start, length) pairs. Zero-length pairs are dropped.
func SeedIntervals(seeds []int64) ([]Interval, error) {
	if len(seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d numbers", ErrOddSeedRanges, len(seeds))
	}

	out := make([]Interval, 0, len(seeds)/2)

	for i := 0; i < len(seeds); i += 2 {
		start, n := seeds[i], seeds[i+1]
		if n < 0 {
			return nil, fmt.Errorf("%w: negative length %d at pair %d", ErrOddSeedRanges, n, i/2)
		}

		if n > 0 {
			out = append(out, Interval{Start: start, End: almanac.WindowEnd(start, n)})
		}
	}

	return out, nil
}

// Merge sorts intervals and joins those that overlap or touch.
func Merge(intervals []Interval) []Interval {
	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := sorted[:0]

	for _, iv := range sorted {
		if iv.Len() <= 0 {
			continue
		}

		if n := len(out); n > 0 && iv.Start <= out[n-1].End {
			out[n-1].End = max(out[n-1].End, iv.End)
			continue
		}

		out = append(out, iv)
	}

	return out
}

// mapForward pushes intervals through one table. Rules are applied in list
// order, each claiming the part of the still-unclaimed input that lies in
// its source window, so overlapping rules resolve the same way as Rules.Forward.
func mapForward(rules almanac.Rules, in []Interval) []Interval {
	var out []Interval

	pending := slices.Clone(in)

	for _, r := range rules {
		if r.Length <= 0 {
			continue
		}

		lo, hi, off := r.Source, almanac.WindowEnd(r.Source, r.Length), r.Offset()

		var rest []Interval

		for _, iv := range pending {
			if end := min(iv.End, lo); iv.Start < end {
				rest = append(rest, Interval{Start: iv.Start, End: end})
			}

			if s, end := max(iv.Start, lo), min(iv.End, hi); s < end {
				out = append(out, Interval{Start: s + off, End: end + off})
			}

			if s := max(iv.Start, hi); s < iv.End {
				rest = append(rest, Interval{Start: s, End: iv.End})
			}
		}

		pending = rest
	}

	return Merge(append(out, pending...))
}

// ResolveIntervals walks intervals of category from forward to target,
// merging after every hop.
func (e *Engine) ResolveIntervals(from category.Category, intervals []Interval, target category.Category) ([]Interval, error) {
	hops, err := e.chain.Distance(from, target)
	if err != nil {
		return nil, err
	}

	if hops < 0 {
		return nil, fmt.Errorf("interval resolution runs forward only: %s is before %s", target, from)
	}

	if e.fwdErr != nil {
		return nil, e.fwdErr
	}

	current := Merge(intervals)
	c := from

	for range hops {
		rules, ok := e.forward.Lookup(c)
		if !ok {
			return nil, fmt.Errorf("%w: nothing maps from %s", ErrMissingTable, c)
		}

		current = mapForward(rules, current)

		if c, err = e.chain.Successor(c); err != nil {
			return nil, err
		}
	}

	return current, nil
}

// LowestInRanges reads seeds as (start, length) pairs and returns the
// smallest terminal value reachable from any of them.
func (e *Engine) LowestInRanges(seeds []int64) (category.Value, error) {
	intervals, err := SeedIntervals(seeds)
	if err != nil {
		return category.Value{}, err
	}

	if len(intervals) == 0 {
		return category.Value{}, ErrNoSeeds
	}

	out, err := e.ResolveIntervals(e.chain.First(), intervals, e.chain.Last())
	if err != nil {
		return category.Value{}, err
	}

	return category.New(e.chain.Last(), out[0].Start), nil
}
