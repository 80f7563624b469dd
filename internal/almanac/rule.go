package almanac

import (
	"fmt"
	"math"
)

// Rule maps the window [Source, Source+Length) onto [Dest, Dest+Length).
type Rule struct {
	Dest   int64
	Source int64
	Length int64
}

// ContainsDest reports whether m lies in the destination window.
func (r Rule) ContainsDest(m int64) bool {
	return within(m, r.Dest, r.Length)
}

// ContainsSource reports whether m lies in the source window.
func (r Rule) ContainsSource(m int64) bool {
	return within(m, r.Source, r.Length)
}

// within reports start <= m < start+length without overflowing int64.
func within(m, start, length int64) bool {
	return length > 0 && m >= start && uint64(m)-uint64(start) < uint64(length)
}

// WindowEnd returns start+length, saturated at math.MaxInt64.
func WindowEnd(start, length int64) int64 {
	if length > 0 && start > math.MaxInt64-length {
		return math.MaxInt64
	}

	return start + length
}

// Backward maps a destination magnitude to its source magnitude.
func (r Rule) Backward(m int64) (int64, bool) {
	if !r.ContainsDest(m) {
		return 0, false
	}

	return r.Source + (m - r.Dest), true
}

// Forward maps a source magnitude to its destination magnitude.
func (r Rule) Forward(m int64) (int64, bool) {
	if !r.ContainsSource(m) {
		return 0, false
	}

	return r.Dest + (m - r.Source), true
}

// Offset is the amount added to a source magnitude by this rule.
func (r Rule) Offset() int64 {
	return r.Dest - r.Source
}

// String renders the rule as its text triple.
func (r Rule) String() string {
	return fmt.Sprintf("%d %d %d", r.Dest, r.Source, r.Length)
}

// Rules is one table: the ordered rule list for a category pair.
type Rules []Rule

// Backward applies the first rule whose destination window holds m.
// The bool is false when no rule matched; callers then keep m unchanged.
func (rs Rules) Backward(m int64) (int64, bool) {
	for _, r := range rs {
		if v, ok := r.Backward(m); ok {
			return v, true
		}
	}

	return 0, false
}

// Forward applies the first rule whose source window holds m.
func (rs Rules) Forward(m int64) (int64, bool) {
	for _, r := range rs {
		if v, ok := r.Forward(m); ok {
			return v, true
		}
	}

	return 0, false
}
