package category

import "fmt"

// Value is a magnitude tagged with its category. Values are immutable;
// stepping produces a new Value.
type Value struct {
	cat       Category
	magnitude int64
}

// New returns a Value of category c carrying m.
func New(c Category, m int64) Value {
	return Value{cat: c, magnitude: m}
}

// Category returns the tag of v.
func (v Value) Category() Category { return v.cat }

// Magnitude returns the carried integer, whatever the category.
func (v Value) Magnitude() int64 { return v.magnitude }

// SameCategory compares tags only; magnitudes are ignored.
func (v Value) SameCategory(other Value) bool {
	return v.cat == other.cat
}

// Is reports whether v is tagged c.
func (v Value) Is(c Category) bool {
	return v.cat == c
}

// StepBack returns a value of the category preceding v's in chain. It carries
// *newMagnitude when set, else v's own magnitude. Stepping back from the
// chain's first category fails with ErrNoPredecessor.
func (v Value) StepBack(chain Chain, newMagnitude *int64) (Value, error) {
	prev, err := chain.Predecessor(v.cat)
	if err != nil {
		return Value{}, fmt.Errorf("step back from %s: %w", v, err)
	}

	return New(prev, v.carry(newMagnitude)), nil
}

// StepForward is the mirror of StepBack. It fails with ErrNoSuccessor on the
// chain's last category.
func (v Value) StepForward(chain Chain, newMagnitude *int64) (Value, error) {
	next, err := chain.Successor(v.cat)
	if err != nil {
		return Value{}, fmt.Errorf("step forward from %s: %w", v, err)
	}

	return New(next, v.carry(newMagnitude)), nil
}

func (v Value) carry(newMagnitude *int64) int64 {
	if newMagnitude != nil {
		return *newMagnitude
	}

	return v.magnitude
}

// String renders v as "Soil(81)".
func (v Value) String() string {
	return fmt.Sprintf("%s(%d)", v.cat, v.magnitude)
}
