package lra

import "github.com/go-air/smtcore/rational"

// Bound is a single-sided constraint on a variable's value: (value,
// strictness), compared lexicographically per spec §4.2's resolution of
// strict relations (SPEC_FULL.md, "strict relations are supported
// directly, not desugared").
type Bound struct {
	Value  *rational.Rat
	Strict bool
}

// Bounds holds the (at most one) lower and (at most one) upper bound
// recorded for a variable. A nil side means unbounded in that direction.
type Bounds struct {
	Lower *Bound
	Upper *Bound
}

// ViolatesLower reports whether v fails to satisfy the lower bound.
func (b *Bounds) ViolatesLower(v *rational.Rat) bool {
	if b == nil || b.Lower == nil {
		return false
	}
	c := v.Cmp(b.Lower.Value)
	return c < 0 || (c == 0 && b.Lower.Strict)
}

// ViolatesUpper reports whether v fails to satisfy the upper bound.
func (b *Bounds) ViolatesUpper(v *rational.Rat) bool {
	if b == nil || b.Upper == nil {
		return false
	}
	c := v.Cmp(b.Upper.Value)
	return c > 0 || (c == 0 && b.Upper.Strict)
}

// CanIncrease reports whether v has room to grow without leaving the
// upper bound, i.e. whether a non-basic variable currently at v may still
// serve as an entering variable that needs to increase.
func (b *Bounds) CanIncrease(v *rational.Rat) bool {
	if b == nil || b.Upper == nil {
		return true
	}
	return v.Cmp(b.Upper.Value) < 0
}

// CanDecrease is the mirror of CanIncrease against the lower bound.
func (b *Bounds) CanDecrease(v *rational.Rat) bool {
	if b == nil || b.Lower == nil {
		return true
	}
	return v.Cmp(b.Lower.Value) > 0
}
