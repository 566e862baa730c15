package lra

import (
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// BranchAndBound extends a feasible Simplex tableau to LIA per spec
// §4.2.4: split on the lowest-id integer-constrained variable holding a
// fractional value into <=floor and >=ceil branches, recursing until
// every integer variable is integral or both branches are infeasible. A
// Gomory cut (spec §4.2.3) is tried first at each node when applicable,
// since it can shrink the search without branching at all.
//
// On success t is mutated in place to hold the winning branch's state;
// on failure t is left in an unspecified, discardable state.
func BranchAndBound(t *Tableau, integer map[z.Var]bool) bool {
	if cut, ok := GomoryCut(t, integer); ok {
		if !t.AddDerivedBound(cut.Term, cut.Rel, cut.Bound) {
			return false
		}
		if !NewSimplex(t).Run() {
			return false
		}
	}

	v, val, ok := firstFractional(t, integer)
	if !ok {
		return true
	}

	floor := val.Floor()
	ceil := val.Ceil()

	lo := t.Clone()
	if lo.TightenBound(v, LE, floor) && NewSimplex(lo).Run() && BranchAndBound(lo, integer) {
		*t = *lo
		return true
	}

	hi := t.Clone()
	if hi.TightenBound(v, GE, ceil) && NewSimplex(hi).Run() && BranchAndBound(hi, integer) {
		*t = *hi
		return true
	}

	return false
}

// firstFractional returns the lowest-id integer variable currently
// holding a non-integral value, ascending, per spec §5's tie-breaking
// convention.
func firstFractional(t *Tableau, integer map[z.Var]bool) (z.Var, *rational.Rat, bool) {
	for _, v := range t.Vars() {
		if !integer[v] {
			continue
		}
		val := t.Assignment(v)
		if !val.IsInteger() {
			return v, val, true
		}
	}
	return 0, nil, false
}
