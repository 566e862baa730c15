package lra

import (
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// GomoryCut looks for a basic integer variable at a fractional value
// whose row is in a form amenable to a classical Gomory fractional cut
// (spec §4.2.3): every non-basic variable in the row must itself be
// integer-constrained, have a finite lower bound, and currently sit
// exactly at that bound. This is a deliberately narrow slice of the
// general mixed-integer Gomory cut -- opportunistic, per spec §4.2.4,
// meaning branch-and-bound alone remains responsible for correctness
// when no cut applies.
func GomoryCut(t *Tableau, integer map[z.Var]bool) (Constraint, bool) {
	for _, bv := range t.BasicVars() {
		if !integer[bv] {
			continue
		}
		val := t.assignment[bv]
		if val.IsInteger() {
			continue
		}
		row := t.basis[bv]
		if !rowIsCuttable(t, row, integer) {
			continue
		}

		term := LinearTerm{}
		// x = val = floor(val)+frac(val) and every nonbasic n sits at
		// its lower bound l_n, so the fractional cut on the shifted
		// nonnegative quantities (n-l_n) is Sum(f_n*(n-l_n)) >= 1-frac(val).
		bound := rational.One().Sub(val.Frac())
		for n, c := range row {
			if isFrozen(t, n) {
				continue
			}
			f := c.Frac()
			if f.IsZero() {
				continue
			}
			term[n] = f
			bound = bound.Add(f.Mul(t.bounds[n].Lower.Value))
		}
		if len(term) == 0 {
			continue
		}
		return Constraint{Term: term, Rel: GE, Bound: bound}, true
	}
	return Constraint{}, false
}

// isFrozen reports whether n's own bounds pin it to a single value, as
// happens to the slack introduced for an equality constraint: its shift
// from that value is identically zero, so it contributes nothing to a
// fractional cut regardless of whether n itself is integer-constrained.
func isFrozen(t *Tableau, n z.Var) bool {
	b := t.bounds[n]
	return b != nil && b.Lower != nil && b.Upper != nil && b.Lower.Value.Cmp(b.Upper.Value) == 0
}

func rowIsCuttable(t *Tableau, row LinearTerm, integer map[z.Var]bool) bool {
	for n := range row {
		if isFrozen(t, n) {
			continue
		}
		if !integer[n] {
			return false
		}
		b := t.bounds[n]
		if b == nil || b.Lower == nil {
			return false
		}
		if !t.assignment[n].Sub(b.Lower.Value).IsZero() {
			return false
		}
	}
	return true
}
