// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package sat

import "github.com/go-air/smtcore/z"

// DPLL is the reference solver of spec §4.1: recursive backtracking with
// unit propagation and pure-literal elimination, deciding in variable-id
// order. It exists to cross-check CDCL (spec §8's "DPLL = CDCL" law); it
// is not optimized and has no learning.
func DPLL(cnf CNF) (Model, bool) {
	lits := toLitSets(cnf)
	maxVar := z.Var(0)
	for _, c := range lits {
		for _, m := range c {
			if v := m.Var(); v > maxVar {
				maxVar = v
			}
		}
	}
	assign := make(map[z.Var]int8, maxVar)
	final, ok := dpllStep(lits, assign)
	if !ok {
		return nil, false
	}
	model := make(Model, maxVar)
	for v := z.Var(1); v <= maxVar; v++ {
		model[v] = final[v] == 1
	}
	return model, true
}

// clauseStatus classifies a clause under assign: satisfied (some literal
// true), conflicting (every literal false), or undecided (otherwise), and
// if undecided-with-one-unassigned, returns that literal for unit
// propagation.
func clauseStatus(c []z.Lit, assign map[z.Var]int8) (satisfied, conflict bool, unit z.Lit) {
	unassignedCount := 0
	var only z.Lit
	for _, m := range c {
		v, known := assign[m.Var()]
		if !known {
			unassignedCount++
			only = m
			continue
		}
		lv := v
		if !m.IsPos() {
			lv = -v
		}
		if lv == 1 {
			return true, false, z.LitNull
		}
	}
	if unassignedCount == 0 {
		return false, true, z.LitNull
	}
	if unassignedCount == 1 {
		return false, false, only
	}
	return false, false, z.LitNull
}

// propagateAndSimplify runs unit propagation then pure-literal elimination
// to a fixed point. Returns false if a conflict was derived.
func propagateAndSimplify(clauses [][]z.Lit, assign map[z.Var]int8) bool {
	changed := true
	for changed {
		changed = false
		for _, c := range clauses {
			sat, conflict, unit := clauseStatus(c, assign)
			if conflict {
				return false
			}
			if sat {
				continue
			}
			if unit != z.LitNull {
				v := int8(1)
				if !unit.IsPos() {
					v = -1
				}
				assign[unit.Var()] = v
				changed = true
			}
		}
	}
	assignPureLiterals(clauses, assign)
	return true
}

// assignPureLiterals assigns any variable that appears, among literals of
// still-undecided clauses, with only one polarity.
func assignPureLiterals(clauses [][]z.Lit, assign map[z.Var]int8) {
	polarity := map[z.Var]int8{}
	mixed := map[z.Var]bool{}
	for _, c := range clauses {
		sat, _, _ := clauseStatus(c, assign)
		if sat {
			continue
		}
		for _, m := range c {
			if _, known := assign[m.Var()]; known {
				continue
			}
			want := int8(1)
			if !m.IsPos() {
				want = -1
			}
			if p, seen := polarity[m.Var()]; seen {
				if p != want {
					mixed[m.Var()] = true
				}
			} else {
				polarity[m.Var()] = want
			}
		}
	}
	for v, p := range polarity {
		if !mixed[v] {
			assign[v] = p
		}
	}
}

// dpllStep is the recursive core: propagate/simplify, check termination,
// else decide on the lowest-id unassigned variable.
func dpllStep(clauses [][]z.Lit, assign map[z.Var]int8) (map[z.Var]int8, bool) {
	work := copyAssign(assign)
	if !propagateAndSimplify(clauses, work) {
		return nil, false
	}

	allSat := true
	for _, c := range clauses {
		sat, _, _ := clauseStatus(c, work)
		if !sat {
			allSat = false
			break
		}
	}
	if allSat {
		return work, true
	}

	dvar, ok := lowestUnassigned(clauses, work)
	if !ok {
		// No clause fully satisfied but no unassigned var either: every
		// remaining clause must in fact be satisfied or conflicting,
		// contradicting allSat==false without a conflict already caught.
		return nil, false
	}

	for _, v := range []int8{1, -1} {
		trial := copyAssign(work)
		trial[dvar] = v
		if res, ok := dpllStep(clauses, trial); ok {
			return res, true
		}
	}
	return nil, false
}

func lowestUnassigned(clauses [][]z.Lit, assign map[z.Var]int8) (z.Var, bool) {
	best := z.Var(0)
	found := false
	for _, c := range clauses {
		for _, m := range c {
			if _, known := assign[m.Var()]; known {
				continue
			}
			if !found || m.Var() < best {
				best, found = m.Var(), true
			}
		}
	}
	return best, found
}

func copyAssign(a map[z.Var]int8) map[z.Var]int8 {
	c := make(map[z.Var]int8, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}
