// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import "github.com/go-air/smtcore/z"

// analyze implements 1UIP conflict analysis (spec §4.1): resolve
// repeatedly against the reason of the most recently assigned literal at
// the current decision level, until exactly one literal at that level
// remains. Returns the learned clause (its first literal is always the
// UIP's negation) and the backjump level (the second-highest level among
// the clause's literals, 0 if none).
func analyze(trail *Trail, confl *Clause) (learnt []z.Lit, backLevel int) {
	level := trail.Level()
	seen := map[z.Var]bool{}
	counter := 0
	learnt = []z.Lit{z.LitNull} // slot 0 reserved for the UIP literal

	reasonLits := confl.Lits
	var pivot z.Lit = z.LitNull
	trailIdx := trail.Len() - 1

	for {
		for _, q := range reasonLits {
			if pivot != z.LitNull && q == pivot {
				continue
			}
			v := q.Var()
			if seen[v] {
				continue
			}
			seen[v] = true
			lvl := trail.LevelOf(v)
			if lvl == level {
				counter++
			} else if lvl > 0 {
				learnt = append(learnt, q)
			}
		}

		for trailIdx >= 0 && !seen[trail.At(trailIdx).Var()] {
			trailIdx--
		}
		pivot = trail.At(trailIdx)
		seen[pivot.Var()] = false
		counter--
		trailIdx--

		if counter == 0 {
			break
		}
		reasonLits = trail.ReasonOf(pivot.Var()).Lits
	}

	learnt[0] = pivot.Not()

	backLevel = 0
	for _, q := range learnt[1:] {
		if l := trail.LevelOf(q.Var()); l > backLevel {
			backLevel = l
		}
	}
	return learnt, backLevel
}
