// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package cdcl is the internal CDCL engine: two-watched-literal
// propagation, VSIDS-like decisions, 1UIP learning and non-chronological
// backjumping, per spec §4.1. It mirrors the internal/xo split of
// go-air/gini (clause database, trail, activity heuristic, driving loop as
// separate files of one package) generalized to this module's own Clause
// data model (spec §3: a clause is a set of literals) rather than gini's
// packed-slice clause storage.
package cdcl

import "github.com/go-air/smtcore/z"

// Clause is a learned or original clause. Lits[0] and Lits[1] are always
// the two watched literals when len(Lits) >= 2; for a unit clause
// (len == 1) there is nothing to watch, it is asserted directly.
// The empty clause (len == 0) denotes falsity, per spec §3.
type Clause struct {
	Lits     []z.Lit
	Learned  bool
	Activity float64
}

// NewClause builds a Clause from a copy of a literal set. It does not
// re-validate: dropping tautologies is left to the caller (New does it
// for the input clauses, per spec §3).
func NewClause(lits []z.Lit, learned bool) *Clause {
	cp := make([]z.Lit, len(lits))
	copy(cp, lits)
	return &Clause{Lits: cp, Learned: learned}
}

// IsTautology reports whether c contains some literal and its negation.
func IsTautology(lits []z.Lit) bool {
	seen := map[z.Lit]bool{}
	for _, m := range lits {
		if seen[m.Not()] {
			return true
		}
		seen[m] = true
	}
	return false
}

// Dedup removes duplicate literals, preserving first occurrence order.
func Dedup(lits []z.Lit) []z.Lit {
	seen := map[z.Lit]bool{}
	out := make([]z.Lit, 0, len(lits))
	for _, m := range lits {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// watchSwap moves m to index at (0 or 1) among the clause's watched slots,
// keeping the other watched literal in place. Used when finding a
// replacement watch after m becomes falsified.
func (c *Clause) watchSwap(m z.Lit, at int) {
	for i, n := range c.Lits {
		if n == m {
			c.Lits[i], c.Lits[at] = c.Lits[at], c.Lits[i]
			return
		}
	}
}
