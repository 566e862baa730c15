// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package sat is the public façade over the CDCL and DPLL SAT engines
// (spec §4.1, §6), mirroring the split of go-air/gini's package "gini"
// (the façade) over "internal/xo" (the engine internals).
package sat

import (
	"github.com/go-air/smtcore/internal/cdcl"
	"github.com/go-air/smtcore/z"
)

// Clause is a set of literals; order is irrelevant and duplicates are
// meaningless (spec §3).
type Clause map[z.Lit]struct{}

// NewClause builds a Clause from literals.
func NewClause(lits ...z.Lit) Clause {
	c := make(Clause, len(lits))
	for _, m := range lits {
		c[m] = struct{}{}
	}
	return c
}

// Lits returns the clause's literals in no particular order.
func (c Clause) Lits() []z.Lit {
	out := make([]z.Lit, 0, len(c))
	for m := range c {
		out = append(out, m)
	}
	return out
}

// IsTautology reports whether c contains some literal and its negation
// (spec §3).
func (c Clause) IsTautology() bool {
	for m := range c {
		if _, ok := c[m.Not()]; ok {
			return true
		}
	}
	return false
}

// CNF is a set of clauses (spec §3). Duplicate and subsumed clauses are
// allowed but not required.
type CNF []Clause

// Model maps every variable mentioned in the problem to a truth value
// (spec §6).
type Model map[z.Var]bool

// Satisfies reports whether m satisfies every clause of cnf.
func (m Model) Satisfies(cnf CNF) bool {
	for _, c := range cnf {
		ok := false
		for lit := range c {
			if m[lit.Var()] == lit.IsPos() {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// toLitSets converts CNF to the internal engine's clause representation,
// dropping tautologies at the boundary per spec §3 ("tautologies are
// dropped on insertion").
func toLitSets(cnf CNF) [][]z.Lit {
	out := make([][]z.Lit, 0, len(cnf))
	for _, c := range cnf {
		if c.IsTautology() {
			continue
		}
		out = append(out, c.Lits())
	}
	return out
}

// TheoryChecker is re-exported from internal/cdcl: it is the contract by
// which sat.CDCL delegates arithmetic-literal assignments to a theory
// solver such as lra.TheorySolver (spec §6).
type TheoryChecker = cdcl.TheoryChecker

// CDCL is the production SAT engine: two-watched-literal propagation,
// VSIDS-like decisions, 1UIP learning, non-chronological backjumping
// (spec §4.1).
type CDCL struct {
	engine *cdcl.Engine
}

// NewCDCL builds a CDCL solver over cnf.
func NewCDCL(cnf CNF) *CDCL {
	return &CDCL{engine: cdcl.New(toLitSets(cnf))}
}

// WithTheory attaches a theory solver, enabling CDCL(T) style search per
// spec §6's interoperation contract.
func (s *CDCL) WithTheory(t TheoryChecker) *CDCL {
	s.engine.WithTheory(t)
	return s
}

// Solve returns (model, true) if cnf is satisfiable, or (nil, false) if
// UNSAT.
func (s *CDCL) Solve() (Model, bool) {
	m, ok := s.engine.Solve()
	if !ok {
		return nil, false
	}
	return Model(m), true
}

// Solve is a convenience for NewCDCL(cnf).Solve().
func Solve(cnf CNF) (Model, bool) {
	return NewCDCL(cnf).Solve()
}
