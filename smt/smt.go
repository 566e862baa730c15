// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package smt wires the CDCL boolean engine (package sat) to the
// Simplex-based arithmetic theory (package lra) through the
// TheoryChecker interoperation contract of spec §6, giving a CDCL(T)
// solver for quantifier-free linear (and, opportunistically, integer)
// arithmetic formulas.
package smt

import (
	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/sat"
	"github.com/go-air/smtcore/z"
)

// Problem accumulates a boolean skeleton (CNF over atom literals) and the
// arithmetic constraint each atom stands for.
type Problem struct {
	cnf     sat.CNF
	atoms   *lra.AtomMap
	theory  *lra.TheorySolver
	arithms []z.Var
	atomLit []z.Lit
}

// NewProblem builds an empty problem.
func NewProblem() *Problem {
	atoms := lra.NewAtomMap()
	return &Problem{atoms: atoms, theory: lra.NewTheorySolver(atoms)}
}

// AddClause adds a boolean clause over literals that are either plain
// boolean variables or atom literals registered via AddAtom.
func (p *Problem) AddClause(lits ...z.Lit) {
	p.cnf = append(p.cnf, sat.NewClause(lits...))
}

// AddAtom associates lit with an arithmetic constraint: when the CDCL
// search assigns lit true, the theory solver treats c as asserted, and
// when it assigns lit false, the theory solver treats the negation of c
// as asserted (spec §6). For rel EQ the negation is not formed: lit
// false asserts the same equality as lit true.
func (p *Problem) AddAtom(lit z.Lit, term lra.LinearTerm, rel lra.Relation, bound *rational.Rat) {
	p.atoms.Register(lit, lra.Constraint{Term: term, Rel: rel, Bound: bound})
	p.atomLit = append(p.atomLit, lit)
	for v := range term {
		p.arithms = append(p.arithms, v)
	}
}

// MarkInteger declares v ranges over the integers, activating
// branch-and-bound (spec §4.2.4) whenever the theory solver checks a
// constraint set mentioning v.
func (p *Problem) MarkInteger(v z.Var) { p.theory.MarkInteger(v) }

// Model is the result of a satisfiable Solve: boolean values for every
// propositional variable and, when arithmetic atoms were registered, a
// rational value for every arithmetic variable that appeared in one.
type Model struct {
	Bool sat.Model
	Real map[z.Var]*rational.Rat
}

// Solve runs CDCL(T): CDCL search over the boolean skeleton, consulting
// the LRA theory solver on every full or partial assignment of
// arithmetic atoms (spec §6).
func (p *Problem) Solve() (Model, bool) {
	solver := sat.NewCDCL(p.cnf).WithTheory(p.theory)
	boolModel, ok := solver.Solve()
	if !ok {
		return Model{}, false
	}
	real := p.extractReal(boolModel)
	return Model{Bool: boolModel, Real: real}, true
}

// extractReal re-runs the theory solver's constraint construction over
// the winning boolean model to recover concrete rational values, since
// TheoryChecker.Check does not expose its internal tableau.
func (p *Problem) extractReal(boolModel sat.Model) map[z.Var]*rational.Rat {
	if len(p.arithms) == 0 {
		return nil
	}
	var constraints []lra.Constraint
	for _, lit := range p.atomLit {
		actual := lit
		if boolModel[lit.Var()] != lit.IsPos() {
			actual = lit.Not()
		}
		if c, ok := p.atoms.Lookup(actual); ok {
			constraints = append(constraints, c)
		}
	}
	if len(constraints) == 0 {
		return nil
	}
	t, ok := lra.NewTableau(constraints)
	if !ok || !lra.NewSimplex(t).Run() {
		return nil
	}
	if len(p.theory.Integer) > 0 {
		if !lra.BranchAndBound(t, p.theory.Integer) {
			return nil
		}
	}
	return lra.Model(t, p.arithms)
}
