// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package cdcl

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/z"
)

var log = logrus.WithField("component", "sat")

// TheoryChecker delegates arithmetic-literal assignments to a theory
// solver, per spec §6's interoperation contract: "CDCL delegates
// arithmetic-literal assignments to the LRA theory solver via a
// check(assignments) -> SAT | UNSAT(conflict-clause) function; the
// conflict clause must be a subset of the input literals that is itself
// LRA-unsatisfiable."
type TheoryChecker interface {
	Check(assigned []z.Lit) (ok bool, conflict []z.Lit)
}

// Engine is the CDCL driving loop: propagate to a fixed point, analyze on
// conflict, backjump, decide, repeat (spec §4.1).
type Engine struct {
	trail    *Trail
	watch    *WatchIndex
	activity *Activity
	clauses  []*Clause
	theory   TheoryChecker

	propagated int // trail index up to which propagation has been driven

	restartLuby  *Luby
	restartAt    int
	restartCount int
}

// RestartFactor scales each raw Luby unit into an actual conflict count
// before a restart fires.
const RestartFactor = 100

// New builds an Engine over cnf, a set of clauses each a set of literals
// (spec §3). Tautologies are dropped and duplicate literals within a
// clause are removed, matching spec §3's Clause invariant.
func New(cnf [][]z.Lit) *Engine {
	e := &Engine{
		trail:       NewTrail(),
		watch:       NewWatchIndex(),
		activity:    NewActivity(),
		restartLuby: NewLuby(),
	}
	e.restartAt = RestartFactor * int(e.restartLuby.Next())
	for _, lits := range cnf {
		lits = Dedup(lits)
		if IsTautology(lits) {
			continue
		}
		for _, m := range lits {
			e.activity.Track(m.Var())
		}
		c := NewClause(lits, false)
		e.clauses = append(e.clauses, c)
		e.watch.Add(c)
	}
	return e
}

// WithTheory attaches a theory solver consulted whenever propagation
// reaches a fixed point, per spec §6.
func (e *Engine) WithTheory(t TheoryChecker) *Engine {
	e.theory = t
	return e
}

// Solve runs the CDCL loop to completion. Returns the model (variable ->
// bool) and true if satisfiable, or (nil, false) if UNSAT.
func (e *Engine) Solve() (map[z.Var]bool, bool) {
	for _, c := range e.clauses {
		if len(c.Lits) == 0 {
			return nil, false // spec §3: the empty clause denotes falsity
		}
	}
	for _, c := range e.watch.Units() {
		if v := e.trail.Value(c.Lits[0]); v == 0 {
			e.trail.Assign(c.Lits[0], c)
		} else if v == -1 {
			return nil, false
		}
	}

	for {
		if conflict := e.propagate(); conflict != nil {
			if !e.resolveConflict(conflict) {
				return nil, false
			}
			continue
		}

		if e.theory != nil {
			if ok, conflictLits := e.consultTheory(); !ok {
				if !e.absorbTheoryConflict(conflictLits) {
					return nil, false
				}
				continue
			}
		}

		v, ok := e.activity.Best(e.trail)
		if !ok {
			return e.extractModel(), true
		}

		if e.restartCount >= e.restartAt {
			e.backjump(0)
			e.restartCount = 0
			e.restartAt = RestartFactor * int(e.restartLuby.Next())
			continue
		}
		e.trail.Decide(v.Neg()) // default polarity is negative, spec §4.1
	}
}

// propagate drains the trail through the watch index to a fixed point.
func (e *Engine) propagate() *Clause {
	for e.propagated < e.trail.Len() {
		m := e.trail.At(e.propagated)
		e.propagated++
		if conflict := e.watch.PropagateFalsified(e.trail, m); conflict != nil {
			return conflict
		}
	}
	return nil
}

func (e *Engine) backjump(level int) {
	e.trail.Backjump(level)
	if e.propagated > e.trail.Len() {
		e.propagated = e.trail.Len()
	}
}

// resolveConflict runs 1UIP analysis, backjumps, learns, and asserts the
// UIP literal. Returns false if the conflict is unresolvable (UNSAT).
func (e *Engine) resolveConflict(conflict *Clause) bool {
	if e.trail.Level() == 0 {
		return false
	}
	e.restartCount++
	learnt, backLevel := analyze(e.trail, conflict)
	for _, m := range learnt {
		e.activity.Bump(m.Var())
	}
	e.activity.Decay()
	log.WithField("size", len(learnt)).WithField("backjump", backLevel).Debug("learned clause")

	e.backjump(backLevel)
	lc := NewClause(learnt, true)
	e.clauses = append(e.clauses, lc)
	if len(lc.Lits) == 0 {
		return false // spec §4.1: UNSAT iff the learned clause is empty
	}
	if len(lc.Lits) > 1 {
		e.watch.Add(lc)
	}
	if v := e.trail.Value(lc.Lits[0]); v == 0 {
		e.trail.Assign(lc.Lits[0], lc)
	}
	return true
}

func (e *Engine) consultTheory() (bool, []z.Lit) {
	assigned := make([]z.Lit, 0, e.trail.Len())
	for i := 0; i < e.trail.Len(); i++ {
		assigned = append(assigned, e.trail.At(i))
	}
	return e.theory.Check(assigned)
}

// absorbTheoryConflict treats a theory conflict exactly like a Boolean
// conflict clause: the negation of the theory-unsat literal set is a valid
// clause (at least one of them must be false, spec §6), fed straight into
// the same 1UIP/backjump machinery. Since every literal in conflictLits is
// currently assigned true, the negated clause is already fully falsified,
// so it can be handed directly to resolveConflict without a propagation
// step first.
func (e *Engine) absorbTheoryConflict(conflictLits []z.Lit) bool {
	lits := make([]z.Lit, len(conflictLits))
	maxLevel := 0
	for i, m := range conflictLits {
		lits[i] = m.Not()
		if l := e.trail.LevelOf(m.Var()); l > maxLevel {
			maxLevel = l
		}
	}
	// analyze requires at least one conflict literal at the current
	// level; if the theory reported a conflict entirely among older
	// literals, first drop back to the level it actually belongs to.
	if maxLevel < e.trail.Level() {
		e.backjump(maxLevel)
	}
	c := NewClause(lits, true)
	for _, m := range c.Lits {
		e.activity.Track(m.Var())
	}
	if len(c.Lits) == 0 {
		return false
	}
	return e.resolveConflict(c)
}

func (e *Engine) extractModel() map[z.Var]bool {
	m := make(map[z.Var]bool)
	for v := z.Var(1); v <= e.activity.nvars; v++ {
		switch e.trail.Value(v.Pos()) {
		case 1:
			m[v] = true
		case -1:
			m[v] = false
		default:
			m[v] = false // unconstrained variable: any value satisfies every clause
		}
	}
	return m
}
