package lra

import (
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// AtomMap associates boolean literals with the LRA constraints they
// stand for, the interoperation contract of spec §6: CDCL treats
// arithmetic atoms as opaque booleans, and the theory solver interprets
// an assignment of those booleans as a conjunction of constraints.
type AtomMap struct {
	pos map[z.Lit]Constraint
}

// NewAtomMap builds an empty atom map.
func NewAtomMap() *AtomMap { return &AtomMap{pos: map[z.Lit]Constraint{}} }

// Register associates lit, when assigned true, with c. The negation of
// lit is registered automatically as negate(c): the negated constraint
// for LE, LT, GE and GT, and the same equality for EQ.
func (m *AtomMap) Register(lit z.Lit, c Constraint) {
	m.pos[lit] = c
	m.pos[lit.Not()] = negate(c)
}

// Lookup returns the constraint registered for lit, if any.
func (m *AtomMap) Lookup(lit z.Lit) (Constraint, bool) {
	c, ok := m.pos[lit]
	return c, ok
}

// negate builds the constraint that holds exactly when c does not, for
// every relation except EQ, which it returns unchanged.
func negate(c Constraint) Constraint {
	switch c.Rel {
	case LE:
		return Constraint{Term: c.Term, Rel: GT, Bound: c.Bound}
	case LT:
		return Constraint{Term: c.Term, Rel: GE, Bound: c.Bound}
	case GE:
		return Constraint{Term: c.Term, Rel: LT, Bound: c.Bound}
	case GT:
		return Constraint{Term: c.Term, Rel: LE, Bound: c.Bound}
	case EQ:
		// negation of equality is disequality, not expressible as a single
		// Simplex bound; callers must not rely on negating EQ atoms.
		return Constraint{Term: c.Term, Rel: EQ, Bound: c.Bound}
	default:
		return c
	}
}

// TheorySolver implements sat.TheoryChecker (spec §6): given a partial or
// full boolean assignment, it interprets every assigned atom literal as a
// linear constraint and checks the conjunction for arithmetic
// satisfiability via Simplex.
type TheorySolver struct {
	atoms   *AtomMap
	Integer map[z.Var]bool // variables constrained to Z (spec §4.2.4)
}

// NewTheorySolver builds a theory solver over the given atom map.
func NewTheorySolver(atoms *AtomMap) *TheorySolver {
	return &TheorySolver{atoms: atoms, Integer: map[z.Var]bool{}}
}

// MarkInteger declares v an integer variable for LIA branch-and-bound.
func (s *TheorySolver) MarkInteger(v z.Var) { s.Integer[v] = true }

// Check implements sat.TheoryChecker.
func (s *TheorySolver) Check(assigned []z.Lit) (bool, []z.Lit) {
	var constraints []Constraint
	var relevant []z.Lit
	for _, lit := range assigned {
		c, ok := s.atoms.pos[lit]
		if !ok {
			continue
		}
		constraints = append(constraints, c)
		relevant = append(relevant, lit)
	}
	if len(constraints) == 0 {
		return true, nil
	}
	t, ok := NewTableau(constraints)
	if !ok {
		return false, relevant
	}
	if !NewSimplex(t).Run() {
		return false, relevant
	}
	if len(s.Integer) == 0 {
		return true, nil
	}
	if !BranchAndBound(t, s.Integer) {
		return false, relevant
	}
	return true, nil
}

// Model reads off the current rational value of every original variable
// (spec §4.2's model-extraction contract; slacks are internal).
func Model(t *Tableau, vars []z.Var) map[z.Var]*rational.Rat {
	m := make(map[z.Var]*rational.Rat, len(vars))
	for _, v := range vars {
		m[v] = t.Assignment(v)
	}
	return m
}
