package lra

import (
	"sort"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// Tableau is the Simplex state of spec §4.2.2's Tableau data model: a
// basis (basic variable -> linear term over non-basic variables), bounds
// (per-variable: NewTableau attaches them to the fresh slack introduced
// for each input constraint, TightenBound to any variable), and a
// current rational assignment for every
// variable, basic or not.
//
// The row convention is: for a basic variable x, basis[x] is a
// LinearTerm t such that x = t evaluated at the current non-basic
// assignment. Slack variables are allocated with ids strictly greater
// than any original problem variable.
type Tableau struct {
	basis      map[z.Var]LinearTerm
	bounds     map[z.Var]*Bounds
	assignment map[z.Var]*rational.Rat
	basic      map[z.Var]bool
	nextSlack  z.Var
}

// NewTableau builds an initial tableau from constraints, one fresh slack
// per constraint (spec §4.2.2 step 1). Returns ok=false immediately if a
// zero-row (a constraint whose term became empty, e.g. from Gomory
// simplification upstream) violates its own bound.
func NewTableau(constraints []Constraint) (*Tableau, bool) {
	maxVar := z.Var(0)
	for _, c := range constraints {
		for v := range c.Term {
			if v > maxVar {
				maxVar = v
			}
		}
	}
	t := &Tableau{
		basis:      map[z.Var]LinearTerm{},
		bounds:     map[z.Var]*Bounds{},
		assignment: map[z.Var]*rational.Rat{},
		basic:      map[z.Var]bool{},
		nextSlack:  maxVar + 1,
	}
	for v := z.Var(1); v <= maxVar; v++ {
		t.assignment[v] = rational.Zero()
	}
	for _, c := range constraints {
		if !t.addConstraint(c) {
			return t, false
		}
	}
	return t, true
}

// addConstraint introduces one fresh slack row for c. Returns false if
// the row is a zero-row (constant) that violates its own bound.
func (t *Tableau) addConstraint(c Constraint) bool {
	slack := t.nextSlack
	t.nextSlack++
	for v := range c.Term {
		if _, ok := t.assignment[v]; !ok {
			t.assignment[v] = rational.Zero()
		}
	}
	row := t.substitute(c.Term)
	t.basis[slack] = row
	t.basic[slack] = true
	t.bounds[slack] = boundsFor(c.Rel, c.Bound)
	t.assignment[slack] = row.Eval(t.assignment)

	if len(row) == 0 {
		ok := !t.bounds[slack].ViolatesLower(t.assignment[slack]) &&
			!t.bounds[slack].ViolatesUpper(t.assignment[slack])
		delete(t.basis, slack)
		delete(t.basic, slack)
		delete(t.bounds, slack)
		delete(t.assignment, slack)
		return ok
	}
	return true
}

// boundsFor translates a relation and bound value into the Bounds record
// attached to a constraint's slack variable.
func boundsFor(rel Relation, bound *rational.Rat) *Bounds {
	switch rel {
	case LE:
		return &Bounds{Upper: &Bound{Value: bound, Strict: false}}
	case LT:
		return &Bounds{Upper: &Bound{Value: bound, Strict: true}}
	case GE:
		return &Bounds{Lower: &Bound{Value: bound, Strict: false}}
	case GT:
		return &Bounds{Lower: &Bound{Value: bound, Strict: true}}
	case EQ:
		return &Bounds{
			Lower: &Bound{Value: bound, Strict: false},
			Upper: &Bound{Value: bound, Strict: false},
		}
	default:
		return &Bounds{}
	}
}

// Assignment returns the current value of v.
func (t *Tableau) Assignment(v z.Var) *rational.Rat {
	if val, ok := t.assignment[v]; ok {
		return val
	}
	return rational.Zero()
}

// IsBasic reports whether v currently occupies a basis row.
func (t *Tableau) IsBasic(v z.Var) bool { return t.basic[v] }

// Vars returns every variable known to the tableau, ascending.
func (t *Tableau) Vars() []z.Var {
	out := make([]z.Var, 0, len(t.assignment))
	for v := range t.assignment {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BasicVars returns the currently basic variables, ascending.
func (t *Tableau) BasicVars() []z.Var {
	out := make([]z.Var, 0, len(t.basic))
	for v := range t.basic {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// substitute rewrites term so that it mentions only currently non-basic
// variables, replacing every basic variable it finds with that
// variable's basis row (basis rows are, by invariant, already expressed
// purely in non-basic variables, so one pass suffices). Constraints
// handed to the tableau after the initial construction -- branch splits,
// Gomory cuts -- must be normalized this way before becoming a row.
func (t *Tableau) substitute(term LinearTerm) LinearTerm {
	out := LinearTerm{}
	for v, c := range term {
		if t.basic[v] {
			out = out.Add(t.basis[v].Scale(c))
			continue
		}
		if cur, ok := out[v]; ok {
			out[v] = cur.Add(c)
		} else {
			out[v] = c
		}
	}
	return out
}

// Clone returns a deep copy, used by branch-and-bound to explore both
// sides of a split without disturbing the parent search state.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{
		basis:      make(map[z.Var]LinearTerm, len(t.basis)),
		bounds:     make(map[z.Var]*Bounds, len(t.bounds)),
		assignment: make(map[z.Var]*rational.Rat, len(t.assignment)),
		basic:      make(map[z.Var]bool, len(t.basic)),
		nextSlack:  t.nextSlack,
	}
	for v, row := range t.basis {
		nr := make(LinearTerm, len(row))
		for k, val := range row {
			nr[k] = val
		}
		c.basis[v] = nr
	}
	for v, b := range t.bounds {
		nb := &Bounds{}
		if b.Lower != nil {
			lo := *b.Lower
			nb.Lower = &lo
		}
		if b.Upper != nil {
			up := *b.Upper
			nb.Upper = &up
		}
		c.bounds[v] = nb
	}
	for v, val := range t.assignment {
		c.assignment[v] = val
	}
	for v, b := range t.basic {
		c.basic[v] = b
	}
	return c
}

// AddDerivedBound attaches a new constraint row into the tableau via a
// fresh slack, e.g. a Gomory cut.
func (t *Tableau) AddDerivedBound(term LinearTerm, rel Relation, bound *rational.Rat) bool {
	return t.addConstraint(Constraint{Term: term, Rel: rel, Bound: bound})
}

// TightenBound merges a one-sided bound directly into v's own Bounds
// record, in place, rather than routing it through a fresh slack row.
// Branch-and-bound splits use this so the split variable itself -- not
// a slack standing in for it -- ends up pinned at the branch bound once
// Simplex re-pivots it out of the basis, which is what lets a later
// Gomory cut see it as a genuinely bounded nonbasic (spec §4.2.3).
// Returns false if the merge leaves v's bounds empty (lower > upper).
func (t *Tableau) TightenBound(v z.Var, rel Relation, bound *rational.Rat) bool {
	b, ok := t.bounds[v]
	if !ok {
		b = &Bounds{}
		t.bounds[v] = b
	}
	switch rel {
	case LE:
		if b.Upper == nil || bound.Cmp(b.Upper.Value) < 0 {
			b.Upper = &Bound{Value: bound}
		}
	case GE:
		if b.Lower == nil || bound.Cmp(b.Lower.Value) > 0 {
			b.Lower = &Bound{Value: bound}
		}
	}
	return b.Lower == nil || b.Upper == nil || b.Lower.Value.Cmp(b.Upper.Value) <= 0
}
