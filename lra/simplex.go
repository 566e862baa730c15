package lra

import (
	"github.com/sirupsen/logrus"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

var log = logrus.WithField("component", "lra")

// direction classifies which of a basic variable's bounds is currently
// violated (spec §4.2.2 step 2).
type direction int

const (
	none direction = iota
	mustIncrease
	mustDecrease
)

// Simplex runs Dantzig's General Form with bounds and Bland's rule
// anti-cycling over t until a feasible assignment is found or no
// violated basic variable admits an entering variable (spec §4.2.2).
// Run reports false on infeasibility; it does not name the bounds that
// could not simultaneously be met.
type Simplex struct {
	t *Tableau
}

// NewSimplex wraps a tableau for pivoting.
func NewSimplex(t *Tableau) *Simplex { return &Simplex{t: t} }

// Run executes the pivot loop to completion.
func (s *Simplex) Run() bool {
	for {
		basicVar, dir, ok := s.selectViolated()
		if !ok {
			return true
		}
		entering, coeff, ok := s.selectEntering(basicVar, dir)
		if !ok {
			log.WithField("var", basicVar).Debug("no eligible entering variable, infeasible")
			return false
		}
		s.pivot(basicVar, entering, coeff, dir)
	}
}

// selectViolated finds, by Bland's rule (lowest variable id), the first
// basic variable violating its own bound.
func (s *Simplex) selectViolated() (z.Var, direction, bool) {
	for _, v := range s.t.BasicVars() {
		val := s.t.assignment[v]
		b := s.t.bounds[v]
		if b.ViolatesLower(val) {
			return v, mustIncrease, true
		}
		if b.ViolatesUpper(val) {
			return v, mustDecrease, true
		}
	}
	return 0, none, false
}

// selectEntering finds, by Bland's rule, the first non-basic variable
// eligible to relieve basicVar's violation (spec §4.2.2 step 2's table).
func (s *Simplex) selectEntering(basicVar z.Var, dir direction) (z.Var, *rational.Rat, bool) {
	row := s.t.basis[basicVar]
	candidates := make([]z.Var, 0, len(row))
	for v := range row {
		candidates = append(candidates, v)
	}
	sortVars(candidates)
	// basicVar = ... + c*n + ..., so moving n by delta moves basicVar by
	// c*delta. To raise basicVar (mustIncrease) with a positive c, n must
	// be free to increase; with a negative c, n must be free to decrease
	// (since decreasing n then raises c*n). mustDecrease is the mirror
	// image of the same rule.
	for _, n := range candidates {
		c := row[n]
		if c.IsZero() {
			continue
		}
		b := s.t.bounds[n]
		val := s.t.assignment[n]
		var eligible bool
		switch dir {
		case mustIncrease:
			eligible = (c.Sign() > 0 && b.CanIncrease(val)) || (c.Sign() < 0 && b.CanDecrease(val))
		case mustDecrease:
			eligible = (c.Sign() > 0 && b.CanDecrease(val)) || (c.Sign() < 0 && b.CanIncrease(val))
		}
		if eligible {
			return n, c, true
		}
	}
	return 0, nil, false
}

// pivot performs spec §4.2.2 step 3: solve basicVar's row for entering,
// substitute into every other basic row, swap roles, and recompute
// assignments.
func (s *Simplex) pivot(basicVar, entering z.Var, c *rational.Rat, dir direction) {
	row := s.t.basis[basicVar]

	newRow := LinearTerm{}
	newRow[basicVar] = rational.One().Div(c)
	for v, coeff := range row {
		if v == entering {
			continue
		}
		newRow[v] = coeff.Div(c).Neg()
	}

	delete(s.t.basis, basicVar)
	delete(s.t.basic, basicVar)
	s.t.basis[entering] = newRow
	s.t.basic[entering] = true

	for bv, brow := range s.t.basis {
		if bv == entering {
			continue
		}
		coeff, has := brow[entering]
		if !has {
			continue
		}
		delete(brow, entering)
		for v, nc := range newRow {
			cur, ok := brow[v]
			if !ok {
				cur = rational.Zero()
			}
			sum := cur.Add(coeff.Mul(nc))
			if sum.IsZero() {
				delete(brow, v)
			} else {
				brow[v] = sum
			}
		}
	}

	var target *rational.Rat
	b := s.t.bounds[basicVar]
	if dir == mustIncrease {
		target = b.Lower.Value
	} else {
		target = b.Upper.Value
	}
	deltaBasic := target.Sub(s.t.assignment[basicVar])
	deltaEntering := deltaBasic.Div(c)
	s.t.assignment[entering] = s.t.assignment[entering].Add(deltaEntering)
	s.t.assignment[basicVar] = target

	for bv, brow := range s.t.basis {
		s.t.assignment[bv] = brow.Eval(s.t.assignment)
	}
}

func sortVars(vs []z.Var) {
	for i := 1; i < len(vs); i++ {
		for j := i; j > 0 && vs[j-1] > vs[j]; j-- {
			vs[j-1], vs[j] = vs[j], vs[j-1]
		}
	}
}
