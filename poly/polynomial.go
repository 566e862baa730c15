// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

package poly

import (
	"sort"
	"strings"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// Term is (coefficient, monomial) with a non-zero coefficient. Terms are
// only ever produced already-normalized by Polynomial's constructor.
type Term struct {
	Coeff    *rational.Rat
	Monomial Monomial
}

// Polynomial is a set of Terms with pairwise distinct monomials and every
// coefficient non-zero (spec §3). The zero value is not a valid Polynomial;
// use NewPolynomial or Zero.
type Polynomial struct {
	terms map[string]Term
}

// Zero returns the empty polynomial (the additive identity).
func Zero() *Polynomial { return &Polynomial{terms: map[string]Term{}} }

// NewPolynomial combines like monomials (summing coefficients) and drops
// any resulting zero terms, per spec §3's "mkPolynomial" invariant.
// An empty input yields the zero polynomial.
func NewPolynomial(terms []Term) *Polynomial {
	p := Zero()
	for _, t := range terms {
		p.addTerm(t.Coeff, t.Monomial)
	}
	return p
}

func (p *Polynomial) addTerm(coeff *rational.Rat, m Monomial) {
	k := m.key()
	if existing, ok := p.terms[k]; ok {
		sum := existing.Coeff.Add(coeff)
		if sum.IsZero() {
			delete(p.terms, k)
		} else {
			p.terms[k] = Term{Coeff: sum, Monomial: m}
		}
		return
	}
	if coeff.IsZero() {
		return
	}
	p.terms[k] = Term{Coeff: coeff, Monomial: m}
}

// Add returns p + o as a fresh Polynomial.
func (p *Polynomial) Add(o *Polynomial) *Polynomial {
	r := Zero()
	for _, t := range p.terms {
		r.addTerm(t.Coeff, t.Monomial)
	}
	for _, t := range o.terms {
		r.addTerm(t.Coeff, t.Monomial)
	}
	return r
}

// Scale returns c*p as a fresh Polynomial.
func (p *Polynomial) Scale(c *rational.Rat) *Polynomial {
	r := Zero()
	if c.IsZero() {
		return r
	}
	for _, t := range p.terms {
		r.addTerm(c.Mul(t.Coeff), t.Monomial)
	}
	return r
}

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Terms returns the polynomial's terms in a deterministic order (by
// monomial degree, then by variable-id lexicographic order), for
// reproducible iteration (spec §5).
func (p *Polynomial) Terms() []Term {
	ts := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		ts = append(ts, t)
	}
	sort.Slice(ts, func(i, j int) bool {
		return termLess(ts[i], ts[j])
	})
	return ts
}

func termLess(a, b Term) bool {
	da, db := a.Monomial.Degree(), b.Monomial.Degree()
	if da != db {
		return da < db
	}
	return a.Monomial.key() < b.Monomial.key()
}

// Degree returns the maximum degree over all terms, or 0 for the zero
// polynomial.
func (p *Polynomial) Degree() int {
	d := 0
	for _, t := range p.terms {
		if td := t.Monomial.Degree(); td > d {
			d = td
		}
	}
	return d
}

// Vars returns every variable appearing in any term, ascending.
func (p *Polynomial) Vars() []z.Var {
	seen := map[z.Var]bool{}
	for _, t := range p.terms {
		for v := range t.Monomial {
			seen[v] = true
		}
	}
	vs := make([]z.Var, 0, len(seen))
	for v := range seen {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Eval evaluates the polynomial under a full rational assignment.
func (p *Polynomial) Eval(assign map[z.Var]*rational.Rat) *rational.Rat {
	acc := rational.Zero()
	for _, t := range p.terms {
		acc = acc.Add(t.Coeff.Mul(t.Monomial.Eval(assign)))
	}
	return acc
}

func (p *Polynomial) String() string {
	ts := p.Terms()
	if len(ts) == 0 {
		return "0"
	}
	parts := make([]string, len(ts))
	for i, t := range ts {
		if t.Monomial.IsConstant() {
			parts[i] = t.Coeff.String()
		} else {
			parts[i] = t.Coeff.String() + "*" + t.Monomial.String()
		}
	}
	return strings.Join(parts, " + ")
}
