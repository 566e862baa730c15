// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package poly implements the polynomial kernel of spec §3: monomials as
// variable->exponent maps, terms as (coefficient, monomial) pairs, and
// polynomials as sets of terms with pairwise distinct monomials. All three
// invariants (no zero exponent, no zero coefficient, no duplicate monomial)
// are enforced by smart constructors, never by the caller.
package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// Monomial maps variable -> positive exponent. The empty Monomial denotes
// the constant 1. A Monomial must never store a zero exponent; NewMonomial
// is the only supported constructor and enforces this.
type Monomial map[z.Var]int

// NewMonomial builds a Monomial from exponents, dropping zero entries and
// rejecting negative ones (an invalid-input programmer error).
func NewMonomial(exponents map[z.Var]int) (Monomial, error) {
	m := make(Monomial, len(exponents))
	for v, e := range exponents {
		if e < 0 {
			return nil, errors.Errorf("poly: negative exponent %d for var %s", e, v)
		}
		if e == 0 {
			continue
		}
		m[v] = e
	}
	return m, nil
}

// Degree returns the total degree (sum of exponents).
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

// IsConstant reports whether m is the empty monomial (degree 0).
func (m Monomial) IsConstant() bool { return len(m) == 0 }

// Vars returns the monomial's variables in ascending order, for
// deterministic iteration (spec §5: all tie-breaks use variable id order).
func (m Monomial) Vars() []z.Var {
	vs := make([]z.Var, 0, len(m))
	for v := range m {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// Mul returns the product monomial, adding exponents.
func (m Monomial) Mul(o Monomial) Monomial {
	r := make(Monomial, len(m)+len(o))
	for v, e := range m {
		r[v] = e
	}
	for v, e := range o {
		r[v] += e
	}
	return r
}

// Equal reports whether m and o have identical exponents.
func (m Monomial) Equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for v, e := range m {
		if o[v] != e {
			return false
		}
	}
	return true
}

// key returns a canonical string usable as a map key for deduplication
// inside Polynomial (Go maps can't key on maps directly).
func (m Monomial) key() string {
	vs := m.Vars()
	var b strings.Builder
	for _, v := range vs {
		fmt.Fprintf(&b, "%d^%d;", v, m[v])
	}
	return b.String()
}

func (m Monomial) String() string {
	if m.IsConstant() {
		return "1"
	}
	vs := m.Vars()
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if m[v] == 1 {
			parts = append(parts, fmt.Sprintf("x%d", v))
		} else {
			parts = append(parts, fmt.Sprintf("x%d^%d", v, m[v]))
		}
	}
	return strings.Join(parts, "*")
}

// Eval evaluates the monomial under an assignment of every variable it
// mentions to a rational value.
func (m Monomial) Eval(assign map[z.Var]*rational.Rat) *rational.Rat {
	acc := rational.One()
	for _, v := range m.Vars() {
		val, ok := assign[v]
		if !ok {
			panic(fmt.Sprintf("poly: monomial eval missing assignment for var %s", v))
		}
		for i := 0; i < m[v]; i++ {
			acc = acc.Mul(val)
		}
	}
	return acc
}
