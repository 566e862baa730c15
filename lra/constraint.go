// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package lra implements the Simplex-based linear real/integer arithmetic
// theory solver of spec §4.2: Dantzig's General Form with per-variable
// bounds and Bland's rule for anti-cycling, extended with Gomory cutting
// planes and branch-and-bound for integer variables, plus a
// Fourier-Motzkin elimination procedure used as a sound reference oracle.
package lra

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// Relation is one of the five constraint relations of spec §3.
type Relation int

const (
	LE Relation = iota
	LT
	EQ
	GE
	GT
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case LT:
		return "<"
	case EQ:
		return "="
	case GE:
		return ">="
	case GT:
		return ">"
	default:
		return "?"
	}
}

// Strict reports whether r is a strict relation.
func (r Relation) Strict() bool { return r == LT || r == GT }

// Flip returns the relation obtained by multiplying both sides by a
// negative number (used by Fourier-Motzkin and by NRA's
// contractShellVar).
func (r Relation) Flip() Relation {
	switch r {
	case LE:
		return GE
	case LT:
		return GT
	case GE:
		return LE
	case GT:
		return LT
	default:
		return EQ
	}
}

// LinearTerm maps variable -> non-zero rational coefficient (spec §3).
type LinearTerm map[z.Var]*rational.Rat

// NewLinearTerm builds a LinearTerm, dropping zero coefficients.
func NewLinearTerm(coeffs map[z.Var]*rational.Rat) LinearTerm {
	t := make(LinearTerm, len(coeffs))
	for v, c := range coeffs {
		if c != nil && !c.IsZero() {
			t[v] = c
		}
	}
	return t
}

// Eval evaluates the term under a full rational assignment.
func (t LinearTerm) Eval(assign map[z.Var]*rational.Rat) *rational.Rat {
	acc := rational.Zero()
	for v, c := range t {
		val, ok := assign[v]
		if !ok {
			panic(fmt.Sprintf("lra: missing assignment for var %s", v))
		}
		acc = acc.Add(c.Mul(val))
	}
	return acc
}

// Add returns t + other, dropping any coefficient that cancels to zero.
func (t LinearTerm) Add(other LinearTerm) LinearTerm {
	out := make(LinearTerm, len(t)+len(other))
	for v, c := range t {
		out[v] = c
	}
	for v, c := range other {
		if cur, ok := out[v]; ok {
			sum := cur.Add(c)
			if sum.IsZero() {
				delete(out, v)
			} else {
				out[v] = sum
			}
		} else {
			out[v] = c
		}
	}
	return out
}

// Sub returns t - other.
func (t LinearTerm) Sub(other LinearTerm) LinearTerm { return t.Add(other.Scale(rational.FromInt64(-1))) }

// Scale returns t scaled by k, dropping the result entirely if k is zero.
func (t LinearTerm) Scale(k *rational.Rat) LinearTerm {
	out := make(LinearTerm, len(t))
	if k.IsZero() {
		return out
	}
	for v, c := range t {
		out[v] = c.Mul(k)
	}
	return out
}

// Without returns a copy of t with v removed.
func (t LinearTerm) Without(v z.Var) LinearTerm {
	out := make(LinearTerm, len(t))
	for k, c := range t {
		if k != v {
			out[k] = c
		}
	}
	return out
}

// Constraint is (linear term, relation, rational bound) per spec §3.
type Constraint struct {
	Term  LinearTerm
	Rel   Relation
	Bound *rational.Rat
}

// NewConstraint validates and builds a Constraint. An empty term is
// invalid input: a constraint with no variables is either trivially true
// or trivially false and does not belong in a problem handed to Simplex.
func NewConstraint(term LinearTerm, rel Relation, bound *rational.Rat) (Constraint, error) {
	if len(term) == 0 {
		return Constraint{}, errors.New("lra: constraint has an empty linear term")
	}
	return Constraint{Term: term, Rel: rel, Bound: bound}, nil
}
