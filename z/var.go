// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package z holds the dense, map-key-friendly identifiers shared by the SAT
// engine and, via poly.Monomial, by the polynomial kernel: Var (spec §3
// "Variable identifier") and Lit (spec §3 "Literal").
package z

import "fmt"

// Var is a non-negative variable identifier. Identifiers are dense and are
// used directly as map keys and, in the SAT engine, as slice indices.
type Var uint32

// VarNull is not a valid variable; it marks "no variable" in APIs that need
// a sentinel (e.g. a decision literal's reason).
const VarNull Var = 0

// Pos returns the positive literal for v.
func (v Var) Pos() Lit { return Lit(v << 1) }

// Neg returns the negative literal for v.
func (v Var) Neg() Lit { return Lit(v<<1) | 1 }

func (v Var) String() string { return fmt.Sprintf("v%d", uint32(v)) }

// Lit is a signed variable: the low bit encodes sign (0 = positive, 1 =
// negative), the remaining bits encode the Var. Negation (Not) is total and
// involutive, per spec §3.
type Lit uint32

// LitNull is not a valid literal.
const LitNull Lit = 0

// Var returns the underlying variable.
func (m Lit) Var() Var { return Var(m >> 1) }

// Not returns the negation of m. Total and involutive: Not(Not(m)) == m.
func (m Lit) Not() Lit { return m ^ 1 }

// IsPos reports whether m is a positive literal.
func (m Lit) IsPos() bool { return m&1 == 0 }

// Sign returns +1 for a positive literal, -1 for a negative one.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Dimacs2Lit converts a non-zero signed DIMACS-style integer into a Lit.
// It is not itself a file format reader; package dimacs builds its CNF
// reader on it.
func Dimacs2Lit(n int) Lit {
	if n == 0 {
		panic("z: dimacs literal 0 is not a literal")
	}
	if n > 0 {
		return Var(n).Pos()
	}
	return Var(-n).Neg()
}

// Dimacs returns the signed-integer DIMACS form of m.
func (m Lit) Dimacs() int {
	n := int(m.Var())
	if m.IsPos() {
		return n
	}
	return -n
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("+%d", m.Var())
	}
	return fmt.Sprintf("-%d", m.Var())
}
