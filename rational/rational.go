// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package rational provides the exact-rational value type used by the LRA
// tableau (spec §3, "Bound", "Constraint (LRA)"). It has no infinite
// values; the extended type with +/-infinity used for interval endpoints
// is interval.Extended.
package rational

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational number, backed by math/big.Rat. There is no
// third-party arbitrary-precision rational type in the corpus this module
// was grown from; math/big is the standard-library answer to "exact
// rationals" and is used here on that basis (see DESIGN.md).
type Rat struct {
	v *big.Rat
}

// Zero is the additive identity.
func Zero() *Rat { return &Rat{v: new(big.Rat)} }

// One is the multiplicative identity.
func One() *Rat { return FromInt64(1) }

// FromInt64 builds a Rat equal to n.
func FromInt64(n int64) *Rat {
	return &Rat{v: new(big.Rat).SetInt64(n)}
}

// FromFrac builds a Rat equal to num/den. Panics if den is zero: this is a
// programmer error (invalid input), not a domain-level answer.
func FromFrac(num, den int64) *Rat {
	if den == 0 {
		panic("rational: zero denominator")
	}
	return &Rat{v: new(big.Rat).SetFrac64(num, den)}
}

// FromBig wraps an existing *big.Rat. The Rat takes ownership; callers must
// not mutate r afterwards.
func FromBig(r *big.Rat) *Rat {
	if r == nil {
		return Zero()
	}
	return &Rat{v: r}
}

// Big returns the underlying *big.Rat, read-only by convention.
func (r *Rat) Big() *big.Rat { return r.v }

func (r *Rat) Add(o *Rat) *Rat { return &Rat{v: new(big.Rat).Add(r.v, o.v)} }
func (r *Rat) Sub(o *Rat) *Rat { return &Rat{v: new(big.Rat).Sub(r.v, o.v)} }
func (r *Rat) Mul(o *Rat) *Rat { return &Rat{v: new(big.Rat).Mul(r.v, o.v)} }

// Div divides r by o. Panics on division by zero (invalid input at the
// caller's arithmetic, not a domain UNSAT/empty-interval outcome).
func (r *Rat) Div(o *Rat) *Rat {
	if o.Sign() == 0 {
		panic("rational: division by zero")
	}
	return &Rat{v: new(big.Rat).Quo(r.v, o.v)}
}

func (r *Rat) Neg() *Rat { return &Rat{v: new(big.Rat).Neg(r.v)} }

// Sign returns -1, 0, or 1.
func (r *Rat) Sign() int { return r.v.Sign() }

// Cmp returns -1, 0, or 1 as r <, ==, > o.
func (r *Rat) Cmp(o *Rat) int { return r.v.Cmp(o.v) }

func (r *Rat) IsZero() bool { return r.v.Sign() == 0 }

// Floor returns the greatest integer <= r, as a Rat.
func (r *Rat) Floor() *Rat {
	num, den := r.v.Num(), r.v.Denom()
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(num, den, m)
	return &Rat{v: new(big.Rat).SetInt(q)}
}

// Ceil returns the least integer >= r, as a Rat.
func (r *Rat) Ceil() *Rat {
	f := r.Floor()
	if f.Cmp(r) == 0 {
		return f
	}
	return f.Add(One())
}

// Frac returns r - Floor(r), always in [0, 1).
func (r *Rat) Frac() *Rat {
	return r.Sub(r.Floor())
}

// IsInteger reports whether r has denominator 1.
func (r *Rat) IsInteger() bool {
	return r.v.IsInt()
}

func (r *Rat) String() string {
	if r.v.IsInt() {
		return r.v.Num().String()
	}
	return fmt.Sprintf("%s/%s", r.v.Num(), r.v.Denom())
}

// Float64 returns the nearest float64, for interval-arithmetic interop
// only; exactness is not preserved and no Simplex decision may depend on
// this value.
func (r *Rat) Float64() float64 {
	f, _ := r.v.Float64()
	return f
}
