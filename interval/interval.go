// Copyright 2026 The smtcore Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License
// file.

// Package interval implements the extended-precision interval arithmetic
// used by the NRA engine (spec §3 "Interval", "IntervalUnion"; spec §4.3).
// Endpoints are float64-based with explicit +/-infinity sentinels rather
// than exact rationals: ICP narrows domains under a bounded iteration
// count and does not need Simplex-grade exactness (spec §9, "Dynamic
// polymorphism across numeric kinds").
package interval

import "math"

// Extended is an ordered numeric value that may be +/-infinity.
type Extended float64

var (
	NegInf Extended = Extended(math.Inf(-1))
	PosInf Extended = Extended(math.Inf(1))
)

func Finite(v float64) Extended { return Extended(v) }

func (e Extended) IsInf() bool { return math.IsInf(float64(e), 0) }

func (e Extended) Float64() float64 { return float64(e) }

func (e Extended) Add(o Extended) Extended {
	if e.IsInf() || o.IsInf() {
		return Extended(float64(e) + float64(o))
	}
	return e + o
}

func (e Extended) Neg() Extended { return -e }

func (e Extended) Sub(o Extended) Extended { return e.Add(o.Neg()) }

// Mul multiplies two extended values, resolving the 0*inf indeterminate
// form to 0, matching ICP's convention that a bounded coefficient times an
// unbounded factor of magnitude zero contributes nothing.
func (e Extended) Mul(o Extended) Extended {
	if (e == 0 && o.IsInf()) || (o == 0 && e.IsInf()) {
		return 0
	}
	return Extended(float64(e) * float64(o))
}

func (e Extended) Cmp(o Extended) int {
	switch {
	case e < o:
		return -1
	case e > o:
		return 1
	default:
		return 0
	}
}

func (e Extended) Min(o Extended) Extended {
	if e.Cmp(o) <= 0 {
		return e
	}
	return o
}

func (e Extended) Max(o Extended) Extended {
	if e.Cmp(o) >= 0 {
		return e
	}
	return o
}

// Interval is a closed pair (Lo, Hi). Lo <= Hi holds for every non-empty
// interval; Empty() is the canonical representation for an empty interval
// and must be tested with IsEmpty rather than by comparing bounds, since
// an empty interval carries no meaningful endpoints.
type Interval struct {
	Lo, Hi Extended
	empty  bool
}

// New builds a closed interval [lo, hi]. If lo > hi the canonical empty
// interval is returned instead, matching spec §3 ("lo <= hi or the
// interval is the canonical empty interval").
func New(lo, hi Extended) Interval {
	if lo.Cmp(hi) > 0 {
		return Empty()
	}
	return Interval{Lo: lo, Hi: hi}
}

// Empty returns the canonical empty interval.
func Empty() Interval { return Interval{empty: true} }

// Full returns (-inf, +inf).
func Full() Interval { return Interval{Lo: NegInf, Hi: PosInf} }

// Point returns the degenerate interval [v, v].
func Point(v Extended) Interval { return Interval{Lo: v, Hi: v} }

func (iv Interval) IsEmpty() bool { return iv.empty }

// Diameter is Hi - Lo, or 0 for an empty interval. An infinite diameter is
// represented as +Inf and must propagate through IntervalUnion.Diameter.
func (iv Interval) Diameter() Extended {
	if iv.empty {
		return 0
	}
	return iv.Hi.Sub(iv.Lo)
}

// Contains reports whether v lies within [Lo, Hi].
func (iv Interval) Contains(v Extended) bool {
	if iv.empty {
		return false
	}
	return iv.Lo.Cmp(v) <= 0 && v.Cmp(iv.Hi) <= 0
}

// Intersect returns the intersection of iv and o, Empty() if disjoint.
func (iv Interval) Intersect(o Interval) Interval {
	if iv.empty || o.empty {
		return Empty()
	}
	return New(iv.Lo.Max(o.Lo), iv.Hi.Min(o.Hi))
}

// Overlaps reports whether iv and o share at least one point, or touch.
func (iv Interval) Overlaps(o Interval) bool {
	if iv.empty || o.empty {
		return false
	}
	return iv.Lo.Cmp(o.Hi) <= 0 && o.Lo.Cmp(iv.Hi) <= 0
}

// Union returns the smallest interval covering both iv and o. Callers that
// need to preserve a gap between disjoint intervals should use
// IntervalUnion instead.
func (iv Interval) Union(o Interval) Interval {
	if iv.empty {
		return o
	}
	if o.empty {
		return iv
	}
	return New(iv.Lo.Min(o.Lo), iv.Hi.Max(o.Hi))
}

func (iv Interval) String() string {
	if iv.empty {
		return "[]"
	}
	return "[" + fmtE(iv.Lo) + ", " + fmtE(iv.Hi) + "]"
}

func fmtE(e Extended) string {
	if e == PosInf {
		return "+inf"
	}
	if e == NegInf {
		return "-inf"
	}
	f := float64(e)
	return trimFloat(f)
}
