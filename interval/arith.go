package interval

import "math"

// Mul computes the interval product {x*y : x in a, y in b} exactly, per
// the standard four-corner rule (spec §4.3's forward monomial
// evaluation).
func Mul(a, b Interval) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	corners := [4]Extended{
		a.Lo.Mul(b.Lo), a.Lo.Mul(b.Hi),
		a.Hi.Mul(b.Lo), a.Hi.Mul(b.Hi),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo = lo.Min(c)
		hi = hi.Max(c)
	}
	return New(lo, hi)
}

// Div computes a sound enclosure of {x/y : x in a, y in b}. Division by
// an interval that straddles zero (or is exactly the point zero, unless
// the numerator also contains zero) cannot be represented as a single
// interval without either widening to Full or narrowing to Empty; Div
// picks whichever is sound: Empty when no quotient can exist, Full
// otherwise (spec §4.3's "division by interval containing zero").
func Div(a, b Interval) Interval {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty()
	}
	zero := Finite(0)
	if b.Lo == zero && b.Hi == zero {
		if a.Contains(zero) {
			return Full()
		}
		return Empty()
	}
	if b.Contains(zero) {
		return Full()
	}
	recip := New(reciprocal(b.Hi), reciprocal(b.Lo))
	return Mul(a, recip)
}

func reciprocal(e Extended) Extended {
	if e.IsInf() {
		return Finite(0)
	}
	return Finite(1 / float64(e))
}

// Pow computes {x^k : x in a} for an integer exponent k >= 1.
func Pow(a Interval, k int) Interval {
	if a.IsEmpty() {
		return Empty()
	}
	if k == 1 {
		return a
	}
	loP, hiP := powE(a.Lo, k), powE(a.Hi, k)
	if k%2 == 1 {
		return New(loP, hiP)
	}
	maxP := loP.Max(hiP)
	minP := loP.Min(hiP)
	if a.Contains(Finite(0)) {
		minP = Finite(0)
	}
	return New(minP, maxP)
}

// NthRoot computes a sound enclosure of {x : x^k in w} for integer
// exponent k >= 1. For even k the true preimage of a bounded-away-from-
// zero w is two disjoint rays; NthRoot returns their convex hull, a
// deliberately looser but sound single interval (spec §4.3's solveFor
// backward-propagation step).
func NthRoot(w Interval, k int) Interval {
	if w.IsEmpty() {
		return Empty()
	}
	if k == 1 {
		return w
	}
	if k%2 == 1 {
		return New(rootE(w.Lo, k), rootE(w.Hi, k))
	}
	nonNeg := w.Intersect(New(Finite(0), PosInf))
	if nonNeg.IsEmpty() {
		return Empty()
	}
	hiRoot := rootE(nonNeg.Hi, k)
	return New(hiRoot.Neg(), hiRoot)
}

// NthRootUnion computes the exact preimage {x : x^k in w} for integer
// exponent k >= 1, unlike NthRoot's convex-hull approximation: for even
// k a w bounded away from zero splits into two disjoint components, one
// per sign (spec §4.3's solveFor backward step, e.g. roots
// [-33,-17] U [17,33] for w=[289,1089], k=2). The two components merge back into one
// automatically when w reaches zero, since Reduce joins touching
// intervals.
func NthRootUnion(w Interval, k int) Union {
	if w.IsEmpty() {
		return Union{}
	}
	if k == 1 || k%2 == 1 {
		return FromInterval(New(rootE(w.Lo, k), rootE(w.Hi, k)))
	}
	nonNeg := w.Intersect(New(Finite(0), PosInf))
	if nonNeg.IsEmpty() {
		return Union{}
	}
	loRoot := rootE(nonNeg.Lo, k)
	hiRoot := rootE(nonNeg.Hi, k)
	return NewUnion(New(loRoot, hiRoot), New(hiRoot.Neg(), loRoot.Neg()))
}

// MulUnion computes the union product component-wise across a and b.
func MulUnion(a, b Union) Union {
	var out []Interval
	for _, pa := range a.parts {
		for _, pb := range b.parts {
			out = append(out, Mul(pa, pb))
		}
	}
	return Union{parts: out}.Reduce()
}

// DivUnion computes the union quotient component-wise across a and b.
func DivUnion(a, b Union) Union {
	var out []Interval
	for _, pa := range a.parts {
		for _, pb := range b.parts {
			out = append(out, Div(pa, pb))
		}
	}
	return Union{parts: out}.Reduce()
}

// PowUnion raises every component of a to the integer exponent k.
func PowUnion(a Union, k int) Union {
	var out []Interval
	for _, p := range a.parts {
		out = append(out, Pow(p, k))
	}
	return Union{parts: out}.Reduce()
}

// AddUnion computes the union sum component-wise across a and b.
func AddUnion(a, b Union) Union {
	var out []Interval
	for _, pa := range a.parts {
		for _, pb := range b.parts {
			out = append(out, New(pa.Lo.Add(pb.Lo), pa.Hi.Add(pb.Hi)))
		}
	}
	return Union{parts: out}.Reduce()
}

// NegUnion negates every component of u.
func NegUnion(u Union) Union {
	var out []Interval
	for _, p := range u.parts {
		out = append(out, New(p.Hi.Neg(), p.Lo.Neg()))
	}
	return Union{parts: out}.Reduce()
}

func powE(e Extended, k int) Extended {
	return Extended(math.Pow(float64(e), float64(k)))
}

func rootE(e Extended, k int) Extended {
	if e.IsInf() {
		return e
	}
	f := float64(e)
	neg := f < 0
	if neg {
		f = -f
	}
	r := math.Pow(f, 1/float64(k))
	// snap to an exact integer root, which math.Pow can miss by an ulp
	if rr := math.Round(r); math.Pow(rr, float64(k)) == f {
		r = rr
	}
	if neg {
		return Extended(-r)
	}
	return Extended(r)
}
