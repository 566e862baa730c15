package nra

import (
	"sort"

	"github.com/go-air/smtcore/interval"
	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/poly"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// contractOne applies one (constraint, variable) candidate's contraction
// to e.domains, reporting the contracted variable's diameter before and
// after (spec §9's contraction-feedback reweighting) and whether its
// domain went empty (UNSAT).
func (e *Engine) contractOne(c candidate) (oldD, newD interval.Extended, empty bool) {
	if c.kind == kindShell {
		return e.contractShellVar(e.shells[c.index], c.v)
	}
	return e.contractDefVar(e.defs[c.index], c.v)
}

// contractShellVar isolates variable v within one linear constraint and
// intersects its domain with the bound implied by every other term
// (spec §4.3), carrying every other term's full IntervalUnion through
// the arithmetic via AddUnion/NegUnion/DivUnion rather than collapsing
// to a covering interval first: an inequality's result collapses to a
// single ray regardless (one part always dominates the union of rays),
// but an equality keeps every disjoint component the other terms admit.
func (e *Engine) contractShellVar(cst lra.Constraint, v z.Var) (oldD, newD interval.Extended, empty bool) {
	old := e.domains[v]
	oldD = old.Diameter()
	coeff, ok := cst.Term[v]
	if !ok {
		return oldD, oldD, false
	}
	rest := interval.FromInterval(interval.Point(interval.Finite(0)))
	for other, oc := range cst.Term {
		if other == v {
			continue
		}
		rest = interval.AddUnion(rest, scaleUnion(oc, e.domains[other]))
	}
	boundUnion := interval.FromInterval(interval.Point(ratToExt(cst.Bound)))
	rhs := interval.AddUnion(boundUnion, interval.NegUnion(rest))
	quotient := interval.DivUnion(rhs, interval.FromInterval(interval.Point(ratToExt(coeff))))
	if quotient.IsEmpty() {
		return oldD, 0, true
	}

	effective := cst.Rel
	if coeff.Sign() < 0 {
		effective = effective.Flip()
	}
	var allowed interval.Union
	switch effective {
	case lra.LE, lra.LT:
		hi := interval.NegInf
		for _, p := range quotient.Parts() {
			hi = hi.Max(p.Hi)
		}
		allowed = interval.FromInterval(interval.New(interval.NegInf, hi))
	case lra.GE, lra.GT:
		lo := interval.PosInf
		for _, p := range quotient.Parts() {
			lo = lo.Min(p.Lo)
		}
		allowed = interval.FromInterval(interval.New(lo, interval.PosInf))
	default: // EQ
		allowed = quotient
	}

	next := old.Intersect(allowed)
	if next.IsEmpty() {
		return oldD, 0, true
	}
	e.domains[v] = next
	return oldD, next.Diameter(), false
}

// scaleUnion multiplies every component of u by the scalar coeff.
func scaleUnion(coeff *rational.Rat, u interval.Union) interval.Union {
	return interval.MulUnion(interval.FromInterval(interval.Point(ratToExt(coeff))), u)
}

// contractDefVar narrows one variable of a monomial definition aux =
// monomial: the aux variable is narrowed by forward evaluation of the
// monomial, while a factor variable is narrowed by solving the
// definition for it and inverting with NthRootUnion, which -- unlike a
// single Interval -- keeps the two disjoint roots an even exponent
// produces (spec §4.3, §3's IntervalUnion).
func (e *Engine) contractDefVar(d auxDef, v z.Var) (oldD, newD interval.Extended, empty bool) {
	old := e.domains[v]
	oldD = old.Diameter()

	var next interval.Union
	if v == d.aux {
		next = old.Intersect(evalMonomial(d.monomial, e.domains))
	} else {
		k, ok := d.monomial[v]
		if !ok {
			return oldD, oldD, false
		}
		iv, ok := solveFor(d.monomial, v, k, e.domains, e.domains[d.aux])
		if !ok {
			return oldD, oldD, false
		}
		next = old.Intersect(iv)
	}
	if next.IsEmpty() {
		return oldD, 0, true
	}
	e.domains[v] = next
	return oldD, next.Diameter(), false
}

// evalMonomial evaluates a monomial's interval union under the current
// domains via repeated union power/product (spec §4.3's forward
// evaluation).
func evalMonomial(m poly.Monomial, domains Domains) interval.Union {
	return evalMonomialExcept(m, domains, z.VarNull)
}

// evalMonomialExcept evaluates every factor of m except `exclude`, used
// by solveFor to isolate one variable.
func evalMonomialExcept(m poly.Monomial, domains Domains, exclude z.Var) interval.Union {
	acc := interval.FromInterval(interval.Point(ratToExt(rational.One())))
	vars := make([]z.Var, 0, len(m))
	for v := range m {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	for _, v := range vars {
		if v == exclude {
			continue
		}
		acc = interval.MulUnion(acc, interval.PowUnion(domains[v], m[v]))
	}
	return acc
}

// solveFor isolates variable v (with exponent k in monomial m) from
// aux = m, given the current domains of every other factor and aux's
// own domain (spec §4.3): v^k must lie in aux / (product of the other
// factors), and NthRootUnion inverts the power without collapsing the
// two branches an even k admits.
func solveFor(m poly.Monomial, v z.Var, k int, domains Domains, auxDomain interval.Union) (interval.Union, bool) {
	rest := evalMonomialExcept(m, domains, v)
	target := interval.DivUnion(auxDomain, rest)
	if target.IsEmpty() {
		return interval.Union{}, true
	}
	var out []interval.Interval
	for _, part := range target.Parts() {
		out = append(out, interval.NthRootUnion(part, k).Parts()...)
	}
	return interval.NewUnion(out...), true
}

func ratToExt(r *rational.Rat) interval.Extended { return interval.Finite(r.Float64()) }
