package lra

import (
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// FourierMotzkin decides satisfiability of a conjunction of linear
// constraints by repeated variable elimination (spec §4.2.1). It is used
// as a sound, slow reference oracle to cross-check Simplex, not as the
// production solver: its complexity is exponential in the variable
// count in the worst case.
func FourierMotzkin(constraints []Constraint) bool {
	vars := allVars(constraints)
	cur := constraints
	for _, v := range vars {
		var next []Constraint
		var lowers, uppers []isolated
		for _, c := range cur {
			coeff, has := c.Term[v]
			if !has {
				next = append(next, c)
				continue
			}
			iso := isolate(c, v, coeff)
			switch iso.kind {
			case kindLower, kindBoth:
				lowers = append(lowers, iso)
			}
			switch iso.kind {
			case kindUpper, kindBoth:
				uppers = append(uppers, iso)
			}
		}
		for _, lo := range lowers {
			for _, up := range uppers {
				rel := LE
				if lo.strict || up.strict {
					rel = LT
				}
				term := up.rest.Sub(lo.rest)
				bound := up.constant.Sub(lo.constant)
				if len(term) == 0 {
					if !satisfiesConstant(rational.Zero(), rel, bound) {
						return false
					}
					continue
				}
				next = append(next, Constraint{Term: term, Rel: rel, Bound: bound})
			}
		}
		cur = next
	}
	for _, c := range cur {
		if len(c.Term) != 0 {
			continue
		}
		if !satisfiesConstant(rational.Zero(), c.Rel, c.Bound) {
			return false
		}
	}
	return true
}

type isoKind int

const (
	kindLower isoKind = iota
	kindUpper
	kindBoth
)

// isolated is v `rel` (constant - rest), i.e. v + rest `rel` constant.
type isolated struct {
	kind     isoKind
	strict   bool
	rest     LinearTerm
	constant *rational.Rat
}

// isolate divides c's relation by coeff (the coefficient of v in c.Term),
// flipping the relation if coeff is negative, and classifies the result
// as a lower bound on v, an upper bound, or both (equality).
func isolate(c Constraint, v z.Var, coeff *rational.Rat) isolated {
	restRaw := c.Term.Without(v)
	inv := rational.One().Div(coeff)
	rest := restRaw.Scale(inv)
	constant := c.Bound.Mul(inv)

	rel := c.Rel
	if coeff.Sign() < 0 {
		rel = rel.Flip()
	}
	iso := isolated{rest: rest, constant: constant, strict: rel.Strict()}
	switch rel {
	case LE, LT:
		iso.kind = kindUpper
	case GE, GT:
		iso.kind = kindLower
	case EQ:
		iso.kind = kindBoth
	}
	return iso
}

func satisfiesConstant(lhs *rational.Rat, rel Relation, bound *rational.Rat) bool {
	c := lhs.Cmp(bound)
	switch rel {
	case LE:
		return c <= 0
	case LT:
		return c < 0
	case EQ:
		return c == 0
	case GE:
		return c >= 0
	case GT:
		return c > 0
	default:
		return false
	}
}

func allVars(constraints []Constraint) []z.Var {
	seen := map[z.Var]bool{}
	var out []z.Var
	for _, c := range constraints {
		for v := range c.Term {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sortVars(out)
	return out
}
