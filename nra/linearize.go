package nra

import (
	"sort"

	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/poly"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

// auxDef records that aux stands for monomial (spec §4.3's preprocessing:
// "non-linear monomials via fresh auxiliary variables").
type auxDef struct {
	aux      z.Var
	monomial poly.Monomial
}

func (d auxDef) describe() string { return d.monomial.String() }

// linearize rewrites every non-linear constraint into a linear shell
// over original and auxiliary variables, plus one auxDef per distinct
// monomial of degree >= 2 encountered. Identical monomials across
// constraints share a single auxiliary variable.
func linearize(constraints []Constraint) ([]lra.Constraint, []auxDef) {
	maxVar := z.Var(0)
	for _, c := range constraints {
		for _, v := range c.Poly.Vars() {
			if v > maxVar {
				maxVar = v
			}
		}
	}
	next := maxVar + 1
	seen := map[string]z.Var{}
	var defs []auxDef
	shells := make([]lra.Constraint, 0, len(constraints))

	for _, c := range constraints {
		term := lra.LinearTerm{}
		bound := c.Bound
		for _, tm := range c.Poly.Terms() {
			switch {
			case tm.Monomial.IsConstant():
				bound = bound.Sub(tm.Coeff)
			case tm.Monomial.Degree() == 1:
				for v := range tm.Monomial {
					term[v] = addCoeff(term[v], tm.Coeff)
				}
			default:
				key := tm.Monomial.String()
				aux, ok := seen[key]
				if !ok {
					aux = next
					next++
					seen[key] = aux
					defs = append(defs, auxDef{aux: aux, monomial: tm.Monomial})
				}
				term[aux] = addCoeff(term[aux], tm.Coeff)
			}
		}
		shells = append(shells, lra.Constraint{Term: term, Rel: c.Rel, Bound: bound})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].aux < defs[j].aux })
	return shells, defs
}

func addCoeff(cur *rational.Rat, c *rational.Rat) *rational.Rat {
	if cur == nil {
		return c
	}
	return cur.Add(c)
}
