package lra

import (
	"testing"

	"github.com/go-air/smtcore/z"
)

// chain builds a satisfiable chain x_1 <= x_2 <= ... <= x_n with
// x_1 >= 0. The all-zero start already satisfies it, so the benchmark
// measures tableau construction and a pivot-free feasibility check.
func chain(n int) []Constraint {
	constraints := make([]Constraint, 0, n)
	for i := 1; i < n; i++ {
		a, b := z.Var(i), z.Var(i+1)
		constraints = append(constraints, Constraint{
			Term: term(map[z.Var]int64{a: 1, b: -1}),
			Rel:  LE,
			Bound: r(0),
		})
	}
	constraints = append(constraints, Constraint{
		Term:  term(map[z.Var]int64{z.Var(1): 1}),
		Rel:   GE,
		Bound: r(0),
	})
	return constraints
}

func BenchmarkSimplexChain(b *testing.B) {
	constraints := chain(64)
	for i := 0; i < b.N; i++ {
		tab, ok := NewTableau(constraints)
		if !ok {
			b.Fatal("unexpected UNSAT tableau construction")
		}
		if !NewSimplex(tab).Run() {
			b.Fatal("unexpected UNSAT")
		}
	}
}
