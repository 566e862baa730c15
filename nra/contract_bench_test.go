package nra

import (
	"testing"

	"github.com/go-air/smtcore/interval"
	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/poly"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

func BenchmarkSquareContraction(b *testing.B) {
	m, err := poly.NewMonomial(map[z.Var]int{x: 2})
	if err != nil {
		b.Fatal(err)
	}
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: m}})
	constraints := []Constraint{{Poly: p, Rel: lra.EQ, Bound: rational.FromInt64(4)}}
	initial := Domains{x: interval.FromInterval(interval.New(interval.Finite(-1000), interval.Finite(1000)))}

	for i := 0; i < b.N; i++ {
		e := NewEngine(constraints, initial, WithMaxIterations(64))
		if !e.Run() {
			b.Fatal("unexpected UNSAT")
		}
	}
}
