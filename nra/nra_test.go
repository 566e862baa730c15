package nra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/interval"
	"github.com/go-air/smtcore/lra"
	"github.com/go-air/smtcore/poly"
	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

const (
	x z.Var = 1
	y z.Var = 2
)

func mono(t *testing.T, exps map[z.Var]int) poly.Monomial {
	t.Helper()
	m, err := poly.NewMonomial(exps)
	require.NoError(t, err)
	return m
}

func point(v float64) interval.Union { return interval.FromInterval(interval.Point(interval.Finite(v))) }

func span(lo, hi float64) interval.Union {
	return interval.FromInterval(interval.New(interval.Finite(lo), interval.Finite(hi)))
}

func TestSquareConstraintContractsBothSigns(t *testing.T) {
	// x^2=4 has exactly two solutions, so a genuine IntervalUnion
	// narrows to {-2} U {2} rather than the looser convex hull [-2,2].
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: mono(t, map[z.Var]int{x: 2})}})
	constraints := []Constraint{{Poly: p, Rel: lra.EQ, Bound: rational.FromInt64(4)}}
	initial := Domains{x: span(-10, 10)}

	e := NewEngine(constraints, initial, WithMaxIterations(50))
	require.True(t, e.Run())
	got := e.Domains()[x]
	want := interval.NewUnion(interval.Point(interval.Finite(-2)), interval.Point(interval.Finite(2)))
	assert.True(t, want.Equal(got), "got %v, want %v", got, want)
}

func TestSquareRootTwoComponents(t *testing.T) {
	// x^2 in [289,1089] must contract to the two disjoint root ranges
	// [-33,-17] and [17,33], not their convex hull [-33,33].
	m := mono(t, map[z.Var]int{x: 2})
	forced, err := poly.NewMonomial(map[z.Var]int{y: 1})
	require.NoError(t, err)
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: m}, {Coeff: rational.FromInt64(-1), Monomial: forced}})
	constraints := []Constraint{{Poly: p, Rel: lra.EQ, Bound: rational.Zero()}}
	initial := Domains{x: span(-1000, 1000), y: span(289, 1089)}

	e := NewEngine(constraints, initial, WithMaxIterations(50))
	require.True(t, e.Run())
	got := e.Domains()[x]
	require.Len(t, got.Parts(), 2)
	assert.Equal(t, interval.Finite(-33), got.Parts()[0].Lo)
	assert.Equal(t, interval.Finite(-17), got.Parts()[0].Hi)
	assert.Equal(t, interval.Finite(17), got.Parts()[1].Lo)
	assert.Equal(t, interval.Finite(33), got.Parts()[1].Hi)
}

func TestProductConstraintContractsFactor(t *testing.T) {
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: mono(t, map[z.Var]int{x: 1, y: 1})}})
	constraints := []Constraint{{Poly: p, Rel: lra.EQ, Bound: rational.FromInt64(6)}}
	initial := Domains{
		x: point(2),
		y: span(-100, 100),
	}

	e := NewEngine(constraints, initial, WithMaxIterations(50))
	require.True(t, e.Run())
	assert.True(t, point(3).Equal(e.Domains()[y]))
}

func TestInconsistentSquareIsUnsat(t *testing.T) {
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: mono(t, map[z.Var]int{x: 2})}})
	constraints := []Constraint{{Poly: p, Rel: lra.EQ, Bound: rational.FromInt64(4)}}
	initial := Domains{x: span(10, 20)}

	e := NewEngine(constraints, initial)
	assert.False(t, e.Run())
}

func TestLinearShellAlone(t *testing.T) {
	p := poly.NewPolynomial([]poly.Term{{Coeff: rational.One(), Monomial: mono(t, map[z.Var]int{x: 1})}})
	constraints := []Constraint{{Poly: p, Rel: lra.LE, Bound: rational.FromInt64(5)}}
	initial := Domains{x: span(0, 10)}

	e := NewEngine(constraints, initial, WithMaxIterations(50))
	require.True(t, e.Run())
	got := e.Domains()[x]
	assert.True(t, span(0, 5).Equal(got), "got %v", got)
}
