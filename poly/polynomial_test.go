package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/smtcore/rational"
	"github.com/go-air/smtcore/z"
)

func TestMonomialInvariants(t *testing.T) {
	m, err := NewMonomial(map[z.Var]int{1: 2, 2: 0, 3: 1})
	require.NoError(t, err)
	assert.Len(t, m, 2, "zero exponents must be dropped")
	assert.Equal(t, 3, m.Degree())

	_, err = NewMonomial(map[z.Var]int{1: -1})
	assert.Error(t, err, "negative exponents are invalid input")
}

func TestMonomialConstantIsEmpty(t *testing.T) {
	m, err := NewMonomial(nil)
	require.NoError(t, err)
	assert.True(t, m.IsConstant())
}

func TestPolynomialCombinesLikeMonomials(t *testing.T) {
	x, _ := NewMonomial(map[z.Var]int{1: 1})
	p := NewPolynomial([]Term{
		{Coeff: rational.FromInt64(2), Monomial: x},
		{Coeff: rational.FromInt64(3), Monomial: x},
	})
	terms := p.Terms()
	require.Len(t, terms, 1, "like monomials must be combined")
	assert.Equal(t, "5", terms[0].Coeff.String())
}

func TestPolynomialDropsZeroResult(t *testing.T) {
	x, _ := NewMonomial(map[z.Var]int{1: 1})
	p := NewPolynomial([]Term{
		{Coeff: rational.FromInt64(2), Monomial: x},
		{Coeff: rational.FromInt64(-2), Monomial: x},
	})
	assert.True(t, p.IsZero(), "canceling terms must be dropped, never stored as zero")
}

func TestPolynomialEval(t *testing.T) {
	xy, err := NewMonomial(map[z.Var]int{1: 2, 2: 2})
	require.NoError(t, err)
	p := NewPolynomial([]Term{{Coeff: rational.FromInt64(1), Monomial: xy}})
	got := p.Eval(map[z.Var]*rational.Rat{1: rational.FromInt64(3), 2: rational.FromInt64(2)})
	assert.Equal(t, "36", got.String())
}
